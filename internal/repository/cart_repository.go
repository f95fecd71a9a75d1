package repository

import (
	"errors"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface. Owners are keyed
// by models.CartOwner.Key(); an owner with no rows is an empty cart.
type CartRepository interface {
	ListByOwner(ownerKey string) ([]models.CartLine, error)
	CountByOwner(ownerKey string) (int64, error)
	HasCart(ownerKey string) (bool, error)
	GetByLineID(ownerKey, lineID string) (*models.CartLine, error)
	GetByProduct(ownerKey string, productID uint) (*models.CartLine, error)
	Create(line *models.CartLine) error
	UpdateQuantity(ownerKey, lineID string, quantity int) error
	DeleteLine(ownerKey, lineID string) error
	ClearByOwner(ownerKey string) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByOwner returns the owner's lines in insertion order.
func (r *GormCartRepository) ListByOwner(ownerKey string) ([]models.CartLine, error) {
	lines := make([]models.CartLine, 0)
	if err := r.db.Where("owner_key = ?", ownerKey).
		Order("created_at ASC, id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// CountByOwner returns the number of distinct lines in the owner's cart.
func (r *GormCartRepository) CountByOwner(ownerKey string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CartLine{}).
		Where("owner_key = ?", ownerKey).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasCart reports whether the owner has ever written a line that is
// still present. Absent and empty carts read the same everywhere else;
// this exists only so removals can tell "no cart" from "no such line".
func (r *GormCartRepository) HasCart(ownerKey string) (bool, error) {
	count, err := r.CountByOwner(ownerKey)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByLineID returns the owner's line with the given line id, or nil.
func (r *GormCartRepository) GetByLineID(ownerKey, lineID string) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.Where("owner_key = ? AND line_id = ?", ownerKey, lineID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// GetByProduct returns the owner's line for the given product, or nil.
func (r *GormCartRepository) GetByProduct(ownerKey string, productID uint) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.Where("owner_key = ? AND product_id = ?", ownerKey, productID).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Create inserts a new cart line.
func (r *GormCartRepository) Create(line *models.CartLine) error {
	if line == nil {
		return nil
	}
	return r.db.Create(line).Error
}

// UpdateQuantity replaces the quantity of the owner's line.
func (r *GormCartRepository) UpdateQuantity(ownerKey, lineID string, quantity int) error {
	return r.db.Model(&models.CartLine{}).
		Where("owner_key = ? AND line_id = ?", ownerKey, lineID).
		Update("quantity", quantity).Error
}

// DeleteLine removes the owner's line. Line ids are never reused.
func (r *GormCartRepository) DeleteLine(ownerKey, lineID string) error {
	return r.db.Where("owner_key = ? AND line_id = ?", ownerKey, lineID).
		Delete(&models.CartLine{}).Error
}

// ClearByOwner removes all of the owner's lines.
func (r *GormCartRepository) ClearByOwner(ownerKey string) error {
	return r.db.Where("owner_key = ?", ownerKey).Delete(&models.CartLine{}).Error
}
