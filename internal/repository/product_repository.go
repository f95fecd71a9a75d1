package repository

import (
	"errors"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the catalog data access interface. The catalog
// is read-only after seeding; Create exists for the seed path only.
type ProductRepository interface {
	List(category string) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Categories() ([]string, error)
	Count() (int64, error)
	Create(product *models.Product) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a catalog repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// List returns all products, or only those in the given category.
// The category match is case-sensitive and exact; an unknown category
// yields an empty slice, not an error.
func (r *GormProductRepository) List(category string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	query := r.db.Model(&models.Product{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns the product with the given id, or nil when absent.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Categories returns the distinct categories present in the catalog.
func (r *GormProductRepository) Categories() ([]string, error) {
	categories := make([]string, 0)
	if err := r.db.Model(&models.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Count returns the number of seeded products.
func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a catalog entry (seed path).
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}
