package models

import "time"

// CartLine is one product+quantity entry in an owner's cart. LineID is
// the opaque identifier handed to clients; it is generated once at
// creation and never reused after deletion. The unique index over
// owner key and product id enforces at most one line per product in a
// cart (adds merge instead of duplicating).
type CartLine struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	LineID    string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	OwnerKey  string    `gorm:"type:varchar(191);not null;uniqueIndex:idx_cart_owner_product" json:"-"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_owner_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"index" json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName sets the table name.
func (CartLine) TableName() string {
	return "cart_lines"
}
