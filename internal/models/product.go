package models

// Product is one immutable catalog entry, seeded at process start.
type Product struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(191);not null" json:"name"`
	Price       Money  `gorm:"type:decimal(20,2);not null" json:"price"`
	Image       string `gorm:"type:varchar(500);not null" json:"image"`
	Description string `gorm:"type:varchar(1000)" json:"description"`
	Category    string `gorm:"type:varchar(50);not null;index" json:"category"`
	InStock     bool   `gorm:"not null;default:true" json:"in_stock"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
