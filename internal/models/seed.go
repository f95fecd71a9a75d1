package models

import (
	"errors"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func money(units int64) Money {
	return NewMoneyFromDecimal(decimal.NewFromInt(units))
}

// DefaultCatalog is the fixed product catalog served by the store.
// Product ids are stable: clients and tests reference them directly.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Diamond Engagement Ring",
			Price:       money(2999),
			Image:       "https://images.luxejewelry.example/products/diamond-engagement-ring.jpg",
			Description: "Classic solitaire ring with a brilliant-cut diamond on an 18k white gold band.",
			Category:    "rings",
			InStock:     true,
		},
		{
			ID:          2,
			Name:        "Gold Pearl Necklace",
			Price:       money(899),
			Image:       "https://images.luxejewelry.example/products/gold-pearl-necklace.jpg",
			Description: "Freshwater pearl pendant on a 14k gold chain.",
			Category:    "necklaces",
			InStock:     true,
		},
		{
			ID:          3,
			Name:        "Silver Charm Bracelet",
			Price:       money(349),
			Image:       "https://images.luxejewelry.example/products/silver-charm-bracelet.jpg",
			Description: "Sterling silver bracelet with five handcrafted charms.",
			Category:    "bracelets",
			InStock:     true,
		},
		{
			ID:          4,
			Name:        "Sapphire Stud Earrings",
			Price:       money(599),
			Image:       "https://images.luxejewelry.example/products/sapphire-stud-earrings.jpg",
			Description: "Blue sapphire studs set in platinum.",
			Category:    "earrings",
			InStock:     true,
		},
		{
			ID:          5,
			Name:        "Emerald Pendant Necklace",
			Price:       money(1299),
			Image:       "https://images.luxejewelry.example/products/emerald-pendant-necklace.jpg",
			Description: "Colombian emerald pendant framed by pave diamonds.",
			Category:    "necklaces",
			InStock:     true,
		},
		{
			ID:          6,
			Name:        "Rose Gold Tennis Bracelet",
			Price:       money(1599),
			Image:       "https://images.luxejewelry.example/products/rose-gold-tennis-bracelet.jpg",
			Description: "Rose gold bracelet lined with lab-grown diamonds.",
			Category:    "bracelets",
			InStock:     false,
		},
	}
}

// SeedProducts inserts missing catalog entries. Existing rows are left
// untouched, so reseeding a persistent database is safe.
func SeedProducts(db *gorm.DB) (int, error) {
	created := 0
	for _, product := range DefaultCatalog() {
		var existing Product
		err := db.First(&existing, product.ID).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		if err := db.Create(&product).Error; err != nil {
			return created, err
		}
		created++
	}
	if created > 0 {
		logger.Infow("catalog_seeded", "created", created)
	}
	return created, nil
}
