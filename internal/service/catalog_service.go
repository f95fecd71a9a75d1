package service

import (
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/models"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/repository"
)

// CatalogService serves the fixed product catalog.
type CatalogService struct {
	products repository.ProductRepository
}

// NewCatalogService creates a catalog service.
func NewCatalogService(products repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// List returns the catalog, optionally filtered by exact category.
// An unknown category yields an empty list.
func (s *CatalogService) List(category string) ([]models.Product, error) {
	return s.products.List(category)
}

// Get returns the product with the given id.
func (s *CatalogService) Get(id uint) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Categories returns the distinct categories in the catalog.
func (s *CatalogService) Categories() ([]string, error) {
	return s.products.Categories()
}
