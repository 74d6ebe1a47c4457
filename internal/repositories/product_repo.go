package repositories

import "katalog/internal/models"

// ProductRepository defines the interface for product data access. GetByID
// and FindDuplicate return (nil, nil) when no record matches.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	FindDuplicate(name, category, brand string) (*models.Product, error)
	List(opts models.ListOptions) ([]models.Product, int64, error)
	Update(product *models.Product) error
	Delete(id string) error
}
