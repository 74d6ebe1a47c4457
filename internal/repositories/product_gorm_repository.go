package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"katalog/internal/apperrors"
	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns is the allow-list of sortable fields mapped to their columns.
var sortColumns = map[string]string{
	"price":     "price",
	"createdAt": "created_at",
	"name":      "name",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product. The composite unique index on
// (name, category, brand) rejects duplicates that slipped past the
// FindDuplicate pre-check.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// FindDuplicate looks up a product with the same trimmed name, category and
// brand.
func (r *GORMProductRepository) FindDuplicate(name, category, brand string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product,
		"name = ? AND category = ? AND brand = ?",
		strings.TrimSpace(name), strings.TrimSpace(category), strings.TrimSpace(brand),
	).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check for duplicate product: %w", err)
	}
	return &product, nil
}

// List returns one page of products plus the total count before pagination.
// The caller validates page and limit; an unrecognized sort falls back to
// createdAt descending.
func (r *GORMProductRepository) List(opts models.ListOptions) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if opts.Category != "" {
		query = query.Where("category = ?", strings.TrimSpace(opts.Category))
	}
	if opts.Brand != "" {
		query = query.Where("brand = ?", strings.TrimSpace(opts.Brand))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	column, ok := sortColumns[opts.SortBy]
	order := strings.ToLower(opts.Order)
	if !ok {
		column, order = "created_at", "desc"
	} else if order != "asc" && order != "desc" {
		order = "desc"
	}

	var products []models.Product
	offset := (opts.Page - 1) * opts.Limit
	err := query.
		Order(column + " " + order).
		Offset(offset).
		Limit(opts.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// Update saves the full product row. The service merges partial fields into
// the loaded record before calling this.
func (r *GORMProductRepository) Update(product *models.Product) error {
	product.UpdatedAt = time.Now()
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Product", product.ID)
	}
	return nil
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Product", id)
	}
	return nil
}
