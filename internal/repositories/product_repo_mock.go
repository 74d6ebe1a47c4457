package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"katalog/internal/apperrors"
	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// All mutation goes through the mutex, so concurrent requests cannot corrupt
// the map.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

// GetByID returns a product by its ID, or (nil, nil) if absent.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// FindDuplicate returns a product matching the trimmed name, category and
// brand, or (nil, nil) if none exists.
func (r *MockProductRepository) FindDuplicate(name, category, brand string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	brand = strings.TrimSpace(brand)
	for _, p := range r.products {
		if p.Name == name && p.Category == category && p.Brand == brand {
			match := p
			return &match, nil
		}
	}
	return nil, nil
}

// List filters, sorts and paginates the in-memory set.
func (r *MockProductRepository) List(opts models.ListOptions) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if opts.Category != "" && p.Category != strings.TrimSpace(opts.Category) {
			continue
		}
		if opts.Brand != "" && p.Brand != strings.TrimSpace(opts.Brand) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortBy, order := opts.SortBy, strings.ToLower(opts.Order)
	if _, ok := sortColumns[sortBy]; !ok {
		sortBy, order = "createdAt", "desc"
	} else if order != "asc" && order != "desc" {
		order = "desc"
	}
	sort.Slice(filtered, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "price":
			less = filtered[i].Price < filtered[j].Price
		case "name":
			less = filtered[i].Name < filtered[j].Name
		default:
			less = filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		}
		if order == "desc" {
			return !less
		}
		return less
	})

	total := int64(len(filtered))
	start := (opts.Page - 1) * opts.Limit
	if start >= len(filtered) {
		return []models.Product{}, total, nil
	}
	end := start + opts.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

// Update replaces an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return apperrors.NewNotFound("Product", product.ID)
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperrors.NewNotFound("Product", id)
	}
	delete(r.products, id)
	return nil
}
