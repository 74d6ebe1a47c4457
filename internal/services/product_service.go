package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"katalog/internal/apperrors"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/validation"

	"github.com/google/uuid"
)

const duplicateProductMessage = "Product with this name, category and brand already exists"

// EventPublisher publishes catalog change events. A nil publisher is
// tolerated; publishing is best effort and never fails the request.
type EventPublisher interface {
	PublishCatalogEvent(event string, payload map[string]interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateProduct validates the form fields, rejects duplicates on
// (name, category, brand) and creates the product with the uploaded images.
func (s *ProductService) CreateProduct(form models.ProductForm, uploaded []models.Image) (*models.Product, error) {
	if err := validation.ProductName(form.Name); err != nil {
		return nil, err
	}
	price, err := validation.Price(form.Price)
	if err != nil {
		return nil, err
	}
	if err := validation.Category(form.Category); err != nil {
		return nil, err
	}
	if err := validation.Brand(form.Brand); err != nil {
		return nil, err
	}
	stock, err := validation.Stock(form.Stock)
	if err != nil {
		return nil, err
	}
	discount, err := validation.DiscountPercentage(form.DiscountPercentage)
	if err != nil {
		return nil, err
	}
	if err := validation.Description(form.Description); err != nil {
		return nil, err
	}
	images, err := validation.Images(applyAltText(uploaded, form.AltText))
	if err != nil {
		return nil, err
	}

	duplicate, err := s.repo.FindDuplicate(form.Name, form.Category, form.Brand)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate product: %w", err)
	}
	if duplicate != nil {
		return nil, apperrors.NewConflict("product", duplicateProductMessage)
	}

	product := &models.Product{
		Name:               strings.TrimSpace(form.Name),
		Price:              price,
		Description:        strings.TrimSpace(form.Description),
		Category:           strings.TrimSpace(form.Category),
		Brand:              strings.TrimSpace(form.Brand),
		Stock:              stock,
		DiscountPercentage: discount,
		Images:             images,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.publish("product.created", product)
	return product, nil
}

// ListProducts validates pagination parameters and returns one page of
// products with pagination metadata. An unrecognized sort falls back to
// createdAt descending.
func (s *ProductService) ListProducts(opts models.ListOptions) ([]models.Product, models.Pagination, error) {
	if opts.Page < 1 {
		return nil, models.Pagination{}, apperrors.NewValidation("page", "Page must be 1 or more")
	}
	if opts.Limit < 1 || opts.Limit > 100 {
		return nil, models.Pagination{}, apperrors.NewValidation("limit", "Limit must be between 1 and 100")
	}

	products, total, err := s.repo.List(opts)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list products: %w", err)
	}

	pagination := models.Pagination{
		Total:      total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(opts.Limit))),
	}
	return products, pagination, nil
}

// UpdateProduct merges only the provided fields into the existing record.
// The image list is rebuilt from the client's existingImages plus the new
// uploads; when neither is present the stored images are kept.
func (s *ProductService) UpdateProduct(id string, form models.ProductUpdateForm, uploaded []models.Image) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewInvalidID(id)
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", id, err)
	}
	if product == nil {
		return nil, apperrors.NewNotFound("Product", id)
	}

	if form.Name != nil {
		if err := validation.ProductName(*form.Name); err != nil {
			return nil, err
		}
		product.Name = strings.TrimSpace(*form.Name)
	}
	if form.Price != nil {
		price, err := validation.Price(*form.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if form.Description != nil {
		if err := validation.Description(*form.Description); err != nil {
			return nil, err
		}
		product.Description = strings.TrimSpace(*form.Description)
	}
	if form.Category != nil {
		if err := validation.Category(*form.Category); err != nil {
			return nil, err
		}
		product.Category = strings.TrimSpace(*form.Category)
	}
	if form.Brand != nil {
		if err := validation.Brand(*form.Brand); err != nil {
			return nil, err
		}
		product.Brand = strings.TrimSpace(*form.Brand)
	}
	if form.Stock != nil {
		stock, err := validation.Stock(*form.Stock)
		if err != nil {
			return nil, err
		}
		product.Stock = stock
	}
	if form.DiscountPercentage != nil {
		discount, err := validation.DiscountPercentage(*form.DiscountPercentage)
		if err != nil {
			return nil, err
		}
		product.DiscountPercentage = discount
	}

	if form.ExistingImages != nil || len(uploaded) > 0 {
		images, err := mergeImages(form.ExistingImages, applyAltText(uploaded, form.AltText))
		if err != nil {
			return nil, err
		}
		product.Images = images
	}

	// The composite key may have changed; re-check uniqueness against other
	// records.
	duplicate, err := s.repo.FindDuplicate(product.Name, product.Category, product.Brand)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate product: %w", err)
	}
	if duplicate != nil && duplicate.ID != product.ID {
		return nil, apperrors.NewConflict("product", duplicateProductMessage)
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.publish("product.updated", product)
	return product, nil
}

// DeleteProduct removes a product by id, distinguishing a malformed id from
// a missing record.
func (s *ProductService) DeleteProduct(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewInvalidID(id)
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("product.deleted", &models.Product{ID: id})
	return nil
}

// mergeImages concatenates the client-serialized existing images with the
// newly uploaded ones and enforces the combined cap.
func mergeImages(existingJSON *string, uploaded []models.Image) ([]models.Image, error) {
	var images []models.Image
	if existingJSON != nil && strings.TrimSpace(*existingJSON) != "" {
		if err := json.Unmarshal([]byte(*existingJSON), &images); err != nil {
			return nil, apperrors.NewValidation("existingImages", "existingImages must be a valid JSON list of images")
		}
	}
	images = append(images, uploaded...)
	return validation.Images(images)
}

// applyAltText sets the form's altText on uploads that have none.
func applyAltText(images []models.Image, altText string) []models.Image {
	if altText == "" {
		return images
	}
	withAlt := make([]models.Image, 0, len(images))
	for _, img := range images {
		if img.Alt == "" {
			img.Alt = altText
		}
		withAlt = append(withAlt, img)
	}
	return withAlt
}

// publish sends a catalog event. Failures are logged and swallowed: the
// write has already committed.
func (s *ProductService) publish(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
		"category":  product.Category,
		"brand":     product.Brand,
	}
	if err := s.publisher.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}
