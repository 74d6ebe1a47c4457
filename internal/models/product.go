package models

import "time"

// Image is a single product image reference.
type Image struct {
	URL string `json:"url" validate:"required"`
	Alt string `json:"alt"`
}

// Ratings holds the aggregate rating for a product.
type Ratings struct {
	Average float64 `json:"average" validate:"gte=0,lte=5"`
	Count   int     `json:"count" validate:"gte=0"`
}

// Review is a customer review. UserID is a weak reference to a User; deleting
// the user does not cascade here.
type Review struct {
	UserID    string    `json:"user" validate:"required"`
	Comment   string    `json:"comment" validate:"required"`
	Rating    int       `json:"rating" validate:"gte=1,lte=5"`
	CreatedAt time.Time `json:"created_at"`
}

// Product represents a catalog entry. Images, Ratings and Reviews are stored
// as JSON columns via the GORM serializer. The composite unique index on
// (name, category, brand) backs up the duplicate pre-check in the service.
type Product struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name               string    `json:"name" gorm:"type:varchar(100);uniqueIndex:idx_products_name_category_brand" validate:"required,min=2,max=100"`
	Price              float64   `json:"price" validate:"required,gt=0"`
	Description        string    `json:"description" validate:"omitempty,max=1000"`
	Category           string    `json:"category" gorm:"type:varchar(100);uniqueIndex:idx_products_name_category_brand" validate:"required,min=2"`
	Brand              string    `json:"brand" gorm:"type:varchar(100);uniqueIndex:idx_products_name_category_brand" validate:"required,min=2"`
	Stock              int       `json:"stock" validate:"gte=0"`
	DiscountPercentage float64   `json:"discountPercentage" validate:"gte=0,lte=100"`
	Images             []Image   `json:"images" gorm:"serializer:json;type:text"`
	Ratings            Ratings   `json:"ratings" gorm:"serializer:json;type:text"`
	Reviews            []Review  `json:"reviews" gorm:"serializer:json;type:text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProductForm carries the raw multipart fields for creating a product. The
// service parses and validates them before any persistence access.
type ProductForm struct {
	Name               string
	Price              string
	Description        string
	Category           string
	Brand              string
	Stock              string
	DiscountPercentage string
	AltText            string
}

// ProductUpdateForm carries a partial update: a nil pointer means the field
// was not present in the request and must be left untouched. ExistingImages
// is the client-serialized JSON list of images to keep.
type ProductUpdateForm struct {
	Name               *string
	Price              *string
	Description        *string
	Category           *string
	Brand              *string
	Stock              *string
	DiscountPercentage *string
	ExistingImages     *string
	AltText            string
}

// ListOptions controls filtering, sorting and pagination for product listings.
type ListOptions struct {
	Category string
	Brand    string
	Page     int
	Limit    int
	SortBy   string // "price", "createdAt" or "name"
	Order    string // "asc" or "desc"
}

// Pagination is the metadata returned alongside a product page.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}
