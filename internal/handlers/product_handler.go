package handlers

import (
	"log"
	"mime/multipart"
	"path/filepath"

	"katalog/internal/apperrors"
	"katalog/internal/models"
	"katalog/internal/services"
	"katalog/internal/uploads"
	"katalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service   *services.ProductService
	uploadDir string
	env       string
}

// NewProductHandler creates a new ProductHandler. uploadDir is where image
// files are stored; they are served under /uploads.
func NewProductHandler(service *services.ProductService, uploadDir, env string) *ProductHandler {
	return &ProductHandler{
		service:   service,
		uploadDir: uploadDir,
		env:       env,
	}
}

// RegisterRoutes registers the product routes. Listing is public; mutations
// require authentication.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	products := router.Group("/products")
	products.Get("/", h.HandleGetProducts)
	products.Post("/", authRequired, h.HandleAddProduct)
	products.Put("/:id", authRequired, h.HandleUpdateProduct)
	products.Delete("/:id", authRequired, h.HandleDeleteProduct)
}

// HandleAddProduct creates a product from a multipart form with up to five
// image files in the "images" field.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("Error parsing product form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid multipart form",
		})
	}

	images, err := h.storeFiles(c, form.File[uploads.FieldName])
	if err != nil {
		return respondError(c, err, h.env)
	}

	productForm := models.ProductForm{
		Name:               formValue(form, "name"),
		Price:              formValue(form, "price"),
		Description:        formValue(form, "description"),
		Category:           formValue(form, "category"),
		Brand:              formValue(form, "brand"),
		Stock:              formValue(form, "stock"),
		DiscountPercentage: formValue(form, "discountPercentage"),
		AltText:            formValue(form, "altText"),
	}

	product, err := h.service.CreateProduct(productForm, images)
	if err != nil {
		return respondError(c, err, h.env)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetProducts lists products with optional category/brand filters,
// pagination and sorting.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	opts := models.ListOptions{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
		SortBy:   c.Query("sort"),
		Order:    c.Query("order"),
	}

	products, pagination, err := h.service.ListProducts(opts)
	if err != nil {
		return respondError(c, err, h.env)
	}
	return c.JSON(fiber.Map{
		"products":   products,
		"pagination": pagination,
	})
}

// HandleUpdateProduct applies a partial update: only fields present in the
// form are changed. The image list is existingImages plus new uploads.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("Error parsing product update form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid multipart form",
		})
	}

	images, err := h.storeFiles(c, form.File[uploads.FieldName])
	if err != nil {
		return respondError(c, err, h.env)
	}

	updateForm := models.ProductUpdateForm{
		Name:               formPtr(form, "name"),
		Price:              formPtr(form, "price"),
		Description:        formPtr(form, "description"),
		Category:           formPtr(form, "category"),
		Brand:              formPtr(form, "brand"),
		Stock:              formPtr(form, "stock"),
		DiscountPercentage: formPtr(form, "discountPercentage"),
		ExistingImages:     formPtr(form, "existingImages"),
		AltText:            formValue(form, "altText"),
	}

	product, err := h.service.UpdateProduct(id, updateForm, images)
	if err != nil {
		return respondError(c, err, h.env)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product by id.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, err, h.env)
	}
	return c.JSON(fiber.Map{
		"message": "Deleted successfully",
	})
}

// storeFiles validates and saves uploaded files, returning their public
// image references. Files are fully stored before the service runs.
func (h *ProductHandler) storeFiles(c *fiber.Ctx, files []*multipart.FileHeader) ([]models.Image, error) {
	if len(files) > validation.MaxImages {
		return nil, apperrors.NewValidation("images", "At most 5 image files can be uploaded")
	}
	images := make([]models.Image, 0, len(files))
	for _, file := range files {
		if err := uploads.ValidateFile(file); err != nil {
			return nil, err
		}
		storedName := uploads.GenerateFilename(uploads.FieldName, file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.uploadDir, storedName)); err != nil {
			return nil, err
		}
		images = append(images, models.Image{URL: uploads.PublicURL(storedName)})
	}
	return images, nil
}

// formValue returns the first value of a multipart field, or "".
func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// formPtr returns a pointer to the first value of a multipart field, or nil
// when the field was not sent at all.
func formPtr(form *multipart.Form, key string) *string {
	if values := form.Value[key]; len(values) > 0 {
		return &values[0]
	}
	return nil
}
