// Package validation holds pure field predicates applied to raw request
// fields before any persistence access. Checks are sequential: the first
// violated rule wins.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"katalog/internal/apperrors"
	"katalog/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSymbols = "!@#$%^&*()-_=+[]{};:,.<>?"

// DefaultImageAlt is used when an uploaded image has no alt text.
const DefaultImageAlt = "Product Image"

// MaxImages caps the combined image list (existing + newly uploaded).
const MaxImages = 5

// NormalizeEmail lowercases and trims an email so all comparisons and storage
// are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserName validates a user name: trimmed length in [2,50].
func UserName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > 50 {
		return apperrors.NewValidation("name", "Name must be between 2 and 50 characters")
	}
	return nil
}

// Email validates the email format. Callers must normalize first.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return apperrors.NewValidation("email", "Invalid email format")
	}
	return nil
}

// Password enforces the password policy: at least 8 characters with one
// uppercase, one lowercase, one digit and one symbol.
func Password(password string) error {
	var missing []string
	if len(password) < 8 {
		missing = append(missing, "at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		missing = append(missing, "an uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "a lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "a digit")
	}
	if !hasSymbol {
		missing = append(missing, "a symbol")
	}
	if len(missing) > 0 {
		return apperrors.NewValidation("password",
			fmt.Sprintf("Password must contain %s", strings.Join(missing, ", ")))
	}
	return nil
}

// ConfirmPassword checks that the confirmation exactly matches the password.
func ConfirmPassword(password, confirm string) error {
	if password != confirm {
		return apperrors.NewValidation("confirmPassword", "Passwords do not match")
	}
	return nil
}

// ProductName validates a product name: trimmed length in [2,100].
func ProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > 100 {
		return apperrors.NewValidation("name", "Name must be between 2 and 100 characters")
	}
	return nil
}

// Price parses a price field: finite float greater than zero.
func Price(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, apperrors.NewValidation("price", "Price must be a number greater than 0")
	}
	return price, nil
}

// Stock parses a stock field: integer greater than or equal to zero.
func Stock(raw string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || stock < 0 {
		return 0, apperrors.NewValidation("stock", "Stock must be an integer of 0 or more")
	}
	return stock, nil
}

// DiscountPercentage parses an optional discount field in [0,100]. An empty
// value defaults to 0.
func DiscountPercentage(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	discount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(discount) || discount < 0 || discount > 100 {
		return 0, apperrors.NewValidation("discountPercentage", "Discount percentage must be a number between 0 and 100")
	}
	return discount, nil
}

// Category validates a category field: trimmed length of at least 2.
func Category(raw string) error {
	if len(strings.TrimSpace(raw)) < 2 {
		return apperrors.NewValidation("category", "Category must be at least 2 characters")
	}
	return nil
}

// Brand validates a brand field: trimmed length of at least 2.
func Brand(raw string) error {
	if len(strings.TrimSpace(raw)) < 2 {
		return apperrors.NewValidation("brand", "Brand must be at least 2 characters")
	}
	return nil
}

// Description validates an optional description: trimmed length up to 1000.
func Description(raw string) error {
	if len(strings.TrimSpace(raw)) > 1000 {
		return apperrors.NewValidation("description", "Description must be at most 1000 characters")
	}
	return nil
}

// Images checks the combined image list: at most MaxImages entries, every URL
// non-empty, missing alt text filled with DefaultImageAlt. The normalized
// list is returned.
func Images(images []models.Image) ([]models.Image, error) {
	if len(images) > MaxImages {
		return nil, apperrors.NewValidation("images",
			fmt.Sprintf("A product can have at most %d images", MaxImages))
	}
	normalized := make([]models.Image, 0, len(images))
	for _, img := range images {
		if img.URL == "" {
			return nil, apperrors.NewValidation("images", "Image URL must not be empty")
		}
		if img.Alt == "" {
			img.Alt = DefaultImageAlt
		}
		normalized = append(normalized, img)
	}
	return normalized, nil
}
