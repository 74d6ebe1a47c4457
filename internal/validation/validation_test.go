package validation_test

import (
	"strings"
	"testing"

	"katalog/internal/models"
	"katalog/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", validation.NormalizeEmail("  User@Example.COM "))
}

func TestEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		assert.NoError(t, validation.Email(email), email)
	}
	invalid := []string{"", "plain", "no@dot", "two@@example.com", "spa ce@example.com", "@example.com"}
	for _, email := range invalid {
		assert.Error(t, validation.Email(email), email)
	}
}

func TestUserName(t *testing.T) {
	assert.NoError(t, validation.UserName("Jo"))
	assert.NoError(t, validation.UserName("  Jo  ")) // trimmed before checking
	assert.Error(t, validation.UserName("J"))
	assert.Error(t, validation.UserName(" "))
	assert.Error(t, validation.UserName(strings.Repeat("a", 51)))
}

func TestProductName(t *testing.T) {
	assert.NoError(t, validation.ProductName(strings.Repeat("a", 100)))
	assert.Error(t, validation.ProductName(strings.Repeat("a", 101)))
	assert.Error(t, validation.ProductName("x"))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, validation.Password("Str0ng!Pass"))

	weak := []string{
		"Sh0rt!x",      // too short
		"alllower1!",   // no uppercase
		"ALLUPPER1!",   // no lowercase
		"NoDigits!!ab", // no digit
		"NoSymbol12ab", // no symbol
	}
	for _, password := range weak {
		err := validation.Password(password)
		assert.Error(t, err, password)
	}

	// The failure message itemizes every unmet requirement.
	err := validation.Password("short")
	assert.ErrorContains(t, err, "at least 8 characters")
	assert.ErrorContains(t, err, "an uppercase letter")
	assert.ErrorContains(t, err, "a digit")
	assert.ErrorContains(t, err, "a symbol")
}

func TestPriceStockDiscount(t *testing.T) {
	price, err := validation.Price("19.99")
	assert.NoError(t, err)
	assert.Equal(t, 19.99, price)

	for _, raw := range []string{"0", "-1", "abc", "", "NaN", "Inf"} {
		_, err := validation.Price(raw)
		assert.Error(t, err, raw)
	}

	stock, err := validation.Stock("0")
	assert.NoError(t, err)
	assert.Equal(t, 0, stock)
	for _, raw := range []string{"-1", "1.5", "many", ""} {
		_, err := validation.Stock(raw)
		assert.Error(t, err, raw)
	}

	discount, err := validation.DiscountPercentage("")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, discount)
	discount, err = validation.DiscountPercentage("12.5")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, discount)
	for _, raw := range []string{"-1", "100.1", "lots"} {
		_, err := validation.DiscountPercentage(raw)
		assert.Error(t, err, raw)
	}
}

func TestDescription(t *testing.T) {
	assert.NoError(t, validation.Description(""))
	assert.NoError(t, validation.Description(strings.Repeat("d", 1000)))
	assert.Error(t, validation.Description(strings.Repeat("d", 1001)))
}

func TestImages(t *testing.T) {
	images, err := validation.Images([]models.Image{
		{URL: "/uploads/images-1.jpg"},
		{URL: "/uploads/images-2.jpg", Alt: "Side view"},
	})
	assert.NoError(t, err)
	assert.Equal(t, validation.DefaultImageAlt, images[0].Alt)
	assert.Equal(t, "Side view", images[1].Alt)

	tooMany := make([]models.Image, validation.MaxImages+1)
	for i := range tooMany {
		tooMany[i].URL = "/uploads/x.jpg"
	}
	_, err = validation.Images(tooMany)
	assert.Error(t, err)

	_, err = validation.Images([]models.Image{{URL: ""}})
	assert.Error(t, err)
}
