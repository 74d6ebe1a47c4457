package repositories

import "katalog/internal/models"

// UserRepository defines the interface for user data access. Lookups return
// (nil, nil) when no record matches; absence is not an error.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
