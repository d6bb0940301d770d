package repositories

import (
	"errors"

	"starlitsips/internal/models"
)

// ErrDiscountCodeNotFound is returned when a redemption code is unknown.
var ErrDiscountCodeNotFound = errors.New("discount code not found")

// DiscountRepository defines the interface for discount code storage. Codes
// are stored upper-cased; callers normalize before lookup.
type DiscountRepository interface {
	GetAll() ([]models.DiscountCode, error)
	GetByCode(code string) (*models.DiscountCode, error)
	// Save creates the code or overwrites its percentage if it already exists.
	Save(code *models.DiscountCode) error
}
