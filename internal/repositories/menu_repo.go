package repositories

import (
	"errors"

	"starlitsips/internal/models"
)

// Sentinel errors shared by all MenuRepository implementations.
var (
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// MenuRepository defines the interface for catalog data access.
type MenuRepository interface {
	GetAll() ([]models.MenuItem, error)
	GetByName(name string) (*models.MenuItem, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	// DecrementStock atomically subtracts quantity from the item's stock and
	// returns the updated item. It fails with ErrInsufficientStock if the
	// remaining stock is smaller than quantity, leaving the stock unchanged.
	DecrementStock(name string, quantity int) (*models.MenuItem, error)
	// RestoreStock adds quantity back after a failed order step.
	RestoreStock(name string, quantity int) error
}
