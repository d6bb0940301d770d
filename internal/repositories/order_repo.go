package repositories

import (
	"errors"

	"starlitsips/internal/models"
)

// ErrOrderNotFound is returned when an order ID is unknown.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access. Orders form an
// append-only sequence: GetAll returns them in placement order.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
}
