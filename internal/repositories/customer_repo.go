package repositories

import (
	"errors"

	"starlitsips/internal/models"
)

// ErrCustomerNotFound is returned when no order has been placed under a name.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository tracks the latest order per customer name. Upsert
// overwrites: at most one record exists per name.
type CustomerRepository interface {
	Upsert(record *models.CustomerRecord) error
	GetByName(name string) (*models.CustomerRecord, error)
}
