package repositories

import (
	"fmt"
	"sync"

	"starlitsips/internal/models"
)

// InMemoryCustomerRepository is an in-memory implementation of
// CustomerRepository.
type InMemoryCustomerRepository struct {
	records map[string]models.CustomerRecord
	mu      sync.RWMutex
}

// NewInMemoryCustomerRepository creates a new instance of
// InMemoryCustomerRepository.
func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		records: make(map[string]models.CustomerRecord),
	}
}

// Upsert stores the record, replacing any previous one for the same name.
func (r *InMemoryCustomerRepository) Upsert(record *models.CustomerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.CustomerName] = *record
	return nil
}

// GetByName returns the latest record for a customer name.
func (r *InMemoryCustomerRepository) GetByName(name string) (*models.CustomerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[name]
	if !ok {
		return nil, fmt.Errorf("customer %q: %w", name, ErrCustomerNotFound)
	}
	return &record, nil
}
