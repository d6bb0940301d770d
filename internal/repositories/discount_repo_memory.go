package repositories

import (
	"fmt"
	"sync"
	"time"

	"starlitsips/internal/models"
)

// InMemoryDiscountRepository is an in-memory implementation of
// DiscountRepository.
type InMemoryDiscountRepository struct {
	codes map[string]models.DiscountCode
	mu    sync.RWMutex
}

// NewInMemoryDiscountRepository creates a new instance of
// InMemoryDiscountRepository.
func NewInMemoryDiscountRepository() *InMemoryDiscountRepository {
	return &InMemoryDiscountRepository{
		codes: make(map[string]models.DiscountCode),
	}
}

// GetAll returns all discount codes.
func (r *InMemoryDiscountRepository) GetAll() ([]models.DiscountCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codeList := make([]models.DiscountCode, 0, len(r.codes))
	for _, code := range r.codes {
		codeList = append(codeList, code)
	}
	return codeList, nil
}

// GetByCode returns a discount code by its (upper-cased) code.
func (r *InMemoryDiscountRepository) GetByCode(code string) (*models.DiscountCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	discount, ok := r.codes[code]
	if !ok {
		return nil, fmt.Errorf("discount code %q: %w", code, ErrDiscountCodeNotFound)
	}
	return &discount, nil
}

// Save creates or overwrites a discount code.
func (r *InMemoryDiscountRepository) Save(code *models.DiscountCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}
	r.codes[code.Code] = *code
	return nil
}
