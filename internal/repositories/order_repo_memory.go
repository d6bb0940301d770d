package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"starlitsips/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
// The order history lives only for the lifetime of the process.
type InMemoryOrderRepository struct {
	orders map[string]models.Order
	ids    []string // preserves placement order for GetAll
	mu     sync.RWMutex
}

// NewInMemoryOrderRepository creates a new instance of InMemoryOrderRepository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// GetAll returns all orders in the order they were placed.
func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.ids))
	for _, id := range r.ids {
		orderList = append(orderList, r.orders[id])
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *InMemoryOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	return &order, nil
}

// Create appends a new order to the history.
func (r *InMemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders[order.ID] = *order
	r.ids = append(r.ids, order.ID)
	return nil
}

// UpdateStatus updates the status of an order.
func (r *InMemoryOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	order.Status = status
	r.orders[id] = order
	return nil
}
