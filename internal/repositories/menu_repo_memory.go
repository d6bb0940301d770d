package repositories

import (
	"fmt"
	"sync"

	"starlitsips/internal/models"
)

// InMemoryMenuRepository is a mutex-guarded in-memory implementation of
// MenuRepository. It is the default catalog store: the shop keeps no
// persistent state unless a database driver is configured.
type InMemoryMenuRepository struct {
	items map[string]models.MenuItem
	mu    sync.RWMutex
}

// NewInMemoryMenuRepository creates a new instance of InMemoryMenuRepository.
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		items: make(map[string]models.MenuItem),
	}
}

// GetAll returns all menu items.
func (r *InMemoryMenuRepository) GetAll() ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		itemList = append(itemList, item)
	}
	return itemList, nil
}

// GetByName returns a menu item by its name.
func (r *InMemoryMenuRepository) GetByName(name string) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		return nil, fmt.Errorf("menu item %q: %w", name, ErrMenuItemNotFound)
	}
	return &item, nil
}

// Create adds a new menu item.
func (r *InMemoryMenuRepository) Create(item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.Name] = *item
	return nil
}

// Update modifies an existing menu item.
func (r *InMemoryMenuRepository) Update(item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[item.Name]
	if !ok {
		return fmt.Errorf("menu item %q: %w", item.Name, ErrMenuItemNotFound)
	}
	r.items[item.Name] = *item
	return nil
}

// DecrementStock subtracts quantity from the item's stock under the write
// lock, so concurrent orders can never drive the stock negative.
func (r *InMemoryMenuRepository) DecrementStock(name string, quantity int) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[name]
	if !ok {
		return nil, fmt.Errorf("menu item %q: %w", name, ErrMenuItemNotFound)
	}
	if item.Stock < quantity {
		return nil, fmt.Errorf("%w for %q (requested: %d, available: %d)",
			ErrInsufficientStock, name, quantity, item.Stock)
	}
	item.Stock -= quantity
	r.items[name] = item
	return &item, nil
}

// RestoreStock adds quantity back to the item's stock.
func (r *InMemoryMenuRepository) RestoreStock(name string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[name]
	if !ok {
		return fmt.Errorf("menu item %q: %w", name, ErrMenuItemNotFound)
	}
	item.Stock += quantity
	r.items[name] = item
	return nil
}
