package services

import (
	"fmt"

	"starlitsips/internal/models"
	"starlitsips/internal/repositories"
)

// MenuService handles business logic related to the catalog.
type MenuService struct {
	repo repositories.MenuRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(repo repositories.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// GetMenu retrieves all menu items.
func (s *MenuService) GetMenu() ([]models.MenuItem, error) {
	return s.repo.GetAll()
}

// GetItem retrieves a single menu item by its name.
func (s *MenuService) GetItem(name string) (*models.MenuItem, error) {
	return s.repo.GetByName(name)
}

// AddItem adds a new item to the catalog.
func (s *MenuService) AddItem(item *models.MenuItem) error {
	if item.Price <= 0 {
		return fmt.Errorf("price must be greater than zero, got %.2f", item.Price)
	}
	if item.Stock < 0 {
		return fmt.Errorf("stock cannot be negative, got %d", item.Stock)
	}
	return s.repo.Create(item)
}

// UpdateItem applies an admin price/stock change to one item. A rejected
// update leaves the stored item untouched.
func (s *MenuService) UpdateItem(name string, update models.MenuItemUpdate) (*models.MenuItem, error) {
	if update.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than zero, got %.2f", update.Price)
	}
	if update.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative, got %d", update.Stock)
	}

	item, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}

	item.Price = update.Price
	item.Stock = update.Stock
	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update menu item %q: %w", name, err)
	}
	return item, nil
}
