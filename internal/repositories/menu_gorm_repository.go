package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"starlitsips/internal/models"
)

// GORMMenuRepository is a GORM implementation of MenuRepository, used when a
// database driver is configured instead of the in-memory catalog.
type GORMMenuRepository struct {
	db *gorm.DB
}

// NewGORMMenuRepository creates a new instance of GORMMenuRepository.
func NewGORMMenuRepository(db *gorm.DB) *GORMMenuRepository {
	return &GORMMenuRepository{
		db: db,
	}
}

// GetAll retrieves all menu items from the database.
func (r *GORMMenuRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all menu items: %w", err)
	}
	return items, nil
}

// GetByName retrieves a single menu item by its name from the database.
func (r *GORMMenuRepository) GetByName(name string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %q: %w", name, ErrMenuItemNotFound)
		}
		return nil, fmt.Errorf("failed to get menu item %q: %w", name, err)
	}
	return &item, nil
}

// Create creates a new menu item in the database.
func (r *GORMMenuRepository) Create(item *models.MenuItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

// Update updates an existing menu item in the database.
func (r *GORMMenuRepository) Update(item *models.MenuItem) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update menu item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu item %q: %w", item.Name, ErrMenuItemNotFound)
	}
	return nil
}

// DecrementStock subtracts quantity in a single guarded UPDATE, so two
// concurrent orders cannot both pass the stock check.
func (r *GORMMenuRepository) DecrementStock(name string, quantity int) (*models.MenuItem, error) {
	res := r.db.Model(&models.MenuItem{}).
		Where("name = ? AND stock >= ?", name, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to decrement stock for %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the item does not exist or the stock was too low.
		item, err := r.GetByName(name)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w for %q (requested: %d, available: %d)",
			ErrInsufficientStock, name, quantity, item.Stock)
	}
	return r.GetByName(name)
}

// RestoreStock adds quantity back to the item's stock.
func (r *GORMMenuRepository) RestoreStock(name string, quantity int) error {
	res := r.db.Model(&models.MenuItem{}).
		Where("name = ?", name).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("failed to restore stock for %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu item %q: %w", name, ErrMenuItemNotFound)
	}
	return nil
}
