package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starlitsips/internal/models"
)

// GORMDiscountRepository is a GORM implementation of DiscountRepository. It
// backs the durable code-to-percentage mapping when a database is configured.
type GORMDiscountRepository struct {
	db *gorm.DB
}

// NewGORMDiscountRepository creates a new instance of GORMDiscountRepository.
func NewGORMDiscountRepository(db *gorm.DB) *GORMDiscountRepository {
	return &GORMDiscountRepository{
		db: db,
	}
}

// GetAll retrieves all discount codes from the database.
func (r *GORMDiscountRepository) GetAll() ([]models.DiscountCode, error) {
	var codes []models.DiscountCode
	if err := r.db.Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all discount codes: %w", err)
	}
	return codes, nil
}

// GetByCode retrieves a discount code from the database.
func (r *GORMDiscountRepository) GetByCode(code string) (*models.DiscountCode, error) {
	var discount models.DiscountCode
	if err := r.db.First(&discount, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("discount code %q: %w", code, ErrDiscountCodeNotFound)
		}
		return nil, fmt.Errorf("failed to get discount code %q: %w", code, err)
	}
	return &discount, nil
}

// Save creates or overwrites a discount code.
func (r *GORMDiscountRepository) Save(code *models.DiscountCode) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"percent"}),
	}).Create(code).Error
	if err != nil {
		return fmt.Errorf("failed to save discount code: %w", err)
	}
	return nil
}
