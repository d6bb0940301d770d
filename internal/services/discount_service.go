package services

import (
	"errors"
	"fmt"
	"strings"

	"starlitsips/internal/models"
	"starlitsips/internal/repositories"
)

// Discount failures the handler maps to inline warnings.
var (
	ErrEmptyDiscountCode   = errors.New("discount code is required")
	ErrInvalidDiscountRate = errors.New("discount percentage must be between 5 and 50")
)

// DiscountService manages the durable code-to-percentage mapping: admins
// create codes, customers redeem them case-insensitively.
type DiscountService struct {
	repo repositories.DiscountRepository
}

// NewDiscountService creates a new DiscountService.
func NewDiscountService(repo repositories.DiscountRepository) *DiscountService {
	return &DiscountService{
		repo: repo,
	}
}

// CreateCode defines (or redefines) a discount code. Codes are normalized to
// upper case before storage.
func (s *DiscountService) CreateCode(code string, percent int) (*models.DiscountCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrEmptyDiscountCode
	}
	if percent < 5 || percent > 50 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDiscountRate, percent)
	}

	discount := &models.DiscountCode{
		Code:    code,
		Percent: percent,
	}
	if err := s.repo.Save(discount); err != nil {
		return nil, fmt.Errorf("failed to save discount code %s: %w", code, err)
	}
	return discount, nil
}

// Redeem looks up a code case-insensitively. An unknown code yields an
// explicit not-found error; an empty code is rejected before lookup.
func (s *DiscountService) Redeem(code string) (*models.DiscountCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrEmptyDiscountCode
	}
	return s.repo.GetByCode(code)
}

// ListCodes retrieves all defined discount codes.
func (s *DiscountService) ListCodes() ([]models.DiscountCode, error) {
	return s.repo.GetAll()
}
