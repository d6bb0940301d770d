package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"starlitsips/internal/models"
	"starlitsips/internal/repositories"
	"starlitsips/internal/services"
)

func TestDiscountService_CreateCode(t *testing.T) {
	mockRepo := new(MockDiscountRepository)
	service := services.NewDiscountService(mockRepo)

	mockRepo.On("Save", mock.AnythingOfType("*models.DiscountCode")).Return(nil).Once()

	// Codes are normalized to upper case before storage.
	discount, err := service.CreateCode("brew10", 10)
	assert.NoError(t, err)
	assert.Equal(t, "BREW10", discount.Code)
	assert.Equal(t, 10, discount.Percent)
	mockRepo.AssertExpectations(t)
}

func TestDiscountService_CreateCode_Invalid(t *testing.T) {
	mockRepo := new(MockDiscountRepository)
	service := services.NewDiscountService(mockRepo)

	_, err := service.CreateCode("", 10)
	assert.ErrorIs(t, err, services.ErrEmptyDiscountCode)

	_, err = service.CreateCode("BREW", 4)
	assert.ErrorIs(t, err, services.ErrInvalidDiscountRate)

	_, err = service.CreateCode("BREW", 55)
	assert.ErrorIs(t, err, services.ErrInvalidDiscountRate)

	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestDiscountService_Redeem_CaseInsensitive(t *testing.T) {
	mockRepo := new(MockDiscountRepository)
	service := services.NewDiscountService(mockRepo)

	stored := &models.DiscountCode{Code: "50OFF", Percent: 50}
	mockRepo.On("GetByCode", "50OFF").Return(stored, nil).Times(3)

	for _, input := range []string{"50OFF", "50off", "50oFf"} {
		discount, err := service.Redeem(input)
		assert.NoError(t, err)
		assert.Equal(t, 50, discount.Percent)
	}
	mockRepo.AssertExpectations(t)
}

func TestDiscountService_Redeem_NotFound(t *testing.T) {
	mockRepo := new(MockDiscountRepository)
	service := services.NewDiscountService(mockRepo)

	mockRepo.On("GetByCode", "NOSUCHCODE").
		Return(nil, repositories.ErrDiscountCodeNotFound).Once()

	discount, err := service.Redeem("nosuchcode")
	assert.ErrorIs(t, err, repositories.ErrDiscountCodeNotFound)
	assert.Nil(t, discount)
	mockRepo.AssertExpectations(t)
}

func TestDiscountService_Redeem_Empty(t *testing.T) {
	mockRepo := new(MockDiscountRepository)
	service := services.NewDiscountService(mockRepo)

	discount, err := service.Redeem("   ")
	assert.ErrorIs(t, err, services.ErrEmptyDiscountCode)
	assert.Nil(t, discount)
	// An empty code never reaches the repository.
	mockRepo.AssertNotCalled(t, "GetByCode", mock.Anything)
}
