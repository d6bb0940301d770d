package services_test

import (
	"github.com/stretchr/testify/mock"

	"starlitsips/internal/models"
)

// MockMenuRepository is a mock implementation of repositories.MenuRepository
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) GetAll() ([]models.MenuItem, error) {
	args := m.Called()
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetByName(name string) (*models.MenuItem, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Create(item *models.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(item *models.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) DecrementStock(name string, quantity int) (*models.MenuItem, error) {
	args := m.Called(name, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) RestoreStock(name string, quantity int) error {
	args := m.Called(name, quantity)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Upsert(record *models.CustomerRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByName(name string) (*models.CustomerRecord, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomerRecord), args.Error(1)
}

// MockFeedbackRepository is a mock implementation of repositories.FeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) GetAll() ([]models.FeedbackEntry, error) {
	args := m.Called()
	return args.Get(0).([]models.FeedbackEntry), args.Error(1)
}

func (m *MockFeedbackRepository) Create(entry *models.FeedbackEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

// MockDiscountRepository is a mock implementation of repositories.DiscountRepository
type MockDiscountRepository struct {
	mock.Mock
}

func (m *MockDiscountRepository) GetAll() ([]models.DiscountCode, error) {
	args := m.Called()
	return args.Get(0).([]models.DiscountCode), args.Error(1)
}

func (m *MockDiscountRepository) GetByCode(code string) (*models.DiscountCode, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DiscountCode), args.Error(1)
}

func (m *MockDiscountRepository) Save(code *models.DiscountCode) error {
	args := m.Called(code)
	return args.Error(0)
}
