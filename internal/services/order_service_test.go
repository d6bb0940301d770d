package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"starlitsips/internal/models"
	"starlitsips/internal/repositories"
	"starlitsips/internal/services"
)

const testPrepTime = 5 * time.Minute

func newOrderService(orderRepo *MockOrderRepository, menuRepo *MockMenuRepository, customerRepo *MockCustomerRepository) *services.OrderService {
	return services.NewOrderService(orderRepo, menuRepo, customerRepo, nil, testPrepTime)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockMenu := new(MockMenuRepository)
	mockCustomers := new(MockCustomerRepository)
	service := newOrderService(mockOrders, mockMenu, mockCustomers)

	decremented := &models.MenuItem{Name: "Americano", Price: 5.0, Stock: 97}
	mockMenu.On("DecrementStock", "Americano", 3).Return(decremented, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockCustomers.On("Upsert", mock.AnythingOfType("*models.CustomerRecord")).Return(nil).Once()

	before := time.Now()
	order, err := service.PlaceOrder(models.PlaceOrderRequest{
		CustomerName: "Chitra",
		Item:         "Americano",
		Size:         models.SizeMedium,
		Quantity:     3,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Americano", order.Item)
	assert.Equal(t, models.SizeMedium, order.Size)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, 5.0, order.UnitPrice)
	assert.Equal(t, 15.0, order.Total)
	assert.Equal(t, "Order Received", order.Status)
	assert.False(t, order.CreatedAt.Before(before))
	assert.Equal(t, order.CreatedAt.Add(testPrepTime), order.ReadyAt)

	mockOrders.AssertExpectations(t)
	mockMenu.AssertExpectations(t)
	mockCustomers.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_ZeroQuantity(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockMenu := new(MockMenuRepository)
	mockCustomers := new(MockCustomerRepository)
	service := newOrderService(mockOrders, mockMenu, mockCustomers)

	order, err := service.PlaceOrder(models.PlaceOrderRequest{
		CustomerName: "Chitra",
		Item:         "Americano",
		Size:         models.SizeSmall,
		Quantity:     0,
	})
	assert.ErrorIs(t, err, services.ErrZeroQuantity)
	assert.Nil(t, order)

	// No order is created and no stock is touched.
	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
	mockMenu.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_EmptyCustomerName(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockMenu := new(MockMenuRepository)
	mockCustomers := new(MockCustomerRepository)
	service := newOrderService(mockOrders, mockMenu, mockCustomers)

	order, err := service.PlaceOrder(models.PlaceOrderRequest{
		CustomerName: "",
		Item:         "Americano",
		Size:         models.SizeSmall,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, services.ErrEmptyCustomerName)
	assert.Nil(t, order)
	mockMenu.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_InvalidSizeAndAddOn(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockMenu := new(MockMenuRepository)
	mockCustomers := new(MockCustomerRepository)
	service := newOrderService(mockOrders, mockMenu, mockCustomers)

	_, err := service.PlaceOrder(models.PlaceOrderRequest{
		CustomerName: "Chitra",
		Item:         "Americano",
		Size:         "Venti",
		Quantity:     1,
	})
	assert.ErrorIs(t, err, services.ErrInvalidSize)

	_, err = service.PlaceOrder(models.PlaceOrderRequest{
		CustomerName: "Chitra",
		Item:         "Americano",
		Size:         models.SizeSmall,
		AddOns:       []string{"Oat Milk"},
		Quantity:     1,
	})
	assert.ErrorIs(t, err, services.ErrInvalidAddOn)

	mockMenu.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockMenu := new(MockMenuRepository)
	mockCustomers := new(MockCustomerRepository)
	service := newOrderService(mockOrders, mockMenu, mockCustomers)

	mockMenu.On("DecrementStock", "Espresso", 50).
		Return(nil, fmt.Errorf("%w for %q (requested: 50, available: 30)",
			repositories.ErrInsufficientStock, "Espresso")).Once()

	order, err := service.PlaceOrder(models.PlaceOrderRequest{
		CustomerName: "Jayaraj",
		Item:         "Espresso",
		Size:         models.SizeLarge,
		Quantity:     50,
	})
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)
	assert.Nil(t, order)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
	mockMenu.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_RestoresStockOnAppendFailure(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockMenu := new(MockMenuRepository)
	mockCustomers := new(MockCustomerRepository)
	service := newOrderService(mockOrders, mockMenu, mockCustomers)

	decremented := &models.MenuItem{Name: "Latte", Price: 6.5, Stock: 73}
	mockMenu.On("DecrementStock", "Latte", 2).Return(decremented, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("storage error")).Once()
	mockMenu.On("RestoreStock", "Latte", 2).Return(nil).Once()

	order, err := service.PlaceOrder(models.PlaceOrderRequest{
		CustomerName: "Yazid",
		Item:         "Latte",
		Size:         models.SizeMedium,
		Quantity:     2,
	})
	assert.Error(t, err)
	assert.Nil(t, order)
	mockMenu.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
	mockCustomers.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestOrderService_PlaceOrder_ResubmissionCreatesNewOrder(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockMenu := new(MockMenuRepository)
	mockCustomers := new(MockCustomerRepository)
	service := newOrderService(mockOrders, mockMenu, mockCustomers)

	decremented := &models.MenuItem{Name: "Americano", Price: 5.0, Stock: 99}
	mockMenu.On("DecrementStock", "Americano", 1).Return(decremented, nil).Twice()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Twice()
	mockCustomers.On("Upsert", mock.AnythingOfType("*models.CustomerRecord")).Return(nil).Twice()

	req := models.PlaceOrderRequest{
		CustomerName: "Ilhan",
		Item:         "Americano",
		Size:         models.SizeSmall,
		Quantity:     1,
	}
	first, err := service.PlaceOrder(req)
	assert.NoError(t, err)
	second, err := service.PlaceOrder(req)
	assert.NoError(t, err)

	// No idempotency key: the same request yields two distinct orders.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestOrderService_StockConservation(t *testing.T) {
	// Property check over the real repositories: after N successful orders of
	// quantities q1..qn the remaining stock is the initial stock minus the sum.
	menuRepo := repositories.NewInMemoryMenuRepository()
	orderRepo := repositories.NewInMemoryOrderRepository()
	customerRepo := repositories.NewInMemoryCustomerRepository()
	service := services.NewOrderService(orderRepo, menuRepo, customerRepo, nil, testPrepTime)

	assert.NoError(t, menuRepo.Create(&models.MenuItem{Name: "Cappuccino", Price: 6.0, Stock: 50}))

	quantities := []int{5, 1, 12, 7, 3}
	sum := 0
	for _, q := range quantities {
		_, err := service.PlaceOrder(models.PlaceOrderRequest{
			CustomerName: "Sudeskh",
			Item:         "Cappuccino",
			Size:         models.SizeMedium,
			Quantity:     q,
		})
		assert.NoError(t, err)
		sum += q
	}

	item, err := menuRepo.GetByName("Cappuccino")
	assert.NoError(t, err)
	assert.Equal(t, 50-sum, item.Stock)
	assert.GreaterOrEqual(t, item.Stock, 0)

	orders, err := orderRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, orders, len(quantities))
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockMenu := new(MockMenuRepository)
	mockCustomers := new(MockCustomerRepository)
	service := newOrderService(mockOrders, mockMenu, mockCustomers)

	updated := &models.Order{ID: "order-1", CustomerName: "Chitra", Status: "Ready"}
	mockOrders.On("UpdateStatus", "order-1", "Ready").Return(nil).Once()
	mockOrders.On("GetByID", "order-1").Return(updated, nil).Once()
	mockCustomers.On("Upsert", mock.AnythingOfType("*models.CustomerRecord")).Return(nil).Once()

	err := service.UpdateOrderStatus("order-1", "Ready")
	assert.NoError(t, err)
	mockOrders.AssertExpectations(t)
	mockCustomers.AssertExpectations(t)

	// Unknown statuses are rejected before the repository is touched.
	err = service.UpdateOrderStatus("order-1", "Teleported")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
}

func TestOrderService_GetCustomer(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockMenu := new(MockMenuRepository)
	mockCustomers := new(MockCustomerRepository)
	service := newOrderService(mockOrders, mockMenu, mockCustomers)

	record := &models.CustomerRecord{CustomerName: "Chitra", Status: "Order Received"}
	mockCustomers.On("GetByName", "Chitra").Return(record, nil).Once()

	got, err := service.GetCustomer("Chitra")
	assert.NoError(t, err)
	assert.Equal(t, record, got)

	mockCustomers.On("GetByName", "Nobody").
		Return(nil, fmt.Errorf("customer %q: %w", "Nobody", repositories.ErrCustomerNotFound)).Once()
	got, err = service.GetCustomer("Nobody")
	assert.ErrorIs(t, err, repositories.ErrCustomerNotFound)
	assert.Nil(t, got)
	mockCustomers.AssertExpectations(t)
}
