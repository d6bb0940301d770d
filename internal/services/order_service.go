package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"starlitsips/internal/models"
	"starlitsips/internal/repositories"
	"starlitsips/pkg/rabbitmq"
)

// Order placement failures the handler maps to inline warnings.
var (
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrZeroQuantity      = errors.New("quantity must be greater than zero")
	ErrInvalidSize       = errors.New("invalid cup size")
	ErrInvalidAddOn      = errors.New("invalid add-on")
)

// Statuses an order moves through after placement.
var validOrderStatuses = map[string]bool{
	"Order Received": true,
	"Preparing":      true,
	"Ready":          true,
	"Picked Up":      true,
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	menuRepo     repositories.MenuRepository
	customerRepo repositories.CustomerRepository
	mqClient     *rabbitmq.Client // RabbitMQ client, nil disables event publishing
	prepTime     time.Duration    // offset added to "now" for the pickup estimate
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	menuRepo repositories.MenuRepository,
	customerRepo repositories.CustomerRepository,
	mqClient *rabbitmq.Client,
	prepTime time.Duration,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		menuRepo:     menuRepo,
		customerRepo: customerRepo,
		mqClient:     mqClient,
		prepTime:     prepTime,
	}
}

// GetAllOrders retrieves all orders in placement order.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetCustomer retrieves the latest order record for a customer name.
func (s *OrderService) GetCustomer(name string) (*models.CustomerRecord, error) {
	return s.customerRepo.GetByName(name)
}

// PlaceOrder validates the request, reserves stock atomically, appends the
// order to the history and records it as the customer's latest order. Every
// failure leaves the catalog and the history exactly as they were.
func (s *OrderService) PlaceOrder(req models.PlaceOrderRequest) (*models.Order, error) {
	if req.CustomerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrZeroQuantity, req.Quantity)
	}
	if !validSize(req.Size) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSize, req.Size)
	}
	for _, addOn := range req.AddOns {
		if !validAddOn(addOn) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAddOn, addOn)
		}
	}

	// Reserve the stock first. The repository rejects the decrement if the
	// remaining stock is too low, so concurrent orders cannot oversell.
	item, err := s.menuRepo.DecrementStock(req.Item, req.Quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newOrder := &models.Order{
		ID:           uuid.New().String(),
		CustomerName: req.CustomerName,
		Item:         item.Name,
		Size:         req.Size,
		AddOns:       req.AddOns,
		Quantity:     req.Quantity,
		UnitPrice:    item.Price, // price at the time of order
		Total:        float64(req.Quantity) * item.Price,
		Status:       "Order Received",
		CreatedAt:    now,
		ReadyAt:      now.Add(s.prepTime),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		// Compensate the reservation so a failed append never loses stock.
		if restoreErr := s.menuRepo.RestoreStock(item.Name, req.Quantity); restoreErr != nil {
			log.Printf("Failed to restore stock for %s after order error: %v", item.Name, restoreErr)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	record := &models.CustomerRecord{
		CustomerName: req.CustomerName,
		LastOrder:    *newOrder,
		Status:       newOrder.Status,
	}
	if err := s.customerRepo.Upsert(record); err != nil {
		log.Printf("Warning: failed to record customer history for %s: %v", req.CustomerName, err)
	}

	s.publishOrderPlaced(newOrder)

	return newOrder, nil
}

// UpdateOrderStatus updates the status of an existing order and keeps the
// customer's record in step.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !validOrderStatuses[status] {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	record := &models.CustomerRecord{
		CustomerName: order.CustomerName,
		LastOrder:    *order,
		Status:       status,
	}
	if err := s.customerRepo.Upsert(record); err != nil {
		log.Printf("Warning: failed to update customer record for %s: %v", order.CustomerName, err)
	}
	return nil
}

// publishOrderPlaced emits an order.placed event for downstream consumers
// (e.g. a kitchen display). Publishing is best effort: a missing or failing
// broker never fails the order.
func (s *OrderService) publishOrderPlaced(order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"event":    "order.placed",
		"orderID":  order.ID,
		"customer": order.CustomerName,
		"item":     order.Item,
		"quantity": order.Quantity,
		"total":    order.Total,
		"readyAt":  order.ReadyAt,
	}
	if err := s.mqClient.PublishOrderPlaced(event); err != nil {
		log.Printf("Warning: Failed to publish order placed event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published order placed event for order %s", order.ID)
	}
}

func validSize(size string) bool {
	for _, s := range models.OrderSizes {
		if s == size {
			return true
		}
	}
	return false
}

func validAddOn(addOn string) bool {
	for _, a := range models.OrderAddOns {
		if a == addOn {
			return true
		}
	}
	return false
}
