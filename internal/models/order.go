package models

import "time"

// Cup sizes a customer can choose from.
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// OrderSizes lists the valid cup sizes in menu order.
var OrderSizes = []string{SizeSmall, SizeMedium, SizeLarge}

// OrderAddOns is the fixed list of optional extras a customer may pick from.
var OrderAddOns = []string{
	"Extra Sugar",
	"Extra Milk",
	"Syrup",
	"Whipped Cream",
	"Vanilla Syrup",
	"Caramel Syrup",
	"Almond Milk",
}

// Order represents a single customer purchase. Orders are append-only: once
// placed they are never updated or deleted, only their status changes.
type Order struct {
	ID           string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Item         string    `json:"item"`
	Size         string    `json:"size"`
	AddOns       []string  `json:"addons"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"` // price at the time of order
	Total        float64   `json:"total"`
	Status       string    `json:"status"` // e.g. "Order Received", "Ready"
	CreatedAt    time.Time `json:"created_at"`
	ReadyAt      time.Time `json:"ready_at"` // estimated pickup time
}

// PlaceOrderRequest is the request body for placing an order.
type PlaceOrderRequest struct {
	CustomerName string   `json:"customer_name" validate:"required,min=1,max=100"`
	Item         string   `json:"item" validate:"required"`
	Size         string   `json:"size" validate:"required,oneof=Small Medium Large"`
	AddOns       []string `json:"addons" validate:"omitempty,dive,min=1"`
	Quantity     int      `json:"quantity" validate:"gte=0"`
}
