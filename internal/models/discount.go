package models

import "time"

// DiscountCode maps a redemption code to a percentage off. Codes are stored
// upper-cased so redemption is case-insensitive.
type DiscountCode struct {
	Code      string    `json:"code" gorm:"primaryKey;type:varchar(50)" validate:"required,min=2,max=50,alphanum"`
	Percent   int       `json:"percent" validate:"required,gte=5,lte=50"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDiscountRequest is the request body for defining a discount code.
type CreateDiscountRequest struct {
	Code    string `json:"code" validate:"required,min=2,max=50,alphanum"`
	Percent int    `json:"percent" validate:"required,gte=5,lte=50"`
}
