package models

// MenuItem represents a single drink on the menu. The name doubles as the
// catalog key, so it must stay unique.
type MenuItem struct {
	Name        string             `json:"name" gorm:"primaryKey;type:varchar(100)" validate:"required,min=2,max=100"`
	Price       float64            `json:"price" validate:"required,gt=0"`
	Stock       int                `json:"stock" validate:"gte=0"`
	ImageURL    string             `json:"image_url" validate:"omitempty,url"`
	Ingredients map[string]float64 `json:"ingredients" gorm:"serializer:json"` // quantity used per cup, keyed by ingredient name
}

// MenuItemUpdate carries an admin price/stock change for one item.
type MenuItemUpdate struct {
	Price float64 `json:"price" validate:"required,gt=0"`
	Stock int     `json:"stock" validate:"gte=0"`
}
