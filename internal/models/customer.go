package models

// CustomerRecord tracks the most recent order per customer name. Each new
// order overwrites the previous record, so at most one entry exists per name.
type CustomerRecord struct {
	CustomerName string `json:"customer_name"`
	LastOrder    Order  `json:"last_order"`
	Status       string `json:"status"`
}
