package services

import (
	"fmt"
	"strings"

	"starlitsips/internal/models"
)

// FormatReceipt renders an order as a human-readable text block: order id,
// item, size, quantity, unit price, total, add-ons (or "None") and pickup
// time, addressed to the customer.
func FormatReceipt(order *models.Order, customerName string) string {
	addOns := "None"
	if len(order.AddOns) > 0 {
		addOns = strings.Join(order.AddOns, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Invoice for Order #%s\n", order.ID)
	fmt.Fprintf(&b, "Customer Name: %s\n", customerName)
	fmt.Fprintf(&b, "Item: %s (%s)\n", order.Item, order.Size)
	fmt.Fprintf(&b, "Quantity: %d\n", order.Quantity)
	fmt.Fprintf(&b, "Price per Item: $%.2f\n", order.UnitPrice)
	fmt.Fprintf(&b, "Total Cost: $%.2f\n", order.Total)
	fmt.Fprintf(&b, "Add-ons: %s\n", addOns)
	fmt.Fprintf(&b, "Estimated Pickup Time: %s\n", order.ReadyAt.Format("2006-01-02 15:04:05"))
	b.WriteString("\nThank you for ordering at Starlit Sips!\n")
	return b.String()
}
