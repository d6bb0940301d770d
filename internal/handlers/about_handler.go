package handlers

import "github.com/gofiber/fiber/v2"

// AboutHandler serves the static shop profile.
type AboutHandler struct{}

// NewAboutHandler creates a new AboutHandler.
func NewAboutHandler() *AboutHandler {
	return &AboutHandler{}
}

// RegisterRoutes registers the about route with the Fiber app.
func (h *AboutHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/about", h.HandleAbout)
}

// HandleAbout returns the shop profile.
func (h *AboutHandler) HandleAbout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "Starlit Sips",
		"founded": 2024,
		"mission": "Providing the finest quality coffee, crafted with care and passion, in a warm and inviting atmosphere.",
		"highlights": []string{
			"Locally Sourced Beans",
			"Expertly Crafted",
			"Comfortable Ambience",
			"Customizable Drinks",
		},
	})
}
