package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"starlitsips/internal/models"
	"starlitsips/internal/repositories"
	"starlitsips/internal/services"
)

// MenuHandler handles HTTP requests for the catalog. Browsing is public;
// price/stock updates sit behind the admin gate.
type MenuHandler struct {
	service  *services.MenuService
	validate *validator.Validate
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public menu routes with the Fiber app.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Get("/", h.HandleGetMenu)
	menuRoutes.Get("/:name", h.HandleGetItem)
}

// RegisterAdminRoutes registers the inventory-management routes, expected to
// be mounted behind the AdminRequired middleware.
func (h *MenuHandler) RegisterAdminRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Put("/:name", h.HandleUpdateItem)
}

// HandleGetMenu retrieves all menu items.
func (h *MenuHandler) HandleGetMenu(c *fiber.Ctx) error {
	items, err := h.service.GetMenu()
	if err != nil {
		log.Printf("Error getting menu: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve menu",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleGetItem retrieves a single menu item by its name.
func (h *MenuHandler) HandleGetItem(c *fiber.Ctx) error {
	name := c.Params("name")
	item, err := h.service.GetItem(name)
	if err != nil {
		log.Printf("Error getting menu item %s: %v", name, err)
		if errors.Is(err, repositories.ErrMenuItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Menu item %q not found", name),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve menu item",
			"error":   err.Error(),
		})
	}
	return c.JSON(item)
}

// HandleUpdateItem applies an admin price/stock change. An invalid update is
// rejected and the stored values stay as they were.
func (h *MenuHandler) HandleUpdateItem(c *fiber.Ctx) error {
	name := c.Params("name")

	var update models.MenuItemUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing inventory update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(update); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	item, err := h.service.UpdateItem(name, update)
	if err != nil {
		log.Printf("Error updating menu item %s: %v", name, err)
		if errors.Is(err, repositories.ErrMenuItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Menu item %q not found", name),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Inventory update rejected",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Updated %s: price $%.2f, stock %d cups.", item.Name, item.Price, item.Stock),
		"item":    item,
	})
}
