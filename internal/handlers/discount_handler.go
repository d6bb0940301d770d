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

// DiscountHandler handles HTTP requests for promotions and discounts.
// Redemption is public; creating codes is an admin surface.
type DiscountHandler struct {
	service  *services.DiscountService
	validate *validator.Validate
}

// NewDiscountHandler creates a new DiscountHandler.
func NewDiscountHandler(service *services.DiscountService) *DiscountHandler {
	return &DiscountHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public redemption route with the Fiber app.
func (h *DiscountHandler) RegisterRoutes(router fiber.Router) {
	discountRoutes := router.Group("/discounts")
	discountRoutes.Get("/:code", h.HandleRedeem)
}

// RegisterAdminRoutes registers the code-management routes, expected to be
// mounted behind the AdminRequired middleware.
func (h *DiscountHandler) RegisterAdminRoutes(router fiber.Router) {
	discountRoutes := router.Group("/discounts")
	discountRoutes.Get("/", h.HandleListCodes)
	discountRoutes.Post("/", h.HandleCreateCode)
}

// HandleRedeem looks up a discount code case-insensitively.
func (h *DiscountHandler) HandleRedeem(c *fiber.Ctx) error {
	code := c.Params("code")
	discount, err := h.service.Redeem(code)
	if err != nil {
		if errors.Is(err, services.ErrEmptyDiscountCode) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Please enter a discount code.",
			})
		}
		if errors.Is(err, repositories.ErrDiscountCodeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Invalid discount code. Please try again.",
			})
		}
		log.Printf("Error redeeming discount code %s: %v", code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not look up discount code",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":  fmt.Sprintf("Congratulations! You've unlocked a %d%% discount on your next purchase.", discount.Percent),
		"discount": discount,
	})
}

// HandleCreateCode defines (or redefines) a discount code.
func (h *DiscountHandler) HandleCreateCode(c *fiber.Ctx) error {
	var req models.CreateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing discount request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
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

	discount, err := h.service.CreateCode(req.Code, req.Percent)
	if err != nil {
		log.Printf("Error creating discount code: %v", err)
		if errors.Is(err, services.ErrEmptyDiscountCode) || errors.Is(err, services.ErrInvalidDiscountRate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Please enter a valid discount code.",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save discount code",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  fmt.Sprintf("Discount code %s for %d%% has been saved!", discount.Code, discount.Percent),
		"discount": discount,
	})
}

// HandleListCodes retrieves all defined discount codes.
func (h *DiscountHandler) HandleListCodes(c *fiber.Ctx) error {
	codes, err := h.service.ListCodes()
	if err != nil {
		log.Printf("Error listing discount codes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve discount codes",
			"error":   err.Error(),
		})
	}
	return c.JSON(codes)
}
