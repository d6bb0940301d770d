package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"starlitsips/internal/models"
	"starlitsips/internal/services"
)

// FeedbackHandler handles HTTP requests for customer feedback. Submission is
// public; listing entries is an admin surface.
type FeedbackHandler struct {
	service  *services.FeedbackService
	validate *validator.Validate
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public feedback routes with the Fiber app.
func (h *FeedbackHandler) RegisterRoutes(router fiber.Router) {
	feedbackRoutes := router.Group("/feedback")
	feedbackRoutes.Post("/", h.HandleSubmitFeedback)
	feedbackRoutes.Get("/categories", h.HandleGetCategories)
}

// RegisterAdminRoutes registers the feedback listing route, expected to be
// mounted behind the AdminRequired middleware.
func (h *FeedbackHandler) RegisterAdminRoutes(router fiber.Router) {
	feedbackRoutes := router.Group("/feedback")
	feedbackRoutes.Get("/", h.HandleListFeedback)
}

// HandleGetCategories returns the fixed set of feedback categories.
func (h *FeedbackHandler) HandleGetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": models.FeedbackCategories,
	})
}

// HandleSubmitFeedback validates and stores one feedback entry.
func (h *FeedbackHandler) HandleSubmitFeedback(c *fiber.Ctx) error {
	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing feedback request body: %v", err)
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

	entry, err := h.service.SubmitFeedback(req)
	if err != nil {
		log.Printf("Error submitting feedback: %v", err)
		if errors.Is(err, services.ErrEmptyFeedbackDetails) || errors.Is(err, services.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Please fill in the feedback details before submitting.",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store feedback",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you for your valuable feedback!",
		"entry":   entry,
	})
}

// HandleListFeedback retrieves all feedback entries.
func (h *FeedbackHandler) HandleListFeedback(c *fiber.Ctx) error {
	entries, err := h.service.ListFeedback()
	if err != nil {
		log.Printf("Error listing feedback: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve feedback",
			"error":   err.Error(),
		})
	}
	return c.JSON(entries)
}
