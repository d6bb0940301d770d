package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"starlitsips/internal/services"
)

// ReportHandler handles HTTP requests for the sales report.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reportRoutes := router.Group("/reports")
	reportRoutes.Get("/sales", h.HandleGetSalesReport)
}

// HandleGetSalesReport recomputes and returns the full sales report. An empty
// order history yields an explicit "no orders" message instead of empty rows.
func (h *ReportHandler) HandleGetSalesReport(c *fiber.Ctx) error {
	report, err := h.service.BuildSalesReport()
	if err != nil {
		log.Printf("Error building sales report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build sales report",
			"error":   err.Error(),
		})
	}

	if report.OrderCount == 0 {
		return c.JSON(fiber.Map{
			"message": "No orders have been placed yet.",
			"report":  report,
		})
	}

	return c.JSON(fiber.Map{
		"report": report,
	})
}
