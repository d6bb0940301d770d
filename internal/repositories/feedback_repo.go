package repositories

import "starlitsips/internal/models"

// FeedbackRepository defines the interface for feedback data access. Entries
// are append-only; there is no update or delete.
type FeedbackRepository interface {
	GetAll() ([]models.FeedbackEntry, error)
	Create(entry *models.FeedbackEntry) error
}
