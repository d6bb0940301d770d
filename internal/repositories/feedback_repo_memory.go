package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"starlitsips/internal/models"
)

// InMemoryFeedbackRepository is an in-memory implementation of
// FeedbackRepository.
type InMemoryFeedbackRepository struct {
	entries []models.FeedbackEntry
	mu      sync.RWMutex
}

// NewInMemoryFeedbackRepository creates a new instance of
// InMemoryFeedbackRepository.
func NewInMemoryFeedbackRepository() *InMemoryFeedbackRepository {
	return &InMemoryFeedbackRepository{}
}

// GetAll returns all feedback entries in submission order.
func (r *InMemoryFeedbackRepository) GetAll() ([]models.FeedbackEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entryList := make([]models.FeedbackEntry, len(r.entries))
	copy(entryList, r.entries)
	return entryList, nil
}

// Create appends a new feedback entry.
func (r *InMemoryFeedbackRepository) Create(entry *models.FeedbackEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, *entry)
	return nil
}
