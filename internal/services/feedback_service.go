package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"starlitsips/internal/models"
	"starlitsips/internal/repositories"
)

// Feedback failures the handler maps to inline warnings.
var (
	ErrEmptyFeedbackDetails = errors.New("feedback details are required")
	ErrInvalidCategory      = errors.New("invalid feedback category")
)

// FeedbackService handles customer feedback intake. Entries are write-only
// from the customer's perspective; only admins can list them.
type FeedbackService struct {
	repo repositories.FeedbackRepository
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(repo repositories.FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		repo: repo,
	}
}

// SubmitFeedback validates and appends a timestamped feedback entry. Empty
// details are rejected and nothing is stored.
func (s *FeedbackService) SubmitFeedback(req models.FeedbackRequest) (*models.FeedbackEntry, error) {
	if strings.TrimSpace(req.Details) == "" {
		return nil, ErrEmptyFeedbackDetails
	}
	if !validCategory(req.Category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}

	entry := &models.FeedbackEntry{
		Category:  req.Category,
		Details:   req.Details,
		ImageName: req.ImageName,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}
	return entry, nil
}

// ListFeedback retrieves all feedback entries in submission order.
func (s *FeedbackService) ListFeedback() ([]models.FeedbackEntry, error) {
	return s.repo.GetAll()
}

func validCategory(category string) bool {
	for _, c := range models.FeedbackCategories {
		if c == category {
			return true
		}
	}
	return false
}
