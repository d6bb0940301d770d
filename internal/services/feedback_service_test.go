package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"starlitsips/internal/models"
	"starlitsips/internal/services"
)

func TestFeedbackService_SubmitFeedback(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	service := services.NewFeedbackService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.FeedbackEntry")).Return(nil).Once()

	before := time.Now()
	entry, err := service.SubmitFeedback(models.FeedbackRequest{
		Category: "Quality of Coffee",
		Details:  "The cappuccino was excellent.",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Quality of Coffee", entry.Category)
	assert.Equal(t, "The cappuccino was excellent.", entry.Details)
	// Timestamp is no earlier than submission time
	assert.False(t, entry.CreatedAt.Before(before))
	mockRepo.AssertExpectations(t)
}

func TestFeedbackService_SubmitFeedback_EmptyDetails(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	service := services.NewFeedbackService(mockRepo)

	entry, err := service.SubmitFeedback(models.FeedbackRequest{
		Category: "Ambiance",
		Details:  "   ",
	})
	assert.ErrorIs(t, err, services.ErrEmptyFeedbackDetails)
	assert.Nil(t, entry)
	// Nothing is appended.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestFeedbackService_SubmitFeedback_InvalidCategory(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	service := services.NewFeedbackService(mockRepo)

	entry, err := service.SubmitFeedback(models.FeedbackRequest{
		Category: "Parking",
		Details:  "Hard to find a spot.",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCategory)
	assert.Nil(t, entry)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestFeedbackService_ListFeedback(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	service := services.NewFeedbackService(mockRepo)

	expected := []models.FeedbackEntry{
		{Category: "Other", Details: "More oat milk options please."},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	entries, err := service.ListFeedback()
	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
	mockRepo.AssertExpectations(t)
}
