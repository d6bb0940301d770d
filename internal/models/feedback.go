package models

import "time"

// FeedbackCategories is the fixed set of topics a customer can comment on.
var FeedbackCategories = []string{
	"Quality of Coffee",
	"Customer Service",
	"Ambiance",
	"Other",
}

// FeedbackEntry is one piece of customer feedback. Entries are append-only.
type FeedbackEntry struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Details   string    `json:"details"`
	ImageName string    `json:"image_name,omitempty"` // reference only, the file itself is hosted elsewhere
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackRequest is the request body for submitting feedback.
type FeedbackRequest struct {
	Category  string `json:"category" validate:"required,oneof='Quality of Coffee' 'Customer Service' Ambiance Other"`
	Details   string `json:"details" validate:"required,min=1"`
	ImageName string `json:"image_name" validate:"omitempty,max=255"`
}
