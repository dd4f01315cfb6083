package api

import (
	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
)

// ProjectSubmission is a project together with zero or more inline image
// submissions and normalized technology links. The whole submission is
// accepted or rejected as a unit.
type ProjectSubmission struct {
	models.Project
	ImageSubmissions []models.ProjectImage `json:"image_submissions,omitempty"`
	TechnologyIDs    []uuid.UUID           `json:"technology_ids,omitempty"`
}

// BlogPostSubmission is a blog post with its tag links
type BlogPostSubmission struct {
	models.BlogPost
	TagIDs []uuid.UUID `json:"tag_ids,omitempty"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error      string `json:"error"`
	Status     string `json:"status"`
	Field      string `json:"field,omitempty"`
	Details    string `json:"details,omitempty"`
	Cause      string `json:"cause,omitempty"`
	Violations any    `json:"violations,omitempty"`
}
