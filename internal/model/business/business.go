package business

import "time"

// Business captures the tenant on whose behalf the receptionist answers.
type Business struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	BrandColor  string    `json:"brandColor,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Document is one unit of business knowledge used to ground replies.
type Document struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}
