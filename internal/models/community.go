package models

import "time"

// Community represents a topic space users can join.
//
// Members holds user IDs and behaves as a set. The creator is always a
// member from the moment the community exists.
type Community struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	Members     []string  `json:"members"`
	Category    string    `json:"category"`
}
