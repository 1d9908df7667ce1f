package models

import "time"

// PostCategory classifies a post. The taxonomy is shared by every surface
// that renders or filters posts; presentation code must not define its own.
type PostCategory string

const (
	// CategoryFeed is the wildcard category: filtering by it returns all posts.
	CategoryFeed PostCategory = "feed"
	// CategorySuggestion marks posts proposing something new.
	CategorySuggestion PostCategory = "suggestion"
	// CategoryImprovement marks posts refining existing work.
	CategoryImprovement PostCategory = "improvement"
	// CategoryQuestion marks posts asking the community for input.
	CategoryQuestion PostCategory = "question"
)

// Valid reports whether c is one of the known categories.
func (c PostCategory) Valid() bool {
	switch c {
	case CategoryFeed, CategorySuggestion, CategoryImprovement, CategoryQuestion:
		return true
	}
	return false
}

// Post represents a feed entry authored by a user.
//
// Likes holds user IDs and behaves as a set: a user appears at most once.
// Comments are kept in insertion order, which is chronological.
type Post struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Content   string       `json:"content"`
	ImageURL  string       `json:"image_url,omitempty"`
	Category  PostCategory `json:"category"`
	Tags      []string     `json:"tags,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Likes     []string     `json:"likes"`
	Comments  []Comment    `json:"comments"`
}

// Comment is a reply attached to a post. It has no lifecycle of its own.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
