// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a member of the Atelier platform.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Profession      string    `json:"profession,omitempty"`
	ExperienceYears int       `json:"experience_years,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
