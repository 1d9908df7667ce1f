package models

import "time"

// LeaderboardSize caps how many high scores a game keeps.
const LeaderboardSize = 10

// Game represents a casual mini-game with a play counter and a bounded
// leaderboard. HighScores is sorted descending by score and never exceeds
// LeaderboardSize entries; equal scores keep insertion order.
type Game struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	IconName    string      `json:"icon_name"`
	PlaysCount  int         `json:"plays_count"`
	HighScores  []GameScore `json:"high_scores"`
	CreatedAt   time.Time   `json:"created_at"`
}

// GameScore is a single leaderboard entry, owned by its parent game.
type GameScore struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
