package repository

import (
	"context"
	"sort"
	"time"

	"atelier/internal/models"
	"atelier/internal/storage"

	"github.com/google/uuid"
)

// NewGame carries the caller-supplied fields for game creation.
type NewGame struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
}

// GameRepository defines operations for the game collection.
type GameRepository interface {
	GetAll(ctx context.Context) []models.Game
	Create(ctx context.Context, data NewGame) models.Game
	// IncrementPlays bumps the play counter. Unknown game IDs are a
	// silent no-op.
	IncrementPlays(ctx context.Context, gameID string)
	// AddScore records a leaderboard entry, keeping high scores sorted
	// descending and capped at models.LeaderboardSize. The sort is stable,
	// so equal scores keep insertion order. Unknown game IDs are a silent
	// no-op.
	AddScore(ctx context.Context, gameID, userID string, score int)
}

type gameRepository struct {
	store storage.Store
}

// NewGameRepository creates a game repository backed by the given store.
func NewGameRepository(store storage.Store) GameRepository {
	return &gameRepository{store: store}
}

func (r *gameRepository) GetAll(ctx context.Context) []models.Game {
	return storage.Load(ctx, r.store, gamesKey, []models.Game{})
}

func (r *gameRepository) Create(ctx context.Context, data NewGame) models.Game {
	game := models.Game{
		ID:          uuid.NewString(),
		Name:        data.Name,
		Description: data.Description,
		IconName:    data.IconName,
		PlaysCount:  0,
		HighScores:  []models.GameScore{},
		CreatedAt:   time.Now().UTC(),
	}

	games := append(r.GetAll(ctx), game)
	storage.Save(ctx, r.store, gamesKey, games)
	return game
}

func (r *gameRepository) IncrementPlays(ctx context.Context, gameID string) {
	games := r.GetAll(ctx)
	for i := range games {
		if games[i].ID != gameID {
			continue
		}

		games[i].PlaysCount++
		storage.Save(ctx, r.store, gamesKey, games)
		return
	}
}

func (r *gameRepository) AddScore(ctx context.Context, gameID, userID string, score int) {
	games := r.GetAll(ctx)
	for i := range games {
		if games[i].ID != gameID {
			continue
		}

		scores := append(games[i].HighScores, models.GameScore{
			ID:        uuid.NewString(),
			UserID:    userID,
			Score:     score,
			CreatedAt: time.Now().UTC(),
		})
		sort.SliceStable(scores, func(a, b int) bool {
			return scores[a].Score > scores[b].Score
		})
		if len(scores) > models.LeaderboardSize {
			scores = scores[:models.LeaderboardSize]
		}

		games[i].HighScores = scores
		storage.Save(ctx, r.store, gamesKey, games)
		return
	}
}
