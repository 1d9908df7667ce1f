package repository

import (
	"context"
	"sort"
	"testing"

	"atelier/internal/models"
	"atelier/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGameRepo(t *testing.T) (context.Context, GameRepository) {
	t.Helper()
	return context.Background(), NewGameRepository(storage.NewMemoryStore())
}

func TestCreateGameInitializesCounters(t *testing.T) {
	ctx, repo := newGameRepo(t)

	game := repo.Create(ctx, NewGame{Name: "Blueprint Challenge", Description: "d", IconName: "target"})

	assert.NotEmpty(t, game.ID)
	assert.Zero(t, game.PlaysCount)
	assert.Empty(t, game.HighScores)

	all := repo.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, game.ID, all[0].ID)
}

func TestIncrementPlaysCountsExactly(t *testing.T) {
	ctx, repo := newGameRepo(t)

	game := repo.Create(ctx, NewGame{Name: "Structure Builder", Description: "d", IconName: "zap"})
	other := repo.Create(ctx, NewGame{Name: "Design Quiz", Description: "d", IconName: "trophy"})

	const n = 17
	for i := 0; i < n; i++ {
		repo.IncrementPlays(ctx, game.ID)
	}
	// Mutations of one game must not leak into another.
	repo.AddScore(ctx, other.ID, "u1", 100)

	all := repo.GetAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, n, all[0].PlaysCount)
	assert.Zero(t, all[1].PlaysCount)
}

func TestIncrementPlaysUnknownGameIsNoop(t *testing.T) {
	ctx, repo := newGameRepo(t)

	repo.Create(ctx, NewGame{Name: "G", Description: "d", IconName: "target"})
	repo.IncrementPlays(ctx, "missing-id")

	assert.Zero(t, repo.GetAll(ctx)[0].PlaysCount)
}

func TestAddScoreSortsDescending(t *testing.T) {
	ctx, repo := newGameRepo(t)

	game := repo.Create(ctx, NewGame{Name: "G", Description: "d", IconName: "target"})

	repo.AddScore(ctx, game.ID, "u1", 500)
	repo.AddScore(ctx, game.ID, "u2", 900)

	scores := repo.GetAll(ctx)[0].HighScores
	require.Len(t, scores, 2)
	assert.Equal(t, "u2", scores[0].UserID)
	assert.Equal(t, 900, scores[0].Score)
	assert.Equal(t, "u1", scores[1].UserID)
}

func TestAddScoreTruncatesToLeaderboardSize(t *testing.T) {
	ctx, repo := newGameRepo(t)

	game := repo.Create(ctx, NewGame{Name: "G", Description: "d", IconName: "target"})

	for i := 1; i <= 25; i++ {
		repo.AddScore(ctx, game.ID, "u1", i*10)
	}

	scores := repo.GetAll(ctx)[0].HighScores
	require.Len(t, scores, models.LeaderboardSize)
	assert.True(t, sort.SliceIsSorted(scores, func(a, b int) bool {
		return scores[a].Score > scores[b].Score
	}))
	assert.Equal(t, 250, scores[0].Score)
	assert.Equal(t, 160, scores[models.LeaderboardSize-1].Score)
}

func TestAddScoreEqualScoresKeepInsertionOrder(t *testing.T) {
	ctx, repo := newGameRepo(t)

	game := repo.Create(ctx, NewGame{Name: "G", Description: "d", IconName: "target"})

	repo.AddScore(ctx, game.ID, "early", 300)
	repo.AddScore(ctx, game.ID, "late", 300)

	scores := repo.GetAll(ctx)[0].HighScores
	require.Len(t, scores, 2)
	assert.Equal(t, "early", scores[0].UserID)
	assert.Equal(t, "late", scores[1].UserID)
}

func TestAddScoreUnknownGameIsNoop(t *testing.T) {
	ctx, repo := newGameRepo(t)

	repo.Create(ctx, NewGame{Name: "G", Description: "d", IconName: "target"})
	repo.AddScore(ctx, "missing-id", "u1", 999)

	assert.Empty(t, repo.GetAll(ctx)[0].HighScores)
}
