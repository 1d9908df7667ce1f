package seed

import (
	"context"
	"testing"

	"atelier/internal/repository"
	"atelier/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepos(t *testing.T) (context.Context, repository.CommunityRepository, repository.GameRepository) {
	t.Helper()
	store := storage.NewMemoryStore()
	return context.Background(), repository.NewCommunityRepository(store), repository.NewGameRepository(store)
}

func TestDefaultsPopulatesEmptyCollections(t *testing.T) {
	ctx, communities, games := newRepos(t)

	Defaults(ctx, communities, games)

	gotCommunities := communities.GetAll(ctx)
	require.Len(t, gotCommunities, len(BuiltInCommunities))
	for i, item := range BuiltInCommunities {
		assert.Equal(t, item.Name, gotCommunities[i].Name)
		assert.Equal(t, SystemCreator, gotCommunities[i].CreatedBy)
		assert.Equal(t, []string{SystemCreator}, gotCommunities[i].Members)
	}

	gotGames := games.GetAll(ctx)
	require.Len(t, gotGames, len(BuiltInGames))
	for i, item := range BuiltInGames {
		assert.Equal(t, item.Name, gotGames[i].Name)
		assert.Equal(t, item.IconName, gotGames[i].IconName)
		assert.Zero(t, gotGames[i].PlaysCount)
		assert.Empty(t, gotGames[i].HighScores)
	}
}

func TestDefaultsIsIdempotent(t *testing.T) {
	ctx, communities, games := newRepos(t)

	Defaults(ctx, communities, games)
	first := communities.GetAll(ctx)
	firstGames := games.GetAll(ctx)

	Defaults(ctx, communities, games)

	assert.Equal(t, first, communities.GetAll(ctx))
	assert.Equal(t, firstGames, games.GetAll(ctx))
}

func TestDefaultsSkipsNonEmptyFamily(t *testing.T) {
	ctx, communities, games := newRepos(t)

	// Any existing entity suppresses seeding for its family, even a
	// user-created one.
	communities.Create(ctx, repository.NewCommunity{
		Name:        "Hand Drafting",
		Description: "Pen and paper only",
		CreatedBy:   "u1",
	})

	Defaults(ctx, communities, games)

	assert.Len(t, communities.GetAll(ctx), 1, "non-empty community family must not be reseeded")
	assert.Len(t, games.GetAll(ctx), len(BuiltInGames), "empty game family is still seeded")
}
