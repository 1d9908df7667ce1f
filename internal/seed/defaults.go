// Package seed populates the default communities and games on first run.
package seed

import (
	"context"

	"atelier/internal/repository"
)

// SystemCreator is the sentinel user ID attributed to seeded entities. It
// never resolves to a real user; readers treat it as an unknown author.
const SystemCreator = "system"

// BuiltInCommunity describes one default community.
type BuiltInCommunity struct {
	Name        string
	Description string
	Category    string
}

// BuiltInCommunities defines the communities present on a fresh install.
var BuiltInCommunities = []BuiltInCommunity{
	{
		Name:        "Sustainable Architecture",
		Description: "Discussing eco-friendly and sustainable building practices",
		Category:    "Environment",
	},
	{
		Name:        "Urban Planning",
		Description: "City design, zoning, and urban development strategies",
		Category:    "Planning",
	},
	{
		Name:        "Modern Design Trends",
		Description: "Latest trends in contemporary architecture and design",
		Category:    "Design",
	},
}

// BuiltInGame describes one default game.
type BuiltInGame struct {
	Name        string
	Description string
	IconName    string
}

// BuiltInGames defines the games present on a fresh install.
var BuiltInGames = []BuiltInGame{
	{
		Name:        "Blueprint Challenge",
		Description: "Test your architectural knowledge with design challenges",
		IconName:    "target",
	},
	{
		Name:        "Structure Builder",
		Description: "Build stable structures with limited materials",
		IconName:    "zap",
	},
	{
		Name:        "Design Quiz",
		Description: "Quiz on architectural history and famous buildings",
		IconName:    "trophy",
	},
}

// Defaults seeds each collection that is still empty. The guard is the
// collection itself: once any community or game exists, even a user-created
// one, that family is never reseeded, so repeated calls are idempotent.
func Defaults(ctx context.Context, communities repository.CommunityRepository, games repository.GameRepository) {
	if len(communities.GetAll(ctx)) == 0 {
		for _, item := range BuiltInCommunities {
			communities.Create(ctx, repository.NewCommunity{
				Name:        item.Name,
				Description: item.Description,
				Category:    item.Category,
				CreatedBy:   SystemCreator,
			})
		}
	}

	if len(games.GetAll(ctx)) == 0 {
		for _, item := range BuiltInGames {
			games.Create(ctx, repository.NewGame{
				Name:        item.Name,
				Description: item.Description,
				IconName:    item.IconName,
			})
		}
	}
}
