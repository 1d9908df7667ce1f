package repository

import (
	"context"
	"time"

	"atelier/internal/models"
	"atelier/internal/storage"

	"github.com/google/uuid"
)

// NewCommunity carries the caller-supplied fields for community creation.
type NewCommunity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CreatedBy   string `json:"created_by"`
	Category    string `json:"category"`
}

// CommunityRepository defines operations for the community collection.
type CommunityRepository interface {
	GetAll(ctx context.Context) []models.Community
	Create(ctx context.Context, data NewCommunity) models.Community
	// Join adds userID to the community's members. Joining twice has no
	// additional effect; unknown community IDs are a silent no-op.
	Join(ctx context.Context, communityID, userID string)
}

type communityRepository struct {
	store storage.Store
}

// NewCommunityRepository creates a community repository backed by the
// given store.
func NewCommunityRepository(store storage.Store) CommunityRepository {
	return &communityRepository{store: store}
}

func (r *communityRepository) GetAll(ctx context.Context) []models.Community {
	return storage.Load(ctx, r.store, communitiesKey, []models.Community{})
}

func (r *communityRepository) Create(ctx context.Context, data NewCommunity) models.Community {
	community := models.Community{
		ID:          uuid.NewString(),
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   time.Now().UTC(),
		Members:     []string{data.CreatedBy},
		Category:    data.Category,
	}

	// Appended at the end, unlike posts: oldest communities surface first.
	communities := append(r.GetAll(ctx), community)
	storage.Save(ctx, r.store, communitiesKey, communities)
	return community
}

func (r *communityRepository) Join(ctx context.Context, communityID, userID string) {
	communities := r.GetAll(ctx)
	for i := range communities {
		if communities[i].ID != communityID {
			continue
		}

		for _, member := range communities[i].Members {
			if member == userID {
				return
			}
		}
		communities[i].Members = append(communities[i].Members, userID)
		storage.Save(ctx, r.store, communitiesKey, communities)
		return
	}
}
