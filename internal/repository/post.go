package repository

import (
	"context"
	"strings"
	"time"

	"atelier/internal/models"
	"atelier/internal/storage"

	"github.com/google/uuid"
)

// NewPost carries the caller-supplied fields for post creation.
type NewPost struct {
	UserID   string              `json:"user_id"`
	Content  string              `json:"content"`
	ImageURL string              `json:"image_url"`
	Category models.PostCategory `json:"category"`
	Tags     []string            `json:"tags"`
}

// PostRepository defines operations for the post collection.
type PostRepository interface {
	// GetAll returns every post, most recent first.
	GetAll(ctx context.Context) []models.Post
	// GetByCategory filters posts; models.CategoryFeed acts as a wildcard
	// and returns all posts regardless of their stored category.
	GetByCategory(ctx context.Context, category models.PostCategory) []models.Post
	Create(ctx context.Context, data NewPost) (models.Post, error)
	// ToggleLike adds userID to the post's likes, or removes it if already
	// present. Unknown post IDs are a silent no-op.
	ToggleLike(ctx context.Context, postID, userID string)
	// AddComment appends a comment to the post. Unknown post IDs are a
	// silent no-op.
	AddComment(ctx context.Context, postID, userID, content string)
}

type postRepository struct {
	store storage.Store
}

// NewPostRepository creates a post repository backed by the given store.
func NewPostRepository(store storage.Store) PostRepository {
	return &postRepository{store: store}
}

func (r *postRepository) GetAll(ctx context.Context) []models.Post {
	return storage.Load(ctx, r.store, postsKey, []models.Post{})
}

func (r *postRepository) GetByCategory(ctx context.Context, category models.PostCategory) []models.Post {
	posts := r.GetAll(ctx)
	if category == models.CategoryFeed || category == "" {
		return posts
	}

	filtered := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if post.Category == category {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

func (r *postRepository) Create(ctx context.Context, data NewPost) (models.Post, error) {
	if strings.TrimSpace(data.Content) == "" {
		return models.Post{}, models.NewValidationError("post content must not be empty")
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:        uuid.NewString(),
		UserID:    data.UserID,
		Content:   data.Content,
		ImageURL:  data.ImageURL,
		Category:  data.Category,
		Tags:      data.Tags,
		CreatedAt: now,
		UpdatedAt: now,
		Likes:     []string{},
		Comments:  []models.Comment{},
	}

	// Prepend so the collection stays most-recent-first.
	posts := append([]models.Post{post}, r.GetAll(ctx)...)
	storage.Save(ctx, r.store, postsKey, posts)
	return post, nil
}

func (r *postRepository) ToggleLike(ctx context.Context, postID, userID string) {
	posts := r.GetAll(ctx)
	for i := range posts {
		if posts[i].ID != postID {
			continue
		}

		likes := posts[i].Likes
		removed := false
		for j, id := range likes {
			if id == userID {
				posts[i].Likes = append(likes[:j], likes[j+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			posts[i].Likes = append(likes, userID)
		}

		posts[i].UpdatedAt = time.Now().UTC()
		storage.Save(ctx, r.store, postsKey, posts)
		return
	}
}

func (r *postRepository) AddComment(ctx context.Context, postID, userID, content string) {
	posts := r.GetAll(ctx)
	for i := range posts {
		if posts[i].ID != postID {
			continue
		}

		now := time.Now().UTC()
		posts[i].Comments = append(posts[i].Comments, models.Comment{
			ID:        uuid.NewString(),
			UserID:    userID,
			Content:   content,
			CreatedAt: now,
		})
		posts[i].UpdatedAt = now
		storage.Save(ctx, r.store, postsKey, posts)
		return
	}
}
