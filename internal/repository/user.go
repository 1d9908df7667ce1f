package repository

import (
	"context"
	"time"

	"atelier/internal/models"
	"atelier/internal/storage"

	"github.com/google/uuid"
)

// NewUser carries the caller-supplied fields for user creation. ID and
// creation time are assigned by the repository.
type NewUser struct {
	Username        string `json:"username"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	AvatarURL       string `json:"avatar_url"`
	Bio             string `json:"bio"`
	Profession      string `json:"profession"`
	ExperienceYears int    `json:"experience_years"`
}

// UserRepository defines operations for users and the session slot.
//
// The session slot is a single persisted value: the signed-in user, or nil
// for a guest. It is owned by the repository instance, not by a package
// global, so call sites state their dependency on it explicitly.
type UserRepository interface {
	GetAll(ctx context.Context) []models.User
	Create(ctx context.Context, data NewUser) models.User
	Upsert(ctx context.Context, user models.User)
	SignIn(ctx context.Context, email, password string) *models.User
	SignOut(ctx context.Context)
	Current(ctx context.Context) *models.User
	SetCurrent(ctx context.Context, user *models.User)
}

type userRepository struct {
	store storage.Store
}

// NewUserRepository creates a user repository backed by the given store.
func NewUserRepository(store storage.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetAll(ctx context.Context) []models.User {
	return storage.Load(ctx, r.store, usersKey, []models.User{})
}

func (r *userRepository) Create(ctx context.Context, data NewUser) models.User {
	user := models.User{
		ID:              uuid.NewString(),
		Username:        data.Username,
		FullName:        data.FullName,
		Email:           data.Email,
		AvatarURL:       data.AvatarURL,
		Bio:             data.Bio,
		Profession:      data.Profession,
		ExperienceYears: data.ExperienceYears,
		CreatedAt:       time.Now().UTC(),
	}

	users := r.GetAll(ctx)
	users = append(users, user)
	storage.Save(ctx, r.store, usersKey, users)
	return user
}

func (r *userRepository) Upsert(ctx context.Context, user models.User) {
	users := r.GetAll(ctx)
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			storage.Save(ctx, r.store, usersKey, users)
			return
		}
	}
	users = append(users, user)
	storage.Save(ctx, r.store, usersKey, users)
}

// SignIn looks up the first user with a matching email and makes them the
// current session user. The password parameter is accepted but never
// compared: no credential is stored on User, so the check intentionally
// does not exist. On no match the session slot is left untouched.
func (r *userRepository) SignIn(ctx context.Context, email, _ string) *models.User {
	for _, user := range r.GetAll(ctx) {
		if user.Email == email {
			r.SetCurrent(ctx, &user)
			return &user
		}
	}
	return nil
}

func (r *userRepository) SignOut(ctx context.Context) {
	r.SetCurrent(ctx, nil)
}

func (r *userRepository) Current(ctx context.Context) *models.User {
	return storage.Load[*models.User](ctx, r.store, currentUserKey, nil)
}

func (r *userRepository) SetCurrent(ctx context.Context, user *models.User) {
	storage.Save(ctx, r.store, currentUserKey, user)
}
