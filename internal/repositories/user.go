package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/telehedr/auth-api/internal/logger"
	"github.com/telehedr/auth-api/internal/models"
)

// UserRepository is the in-memory user directory. Records live for the
// process lifetime and are only ever appended; there is no persistence.
// Every operation holds the mutex for its whole duration so the directory
// stays consistent under concurrent requests.
type UserRepository struct {
	mu    sync.Mutex
	users []models.User
}

// NewUserRepository creates an empty user directory.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == username {
			user := r.users[i]
			logger.Log.Infow("user lookup",
				"by", "username",
				"username", username,
				"found", true,
			)
			return &user, nil
		}
	}

	logger.Log.Infow("user lookup",
		"by", "username",
		"username", username,
		"found", false,
	)
	return nil, nil
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			logger.Log.Infow("user lookup",
				"by", "id",
				"user_id", id,
				"found", true,
			)
			return &user, nil
		}
	}

	logger.Log.Infow("user lookup",
		"by", "id",
		"user_id", id,
		"found", false,
	)
	return nil, nil
}

// Save appends a new user record with a fresh id and the current timestamp.
// Username uniqueness is the caller's responsibility: the registration flow
// checks GetByUsername before calling Save.
func (r *UserRepository) Save(ctx context.Context, username, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users = append(r.users, user)

	logger.Log.Infow("user saved",
		"user_id", user.ID,
		"username", username,
		"total_users", len(r.users),
	)
	return &user, nil
}

// List returns redacted projections of all users in insertion order.
// Diagnostic helper only; no route exposes it.
func (r *UserRepository) List(ctx context.Context) ([]models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles := make([]models.UserProfile, 0, len(r.users))
	for i := range r.users {
		profiles = append(profiles, r.users[i].Profile())
	}
	return profiles, nil
}
