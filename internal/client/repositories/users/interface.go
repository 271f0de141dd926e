package users

import (
	"context"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
)

// Repository stores user records keyed by user identifier.
type Repository interface {
	// Get returns the user with id, or nil when there is none.
	Get(ctx context.Context, id string) (*models.User, error)

	// FindByEmail looks a user up by email, ignoring case. Returns nil when
	// no user matches.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Create validates and stores a new user. It fails with
	// common.ErrUserExists when the id or email is taken.
	Create(ctx context.Context, u *models.User) error

	// Delete removes the user. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}
