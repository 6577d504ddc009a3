package users

import (
	"context"

	"github.com/talenttrack/talenttrack/internal/client/models"
)

// Repository gives typed access to the user directory and the current
// session pointer stored in the key-value store.
type Repository interface {
	// Directory returns the full mapping of email to user record. A store
	// without a directory yields an empty, non-nil map.
	Directory(ctx context.Context) (map[string]models.User, error)

	// Get returns one directory entry by email, or common.ErrorNotFound.
	Get(ctx context.Context, email string) (*models.User, error)

	// Save upserts one user into the directory, keyed by email.
	Save(ctx context.Context, user models.User) error

	// SaveDirectory replaces the whole directory.
	SaveDirectory(ctx context.Context, dir map[string]models.User) error

	// CurrentUser returns the active session user, or nil when anonymous.
	CurrentUser(ctx context.Context) (*models.User, error)

	// SetCurrentUser persists the session pointer. A nil user writes the
	// empty marker (anonymous).
	SetCurrentUser(ctx context.Context, user *models.User) error
}
