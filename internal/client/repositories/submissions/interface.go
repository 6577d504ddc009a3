package submissions

import (
	"context"

	"github.com/talenttrack/talenttrack/internal/client/models"
)

// Repository gives typed access to per-user submission ledgers. Each
// ledger is an ordered sequence, newest first.
type Repository interface {
	// ListByUser returns the user's ledger. A user without one yields an
	// empty slice.
	ListByUser(ctx context.Context, email string) ([]models.Submission, error)

	// SaveLedger replaces the user's ledger.
	SaveLedger(ctx context.Context, email string, ledger []models.Submission) error

	// DeleteLedger removes the user's ledger from the store.
	DeleteLedger(ctx context.Context, email string) error
}
