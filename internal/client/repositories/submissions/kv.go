package submissions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/storage"
)

// KVRepository implements Repository over the store's key-value view.
// Each user's ledger is one JSON array under "submissions_<email>".
type KVRepository struct {
	kv storage.KV
}

// NewKVRepository returns a Repository bound to the given KV view.
func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

func (r *KVRepository) ListByUser(ctx context.Context, email string) ([]models.Submission, error) {
	raw, err := r.kv.Get(ctx, storage.SubmissionsKey(email))
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []models.Submission{}, nil
	}
	var ledger []models.Submission
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return nil, fmt.Errorf("failed to decode ledger for %s: %w", email, err)
	}
	return ledger, nil
}

func (r *KVRepository) SaveLedger(ctx context.Context, email string, ledger []models.Submission) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger for %s: %w", email, err)
	}
	return r.kv.Set(ctx, storage.SubmissionsKey(email), raw)
}

func (r *KVRepository) DeleteLedger(ctx context.Context, email string) error {
	return r.kv.Delete(ctx, storage.SubmissionsKey(email))
}
