package submissions

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/storage"
)

func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	dir := t.TempDir()
	s, err := storage.Open(context.Background(), filepath.Join(dir, "tt.db"), filepath.Join(dir, "tt.lock"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestListByUser_EmptyStore_ReturnsEmptySlice(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	ledger, err := r.ListByUser(ctx, "asha@sai.in")
	require.NoError(t, err)
	assert.NotNil(t, ledger)
	assert.Empty(t, ledger)
}

func TestSaveLedger_RoundTripPreservesOrder(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	score := 42.0
	ledger := []models.Submission{
		{Id: "2", TestId: "plank", TestName: "Plank", Date: "2024-05-02", Status: models.StatusPending},
		{Id: "1", TestId: "pushups", TestName: "Push-ups", Date: "2024-05-01", Status: models.StatusApproved, Score: &score, XPEarned: 80, Feedback: "ok"},
	}
	require.NoError(t, r.SaveLedger(ctx, "asha@sai.in", ledger))

	got, err := r.ListByUser(ctx, "asha@sai.in")
	require.NoError(t, err)
	require.Equal(t, ledger, got)
	assert.Equal(t, "2", got[0].Id)
}

func TestSaveLedger_IsolatedPerUser(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	require.NoError(t, r.SaveLedger(ctx, "a@sai.in", []models.Submission{{Id: "a1"}}))
	require.NoError(t, r.SaveLedger(ctx, "b@sai.in", []models.Submission{{Id: "b1"}, {Id: "b2"}}))

	a, err := r.ListByUser(ctx, "a@sai.in")
	require.NoError(t, err)
	assert.Len(t, a, 1)

	b, err := r.ListByUser(ctx, "b@sai.in")
	require.NoError(t, err)
	assert.Len(t, b, 2)
}

func TestDeleteLedger_RemovesOnlyThatUser(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	require.NoError(t, r.SaveLedger(ctx, "a@sai.in", []models.Submission{{Id: "a1"}}))
	require.NoError(t, r.SaveLedger(ctx, "b@sai.in", []models.Submission{{Id: "b1"}}))
	require.NoError(t, r.DeleteLedger(ctx, "a@sai.in"))

	a, err := r.ListByUser(ctx, "a@sai.in")
	require.NoError(t, err)
	assert.Empty(t, a)

	b, err := r.ListByUser(ctx, "b@sai.in")
	require.NoError(t, err)
	assert.Len(t, b, 1)
}
