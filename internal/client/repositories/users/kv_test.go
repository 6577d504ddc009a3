package users

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/storage"
	"github.com/talenttrack/talenttrack/internal/common"
)

func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	dir := t.TempDir()
	s, err := storage.Open(context.Background(), filepath.Join(dir, "tt.db"), filepath.Join(dir, "tt.lock"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDirectory_EmptyStore_ReturnsEmptyMap(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	dir, err := r.Directory(ctx)
	require.NoError(t, err)
	assert.NotNil(t, dir)
	assert.Empty(t, dir)
}

func TestSaveAndGet_RoundTrip(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	u := models.User{Name: "Asha Rao", Email: "asha@sai.in", Password: "pw", XP: 120}
	require.NoError(t, r.Save(ctx, u))

	got, err := r.Get(ctx, "asha@sai.in")
	require.NoError(t, err)
	assert.Equal(t, u, *got)
}

func TestGet_UnknownEmail_ReturnsNotFound(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	_, err := r.Get(ctx, "nobody@sai.in")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSave_KeepsOtherDirectoryEntries(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, models.User{Email: "a@sai.in", Name: "A"}))
	require.NoError(t, r.Save(ctx, models.User{Email: "b@sai.in", Name: "B"}))
	require.NoError(t, r.Save(ctx, models.User{Email: "a@sai.in", Name: "A2"}))

	dir, err := r.Directory(ctx)
	require.NoError(t, err)
	assert.Len(t, dir, 2)
	assert.Equal(t, "A2", dir["a@sai.in"].Name)
	assert.Equal(t, "B", dir["b@sai.in"].Name)
}

func TestCurrentUser_Absent_ReturnsNilNil(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	u, err := r.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSetCurrentUser_RoundTrip(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	u := models.User{Email: "asha@sai.in", Name: "Asha", XP: 10}
	require.NoError(t, r.SetCurrentUser(ctx, &u))

	got, err := r.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u, *got)
}

func TestSetCurrentUser_NilClearsSession(t *testing.T) {
	r := NewKVRepository(setupStore(t).KV())
	ctx := context.Background()

	require.NoError(t, r.SetCurrentUser(ctx, &models.User{Email: "asha@sai.in"}))
	require.NoError(t, r.SetCurrentUser(ctx, nil))

	got, err := r.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
