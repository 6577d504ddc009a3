package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/storage"
	"github.com/talenttrack/talenttrack/internal/common"
)

// KVRepository implements Repository over the store's key-value view.
// The directory lives as one JSON object under storage.UsersKey and the
// session pointer under storage.CurrentUserKey.
type KVRepository struct {
	kv storage.KV
}

// NewKVRepository returns a Repository bound to the given KV view.
func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

func (r *KVRepository) Directory(ctx context.Context) (map[string]models.User, error) {
	raw, err := r.kv.Get(ctx, storage.UsersKey)
	if err != nil {
		return nil, err
	}
	dir := make(map[string]models.User)
	if len(raw) == 0 {
		return dir, nil
	}
	if err := json.Unmarshal(raw, &dir); err != nil {
		return nil, fmt.Errorf("failed to decode user directory: %w", err)
	}
	return dir, nil
}

func (r *KVRepository) Get(ctx context.Context, email string) (*models.User, error) {
	dir, err := r.Directory(ctx)
	if err != nil {
		return nil, err
	}
	u, ok := dir[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *KVRepository) Save(ctx context.Context, user models.User) error {
	dir, err := r.Directory(ctx)
	if err != nil {
		return err
	}
	dir[user.Email] = user
	return r.SaveDirectory(ctx, dir)
}

func (r *KVRepository) SaveDirectory(ctx context.Context, dir map[string]models.User) error {
	raw, err := json.Marshal(dir)
	if err != nil {
		return fmt.Errorf("failed to encode user directory: %w", err)
	}
	return r.kv.Set(ctx, storage.UsersKey, raw)
}

func (r *KVRepository) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := r.kv.Get(ctx, storage.CurrentUserKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var u *models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("failed to decode current user: %w", err)
	}
	return u, nil
}

func (r *KVRepository) SetCurrentUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode current user: %w", err)
	}
	return r.kv.Set(ctx, storage.CurrentUserKey, raw)
}
