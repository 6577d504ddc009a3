package services

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenttrack/talenttrack/internal/client/repositories/users"
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

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func validForm() RegistrationForm {
	return RegistrationForm{
		Name:         "Asha Rao",
		Email:        "asha@sai.in",
		Password:     "secret",
		Age:          21,
		Sport:        "athletics",
		State:        "kerala",
		Religion:     "hinduism",
		AadhaarLast4: "4321",
		Phone:        "9876501234",
	}
}

func TestRegister_Success(t *testing.T) {
	store := setupStore(t)
	svc := NewAuthService(store, testRng())
	ctx := context.Background()

	user, err := svc.Register(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, 0, user.XP)
	assert.True(t, strings.HasPrefix(user.ProfilePic, "https://i.pravatar.cc/150?img="))

	repo := users.NewKVRepository(store.KV())
	dir, err := repo.Directory(ctx)
	require.NoError(t, err)
	assert.Contains(t, dir, "asha@sai.in")

	session, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, *user, *session)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := setupStore(t)
	svc := NewAuthService(store, testRng())
	ctx := context.Background()

	_, err := svc.Register(ctx, validForm())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validForm())
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *RegistrationForm)
		wantErr error
	}{
		{"missing name", func(f *RegistrationForm) { f.Name = "" }, common.ErrFieldsRequired},
		{"missing password", func(f *RegistrationForm) { f.Password = "" }, common.ErrFieldsRequired},
		{"zero age", func(f *RegistrationForm) { f.Age = 0 }, common.ErrFieldsRequired},
		{"bad email", func(f *RegistrationForm) { f.Email = "not-an-email" }, common.ErrInvalidEmail},
		{"short aadhaar", func(f *RegistrationForm) { f.AadhaarLast4 = "123" }, common.ErrInvalidAadhaar},
		{"long phone", func(f *RegistrationForm) { f.Phone = "98765012345" }, common.ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupStore(t)
			svc := NewAuthService(store, testRng())

			form := validForm()
			tt.mutate(&form)

			_, err := svc.Register(context.Background(), form)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(setupStore(t), testRng())

	_, err := svc.Login(context.Background(), "nobody@sai.in", "pw")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestLogin_WrongPassword_LeavesSessionUntouched(t *testing.T) {
	store := setupStore(t)
	svc := NewAuthService(store, testRng())
	ctx := context.Background()

	_, err := svc.Register(ctx, validForm())
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Login(ctx, "asha@sai.in", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidPassword)

	session, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogin_Success_SetsSession(t *testing.T) {
	store := setupStore(t)
	svc := NewAuthService(store, testRng())
	ctx := context.Background()

	registered, err := svc.Register(ctx, validForm())
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	user, err := svc.Login(ctx, "asha@sai.in", "secret")
	require.NoError(t, err)
	assert.Equal(t, *registered, *user)

	session, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, *user, *session)
}

func TestLogout_ClearsSessionKeepsDirectory(t *testing.T) {
	store := setupStore(t)
	svc := NewAuthService(store, testRng())
	ctx := context.Background()

	_, err := svc.Register(ctx, validForm())
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	session, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	dir, err := users.NewKVRepository(store.KV()).Directory(ctx)
	require.NoError(t, err)
	assert.Contains(t, dir, "asha@sai.in")
}

func TestUpdateUser_WritesBothCopies(t *testing.T) {
	store := setupStore(t)
	svc := NewAuthService(store, testRng())
	ctx := context.Background()

	user, err := svc.Register(ctx, validForm())
	require.NoError(t, err)

	updated := *user
	updated.Sport = "swimming"
	updated.Age = 22
	require.NoError(t, svc.UpdateUser(ctx, updated))

	repo := users.NewKVRepository(store.KV())
	session, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, *session)

	entry, err := repo.Get(ctx, updated.Email)
	require.NoError(t, err)
	assert.Equal(t, updated, *entry)
}
