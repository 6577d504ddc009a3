// Package services contains the application services of the TalentTrack
// client: registration and session handling, the submission ledger with
// its mock review sweep, and the leaderboard aggregation.
package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/repositories/users"
	"github.com/talenttrack/talenttrack/internal/client/storage"
	"github.com/talenttrack/talenttrack/internal/common"
)

// emailPattern is a format gate, not a security boundary: local part,
// domain, and a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// RegistrationForm carries the raw registration input.
type RegistrationForm struct {
	Name         string
	Email        string
	Password     string
	Age          int
	Sport        string
	State        string
	Religion     string
	AadhaarLast4 string
	Phone        string
}

// Validate checks the form the way the registration page does: every
// field present, email shape, and exact lengths for the aadhaar and phone
// fields. The first violation is returned; nothing is mutated.
func (f RegistrationForm) Validate() error {
	if f.Name == "" || f.Email == "" || f.Password == "" || f.Age == 0 ||
		f.AadhaarLast4 == "" || f.Phone == "" || f.Sport == "" || f.State == "" || f.Religion == "" {
		return common.ErrFieldsRequired
	}
	if !emailPattern.MatchString(f.Email) {
		return common.ErrInvalidEmail
	}
	if len(f.AadhaarLast4) != 4 {
		return common.ErrInvalidAadhaar
	}
	if len(f.Phone) != 10 {
		return common.ErrInvalidPhone
	}
	return nil
}

// AuthService owns the registered-user directory and the current-session
// pointer.
//
// Contract:
//   - Register: validate, reject duplicates, persist the new user and make
//     it the session.
//   - Login: distinguish unknown email from wrong password; on success the
//     user becomes the session.
//   - Logout: clear the persisted session pointer; directory entries stay.
//   - UpdateUser: write the session pointer and the directory entry
//     together so the two copies never diverge.
type AuthService interface {
	Register(ctx context.Context, form RegistrationForm) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, user models.User) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	store *storage.Store
	rng   *rand.Rand
}

// NewAuthService constructs an AuthService bound to the given store. The
// random source only picks placeholder avatars; tests pass a seeded one.
func NewAuthService(store *storage.Store, rng *rand.Rand) AuthService {
	return &authService{store: store, rng: rng}
}

func (a *authService) Register(ctx context.Context, form RegistrationForm) (*models.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	user := models.User{
		Name:         form.Name,
		Email:        form.Email,
		Password:     form.Password,
		Age:          form.Age,
		Sport:        form.Sport,
		State:        form.State,
		Religion:     form.Religion,
		AadhaarLast4: form.AadhaarLast4,
		Phone:        form.Phone,
		XP:           0,
		ProfilePic:   fmt.Sprintf("https://i.pravatar.cc/150?img=%d", a.rng.IntN(70)+1),
	}

	err := a.store.WithTx(ctx, func(ctx context.Context, kv storage.KV) error {
		repo := users.NewKVRepository(kv)
		dir, err := repo.Directory(ctx)
		if err != nil {
			return err
		}
		if _, exists := dir[form.Email]; exists {
			return common.ErrDuplicateEmail
		}
		dir[form.Email] = user
		if err := repo.SaveDirectory(ctx, dir); err != nil {
			return err
		}
		return repo.SetCurrentUser(ctx, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	repo := users.NewKVRepository(a.store.KV())

	user, err := repo.Get(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	// Plaintext compare: the mock stores credentials as entered.
	if user.Password != password {
		return nil, common.ErrInvalidPassword
	}

	if err := repo.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	repo := users.NewKVRepository(a.store.KV())
	return repo.SetCurrentUser(ctx, nil)
}

// UpdateUser persists a mutated user into both the session pointer and the
// directory entry keyed by email, atomically.
func (a *authService) UpdateUser(ctx context.Context, user models.User) error {
	return a.store.WithTx(ctx, func(ctx context.Context, kv storage.KV) error {
		repo := users.NewKVRepository(kv)
		if err := repo.Save(ctx, user); err != nil {
			return err
		}
		return repo.SetCurrentUser(ctx, &user)
	})
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	repo := users.NewKVRepository(a.store.KV())
	return repo.CurrentUser(ctx)
}
