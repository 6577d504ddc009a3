package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/repositories/users"
	"github.com/talenttrack/talenttrack/internal/client/storage"
)

// Scope is the leaderboard filter granularity.
type Scope string

const (
	ScopeDistrict Scope = "district"
	ScopeState    Scope = "state"
	ScopeNational Scope = "national"
)

// topSize is how many entries the leaderboard page shows.
const topSize = 10

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank int
	User models.User
}

// Standings is the derived leaderboard view: the top rows plus the
// session user's own rank, which is reported even when the user is
// outside the top. OwnRank of zero means not ranked in this scope.
type Standings struct {
	Scope   Scope
	Top     []Entry
	OwnRank int
	Total   int
}

// LeaderboardService derives ranked views over the user directory.
type LeaderboardService interface {
	Rank(ctx context.Context, scope Scope, current models.User) (*Standings, error)
}

type leaderboardService struct {
	store *storage.Store
	rng   *rand.Rand
	floor int
}

// NewLeaderboardService constructs a LeaderboardService. The directory is
// topped up with synthetic athletes whenever it holds fewer than floor
// entries, so the board is never empty.
func NewLeaderboardService(store *storage.Store, rng *rand.Rand, floor int) LeaderboardService {
	return &leaderboardService{store: store, rng: rng, floor: floor}
}

func (l *leaderboardService) Rank(ctx context.Context, scope Scope, current models.User) (*Standings, error) {
	dir, err := l.ensureFloor(ctx)
	if err != nil {
		return nil, err
	}

	// A JSON object has no order, so emails give the deterministic base
	// order that ties are broken by.
	emails := make([]string, 0, len(dir))
	for email := range dir {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	var pool []models.User
	for _, email := range emails {
		u := dir[email]
		// District has no finer-grained field in the data model; it
		// filters by state, same as the state scope.
		if scope != ScopeNational && u.State != current.State {
			continue
		}
		pool = append(pool, u)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].XP > pool[j].XP
	})

	standings := &Standings{Scope: scope, Total: len(pool)}
	for i, u := range pool {
		if i < topSize {
			standings.Top = append(standings.Top, Entry{Rank: i + 1, User: u})
		}
		if u.Email == current.Email {
			standings.OwnRank = i + 1
		}
	}
	return standings, nil
}

// ensureFloor seeds synthetic athletes while the directory is smaller
// than the floor. Registered users are never touched.
func (l *leaderboardService) ensureFloor(ctx context.Context) (map[string]models.User, error) {
	repo := users.NewKVRepository(l.store.KV())
	dir, err := repo.Directory(ctx)
	if err != nil {
		return nil, err
	}
	if len(dir) >= l.floor {
		return dir, nil
	}

	for i := 1; i <= l.floor; i++ {
		email := fmt.Sprintf("mock%d@sai.in", i)
		if _, exists := dir[email]; exists {
			continue
		}
		sport := "swimming"
		if i%2 == 0 {
			sport = "athletics"
		}
		state := "maharashtra"
		if i%3 == 0 {
			state = "tamil-nadu"
		}
		dir[email] = models.User{
			Name:       fmt.Sprintf("Mock Athlete %d", i),
			Email:      email,
			Sport:      sport,
			State:      state,
			XP:         (5000 - i*500) + l.rng.IntN(200),
			ProfilePic: fmt.Sprintf("https://i.pravatar.cc/150?img=%d", 10+i),
		}
	}

	if err := repo.SaveDirectory(ctx, dir); err != nil {
		return nil, err
	}
	return dir, nil
}
