package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/talenttrack/talenttrack/internal/capture"
	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/repositories/submissions"
	"github.com/talenttrack/talenttrack/internal/client/repositories/users"
	"github.com/talenttrack/talenttrack/internal/client/storage"
	"github.com/talenttrack/talenttrack/internal/common"
	"github.com/talenttrack/talenttrack/internal/i18n"
)

// Review feedback attached by the mock review sweep.
const (
	ApprovedFeedback = "Excellent form and effort!"
	RejectedFeedback = "Video quality too low or form inconsistency detected."
)

// now is a test seam for the submission date.
var now = time.Now

// newSubmissionId is a test seam for id generation. UUIDv7 ids are unique
// and time-ordered, like the millisecond timestamps the mock derives them
// from.
var newSubmissionId = func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ReviewDecision is the outcome drawn for one pending submission.
type ReviewDecision struct {
	Approved bool
	Score    float64
	XPEarned int
	Feedback string
}

// DecisionFunc draws one review decision. The production function is
// pseudo-random; tests inject deterministic ones.
type DecisionFunc func() ReviewDecision

// RandomDecision returns the production decision source: approval with
// probability approveProb, a score in [scoreMin,scoreMax] and XP in
// [xpMin,xpMax], both inclusive.
func RandomDecision(rng *rand.Rand, approveProb float64, scoreMin, scoreMax, xpMin, xpMax int) DecisionFunc {
	return func() ReviewDecision {
		if rng.Float64() < approveProb {
			return ReviewDecision{
				Approved: true,
				Score:    float64(rng.IntN(scoreMax-scoreMin+1) + scoreMin),
				XPEarned: rng.IntN(xpMax-xpMin+1) + xpMin,
				Feedback: ApprovedFeedback,
			}
		}
		return ReviewDecision{Approved: false, Feedback: RejectedFeedback}
	}
}

// SubmissionService owns per-user submission ledgers: creating pending
// submissions and running the mock review sweep over them.
type SubmissionService interface {
	// Ledger loads a user's submissions, newest first.
	Ledger(ctx context.Context, email string) ([]models.Submission, error)

	// Submit creates a PENDING submission for the given catalog test and
	// prepends it to the ledger. The clip only gates the action; it is
	// discarded, not stored.
	Submit(ctx context.Context, user models.User, testId string, clip capture.Clip) (models.Submission, []models.Submission, error)

	// ReviewSweep transitions every PENDING item to a terminal status and
	// credits approved XP to the user. It returns the number of items
	// transitioned and the updated ledger; a zero count means nothing was
	// pending and nothing was written.
	ReviewSweep(ctx context.Context, user *models.User, ledger []models.Submission) (int, []models.Submission, error)
}

type submissionService struct {
	store  *storage.Store
	bundle *i18n.Bundle
	decide DecisionFunc
}

// NewSubmissionService constructs a SubmissionService. The bundle supplies
// English test titles for the denormalized snapshot; decide supplies
// review outcomes.
func NewSubmissionService(store *storage.Store, bundle *i18n.Bundle, decide DecisionFunc) SubmissionService {
	return &submissionService{store: store, bundle: bundle, decide: decide}
}

func (s *submissionService) Ledger(ctx context.Context, email string) ([]models.Submission, error) {
	repo := submissions.NewKVRepository(s.store.KV())
	return repo.ListByUser(ctx, email)
}

func (s *submissionService) Submit(ctx context.Context, user models.User, testId string, clip capture.Clip) (models.Submission, []models.Submission, error) {
	if clip.Empty() {
		return models.Submission{}, nil, common.ErrEmptyClip
	}
	test, ok := models.TestById(testId)
	if !ok {
		return models.Submission{}, nil, common.ErrUnknownTest
	}

	sub := models.Submission{
		Id:       newSubmissionId(),
		TestId:   test.Id,
		TestName: s.bundle.English(test.TitleKey),
		Date:     now().Format("2006-01-02"),
		Status:   models.StatusPending,
	}

	repo := submissions.NewKVRepository(s.store.KV())
	ledger, err := repo.ListByUser(ctx, user.Email)
	if err != nil {
		return models.Submission{}, nil, err
	}

	ledger = append([]models.Submission{sub}, ledger...)
	if err := repo.SaveLedger(ctx, user.Email, ledger); err != nil {
		return models.Submission{}, nil, err
	}
	return sub, ledger, nil
}

func (s *submissionService) ReviewSweep(ctx context.Context, user *models.User, ledger []models.Submission) (int, []models.Submission, error) {
	count := 0
	for i := range ledger {
		if ledger[i].Status != models.StatusPending {
			continue
		}
		count++

		decision := s.decide()
		if decision.Approved {
			ledger[i].Status = models.StatusApproved
			score := decision.Score
			ledger[i].Score = &score
			ledger[i].XPEarned = decision.XPEarned
			ledger[i].Feedback = decision.Feedback
			user.XP += decision.XPEarned
		} else {
			ledger[i].Status = models.StatusRejected
			zero := 0.0
			ledger[i].Score = &zero
			ledger[i].XPEarned = 0
			ledger[i].Feedback = decision.Feedback
		}
	}

	if count == 0 {
		return 0, ledger, nil
	}

	// The ledger, the directory entry, and the session pointer change
	// together or not at all.
	err := s.store.WithTx(ctx, func(ctx context.Context, kv storage.KV) error {
		if err := submissions.NewKVRepository(kv).SaveLedger(ctx, user.Email, ledger); err != nil {
			return err
		}
		userRepo := users.NewKVRepository(kv)
		if err := userRepo.Save(ctx, *user); err != nil {
			return err
		}
		return userRepo.SetCurrentUser(ctx, user)
	})
	if err != nil {
		return 0, nil, err
	}
	return count, ledger, nil
}
