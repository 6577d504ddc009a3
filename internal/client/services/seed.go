package services

import (
	"context"

	"github.com/talenttrack/talenttrack/internal/client/models"
	"github.com/talenttrack/talenttrack/internal/client/repositories/submissions"
	"github.com/talenttrack/talenttrack/internal/client/repositories/users"
	"github.com/talenttrack/talenttrack/internal/client/storage"
	"github.com/talenttrack/talenttrack/internal/i18n"
)

// SeedDemo populates an empty store with one demo athlete and a small
// ledger covering every submission status. A non-empty directory is left
// alone. It reports whether seeding happened.
func SeedDemo(ctx context.Context, store *storage.Store, bundle *i18n.Bundle) (bool, error) {
	repo := users.NewKVRepository(store.KV())
	dir, err := repo.Directory(ctx)
	if err != nil {
		return false, err
	}
	if len(dir) > 0 {
		return false, nil
	}

	demo := models.User{
		Name:         "Aarav Sharma",
		Email:        "test@sai.in",
		Password:     "password",
		Age:          19,
		Sport:        "athletics",
		State:        "maharashtra",
		Religion:     "hinduism",
		AadhaarLast4: "1234",
		Phone:        "9876543210",
		XP:           350,
		ProfilePic:   "https://i.pravatar.cc/150?img=60",
	}

	sprintScore := 4.8
	rejectedScore := 0.0
	ledger := []models.Submission{
		{
			Id:       "1",
			TestId:   "40m-sprint",
			TestName: bundle.English("test-sprint-title"),
			Date:     "2024-05-15",
			Status:   models.StatusApproved,
			Score:    &sprintScore,
			XPEarned: 150,
			Feedback: ApprovedFeedback,
		},
		{
			Id:       "2",
			TestId:   "pushups",
			TestName: bundle.English("test-pushups-title"),
			Date:     "2024-05-10",
			Status:   models.StatusPending,
		},
		{
			Id:       "3",
			TestId:   "vertical-jump",
			TestName: bundle.English("test-jump-title"),
			Date:     "2024-05-01",
			Status:   models.StatusRejected,
			Score:    &rejectedScore,
			Feedback: "Inconsistent starting form.",
		},
	}

	err = store.WithTx(ctx, func(ctx context.Context, kv storage.KV) error {
		if err := users.NewKVRepository(kv).Save(ctx, demo); err != nil {
			return err
		}
		return submissions.NewKVRepository(kv).SaveLedger(ctx, demo.Email, ledger)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
