package models

// SubmissionStatus is the review state of a submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "PENDING"
	StatusApproved SubmissionStatus = "APPROVED"
	StatusRejected SubmissionStatus = "REJECTED"
)

// Terminal reports whether the status can no longer change. A submission
// transitions exactly once from PENDING to a terminal status.
func (s SubmissionStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Submission is one attempt at a catalog test. Ledgers are ordered
// newest-first per user.
type Submission struct {
	// Id is unique and time-ordered (UUIDv7).
	Id string `json:"id"`

	// TestId references the static test catalog; it is validated at
	// creation time.
	TestId string `json:"testId"`

	// TestName is a denormalized snapshot of the test's English display
	// title at submission time, so renaming a catalog entry never
	// rewrites history.
	TestName string `json:"testName"`

	// Date is the submission calendar date in YYYY-MM-DD form.
	Date string `json:"date"`

	Status SubmissionStatus `json:"status"`

	// Score is nil until the submission has been reviewed.
	Score *float64 `json:"score"`

	XPEarned int    `json:"xpEarned"`
	Feedback string `json:"feedback"`
}
