// Package common defines shared constants and sentinel errors used across
// the TalentTrack client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration validation errors. These surface as inline form
	// messages, never as fatal faults.
	ErrFieldsRequired = errors.New("all fields are required")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidAadhaar = errors.New("aadhaar must be the last 4 digits")
	ErrInvalidPhone   = errors.New("phone number must be 10 digits")
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// Authentication errors.
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrNoSession       = errors.New("no active session")

	// Submission flow errors.
	ErrNoTestSelected = errors.New("no test selected")
	ErrEmptyClip      = errors.New("no video to submit")
	ErrUnknownTest    = errors.New("unknown test id")

	// Capture pipeline errors.
	ErrNoStream     = errors.New("no active camera stream")
	ErrNotRecording = errors.New("not recording")
	ErrNotAVideo    = errors.New("selected file is not a video")

	// Store errors.
	ErrStoreLocked = errors.New("store is locked by another instance")
)
