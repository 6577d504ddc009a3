package storage

// Store keys. Every persisted record lives under a well-known string key.
const (
	// CurrentUserKey holds the active session user, or a JSON null marker
	// when nobody is logged in.
	CurrentUserKey = "currentUser"

	// UsersKey holds the full directory: a mapping of email to user record.
	UsersKey = "users"

	// LanguageKey holds the selected interface language code.
	LanguageKey = "appLanguage"

	submissionsKeyPrefix = "submissions_"
)

// SubmissionsKey returns the key of one user's submission ledger.
func SubmissionsKey(email string) string {
	return submissionsKeyPrefix + email
}
