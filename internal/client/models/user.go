// Package models defines the client-side data model: registered users,
// test submissions, the static test catalog, and the XP-derived
// progression values (level, badges).
package models

// User is one registered athlete. Email is the immutable identity key
// under which the user is stored in the directory.
//
// The password is stored as entered; there is no credential security
// model in this application. Level is never stored; it is derived from
// XP at read time (see LevelInfoForXP).
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Age          int    `json:"age"`
	Sport        string `json:"sport"`
	State        string `json:"state"`
	Religion     string `json:"religion"`
	AadhaarLast4 string `json:"aadhaar"`
	Phone        string `json:"phone"`

	// XP is monotonically non-decreasing; it only grows when a pending
	// submission is approved by the review sweep.
	XP int `json:"xp"`

	ProfilePic string `json:"profilePic"`
}

// FirstName returns the leading word of the user's full name, used by
// the home page greeting.
func (u User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}
