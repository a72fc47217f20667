package entities

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold lower-cases s without language-specific rules. A Caser keeps
// per-call state, so one is built per call.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// User represents a person shown on notes, tasks and backlog summaries
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role,omitempty"`
}

// User roles used by the project synthesizer
const (
	UserRolePIC     = "PIC"
	UserRoleSupport = "Support"
)

// Slugify derives a user ID from a display name: trimmed, lower-cased,
// and with every run of whitespace replaced by a single hyphen.
//
// Distinct names can collapse onto the same slug ("Ann Lee" and "ann  lee").
func Slugify(name string) string {
	fields := strings.FieldsFunc(Fold(strings.TrimSpace(name)), unicode.IsSpace)
	return strings.Join(fields, "-")
}

// NewUser builds a user from a display name, resolving the avatar by name
func NewUser(name, role string, avatarURL string) User {
	return User{
		ID:        Slugify(name),
		Name:      name,
		AvatarURL: avatarURL,
		Role:      role,
	}
}

// Initial returns the first letter of the name, used as avatar fallback
func (u User) Initial() string {
	for _, r := range u.Name {
		return string(r)
	}
	return ""
}
