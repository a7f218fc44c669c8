package domain

import "time"

// AuthProvider identifies how a user proves their identity.
type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string         `json:"user_id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	PasswordHash *string        `json:"-"` // nil for federated accounts
	AuthProvider AuthProvider   `json:"auth_provider"`
	Preferences  map[string]any `json:"preferences"`
	CreatedAt    time.Time      `json:"created_at"`
}

// DefaultPreferences returns the preferences assigned when registration omits them.
func DefaultPreferences() map[string]any {
	return map[string]any{
		"theme":     "dark",
		"auto_save": true,
	}
}

// GoogleIdentity is the subset of verified Google ID token claims the service relies on.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}
