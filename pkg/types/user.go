package types

// Profile visibility values.
const (
	VisibilityPublic = "public"
	VisibilityLink   = "link"
)

// validVisibilities is the set of recognized profile visibility values.
var validVisibilities = map[string]bool{
	VisibilityPublic: true,
	VisibilityLink:   true,
}

// ValidVisibility reports whether v is a recognized profile visibility.
func ValidVisibility(v string) bool {
	return validVisibilities[v]
}

// User is a Haven account. The ID is the lowercase username and doubles as
// the primary key; Handle is the username prefixed with "@".
type User struct {
	ID         string // Username, lowercase.
	Name       string // Display name shown on traces and reflections.
	Handle     string // "@" + username.
	Bio        string // Optional short bio.
	Avatar     string // Optional image reference (data URL or remote URL).
	Visibility string // Profile visibility (public or link).
}

// Person is the summary shape returned by friend and follower listings.
type Person struct {
	ID     string
	Name   string
	Handle string
}

// ProfileUpdate carries a partial update to a user row. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	Name   *string
	Bio    *string
	Avatar *string
}
