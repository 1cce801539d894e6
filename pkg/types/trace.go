package types

// Trace audience kinds. A circle trace is visible to mutual connections;
// a signal trace is visible to followers. Kind is immutable after creation.
const (
	KindCircle = "circle"
	KindSignal = "signal"
)

// validKinds is the set of recognized trace kinds.
var validKinds = map[string]bool{
	KindCircle: true,
	KindSignal: true,
}

// ValidKind reports whether k is a recognized trace kind.
func ValidKind(k string) bool {
	return validKinds[k]
}

// MaxReflectionLen is the composition-time cap on reflection text. The
// store itself does not enforce it; callers trim before writing.
const MaxReflectionLen = 512

// Trace is a user-authored post.
type Trace struct {
	ID        string // 12-char random identifier.
	Author    string // Username of the author (users.id).
	Text      string
	Kind      string // KindCircle or KindSignal.
	CreatedAt int64  // Milliseconds since the Unix epoch.
	Image     string // Optional embedded image (data URL), empty when absent.
}

// Reflection is a comment on a trace.
type Reflection struct {
	ID        string // 12-char random identifier.
	TraceID   string
	Author    string // Username of the commenter.
	Text      string
	CreatedAt int64 // Milliseconds since the Unix epoch.
}
