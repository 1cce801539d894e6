package types

// Resonate records that a user currently likes a trace. At most one row
// exists per (UserID, TraceID) pair; the row's existence is the sole state.
type Resonate struct {
	ID        int64 // Auto-assigned row id.
	UserID    string
	TraceID   string
	CreatedAt int64 // Milliseconds since the Unix epoch.
}

// Connection is one direction of a friend edge. A friendship is complete
// only when both directions exist; the data-access layer always writes and
// removes the two directions together.
type Connection struct {
	ID        int64
	FromUser  string
	ToUser    string
	CreatedAt int64
}

// Subscription is a one-way follow edge. No mutuality is required.
type Subscription struct {
	ID        int64
	Follower  string
	Followee  string
	CreatedAt int64
}
