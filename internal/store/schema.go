// Schema DDL for the Haven embedded store.
package store

// Table DDL. Timestamps are integer milliseconds since the Unix epoch,
// matching the values handed out by the data-access layer.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    handle TEXT NOT NULL,
    bio TEXT NOT NULL DEFAULT '',
    avatar TEXT NOT NULL DEFAULT '',
    visibility TEXT NOT NULL DEFAULT 'public'
);`

	createTraces = `CREATE TABLE IF NOT EXISTS traces (
    id TEXT PRIMARY KEY,
    author TEXT NOT NULL,
    text TEXT NOT NULL,
    kind TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    image TEXT NOT NULL DEFAULT ''
);`

	createReflections = `CREATE TABLE IF NOT EXISTS reflections (
    id TEXT PRIMARY KEY,
    trace_id TEXT NOT NULL,
    author TEXT NOT NULL,
    text TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`

	createResonates = `CREATE TABLE IF NOT EXISTS resonates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    trace_id TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`

	createConnections = `CREATE TABLE IF NOT EXISTS connections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    from_user TEXT NOT NULL,
    to_user TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`

	createSubscriptions = `CREATE TABLE IF NOT EXISTS subscriptions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    follower TEXT NOT NULL,
    followee TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`

	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createDrafts = `CREATE TABLE IF NOT EXISTS drafts (
    key TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    kind TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);`
)

// Index DDL. The composite unique indexes on the edge tables give the
// add-semantics inserts their at-most-one-row guarantee.
const (
	idxTracesAuthor        = `CREATE INDEX IF NOT EXISTS idx_traces_author ON traces(author);`
	idxTracesKind          = `CREATE INDEX IF NOT EXISTS idx_traces_kind ON traces(kind);`
	idxTracesCreated       = `CREATE INDEX IF NOT EXISTS idx_traces_created ON traces(created_at);`
	idxReflectionsTrace    = `CREATE INDEX IF NOT EXISTS idx_reflections_trace ON reflections(trace_id);`
	idxReflectionsAuthor   = `CREATE INDEX IF NOT EXISTS idx_reflections_author ON reflections(author);`
	idxReflectionsCreated  = `CREATE INDEX IF NOT EXISTS idx_reflections_created ON reflections(created_at);`
	idxResonatesUnique     = `CREATE UNIQUE INDEX IF NOT EXISTS idx_resonates_unique ON resonates(user_id, trace_id);`
	idxResonatesUser       = `CREATE INDEX IF NOT EXISTS idx_resonates_user ON resonates(user_id);`
	idxResonatesTrace      = `CREATE INDEX IF NOT EXISTS idx_resonates_trace ON resonates(trace_id);`
	idxConnectionsUnique   = `CREATE UNIQUE INDEX IF NOT EXISTS idx_connections_unique ON connections(from_user, to_user);`
	idxConnectionsFrom     = `CREATE INDEX IF NOT EXISTS idx_connections_from ON connections(from_user);`
	idxConnectionsTo       = `CREATE INDEX IF NOT EXISTS idx_connections_to ON connections(to_user);`
	idxSubscriptionsUnique = `CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_unique ON subscriptions(follower, followee);`
	idxSubscriptionsFollower = `CREATE INDEX IF NOT EXISTS idx_subscriptions_follower ON subscriptions(follower);`
	idxSubscriptionsFollowee = `CREATE INDEX IF NOT EXISTS idx_subscriptions_followee ON subscriptions(followee);`
	idxDraftsUpdated       = `CREATE INDEX IF NOT EXISTS idx_drafts_updated ON drafts(updated_at);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createUsers,
	createTraces,
	createReflections,
	createResonates,
	createConnections,
	createSubscriptions,
	createSettings,
	createDrafts,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxTracesAuthor,
	idxTracesKind,
	idxTracesCreated,
	idxReflectionsTrace,
	idxReflectionsAuthor,
	idxReflectionsCreated,
	idxResonatesUnique,
	idxResonatesUser,
	idxResonatesTrace,
	idxConnectionsUnique,
	idxConnectionsFrom,
	idxConnectionsTo,
	idxSubscriptionsUnique,
	idxSubscriptionsFollower,
	idxSubscriptionsFollowee,
	idxDraftsUpdated,
}
