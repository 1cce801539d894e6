// Edge table accessors: resonates, connections, subscriptions. All three
// carry a composite unique index, so the Add methods have add-semantics and
// fail with types.ErrDuplicateKey when the pair already exists.
package store

import (
	"database/sql"
	"fmt"

	"github.com/itskylebrooks/haven/pkg/types"
)

// Resonates.

// AddResonate inserts a resonate row. Returns types.ErrDuplicateKey when
// the (user, trace) pair already has one.
func (q Queries) AddResonate(r types.Resonate) error {
	_, err := q.q.Exec(
		"INSERT INTO resonates (user_id, trace_id, created_at) VALUES (?, ?, ?)",
		r.UserID, r.TraceID, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("add resonate: %w", mapConstraintErr(err))
	}
	return nil
}

// GetResonate returns the resonate row for the (user, trace) pair, or
// types.ErrNotFound when the user does not currently resonate the trace.
func (q Queries) GetResonate(userID, traceID string) (*types.Resonate, error) {
	row := q.q.QueryRow(
		"SELECT id, user_id, trace_id, created_at FROM resonates WHERE user_id = ? AND trace_id = ?",
		userID, traceID,
	)
	var r types.Resonate
	if err := row.Scan(&r.ID, &r.UserID, &r.TraceID, &r.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get resonate: %w", err)
	}
	return &r, nil
}

// DeleteResonate removes a resonate row by its auto-assigned id.
func (q Queries) DeleteResonate(id int64) error {
	if _, err := q.q.Exec("DELETE FROM resonates WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete resonate %d: %w", id, err)
	}
	return nil
}

// ResonatesByUser returns every resonate row for the given user.
func (q Queries) ResonatesByUser(userID string) ([]types.Resonate, error) {
	rows, err := q.q.Query(
		"SELECT id, user_id, trace_id, created_at FROM resonates WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query resonates by user: %w", err)
	}
	return scanResonates(rows)
}

// RenameResonateUser rewrites the user field on every resonate row held by
// oldName.
func (q Queries) RenameResonateUser(oldName, newName string) error {
	if _, err := q.q.Exec("UPDATE resonates SET user_id = ? WHERE user_id = ?", newName, oldName); err != nil {
		return fmt.Errorf("rename resonate user: %w", err)
	}
	return nil
}

// DeleteResonatesForTrace removes every resonate row on the given trace.
func (q Queries) DeleteResonatesForTrace(traceID string) error {
	if _, err := q.q.Exec("DELETE FROM resonates WHERE trace_id = ?", traceID); err != nil {
		return fmt.Errorf("delete resonates for trace %s: %w", traceID, err)
	}
	return nil
}

func scanResonates(rows *sql.Rows) ([]types.Resonate, error) {
	defer rows.Close()

	var resonates []types.Resonate
	for rows.Next() {
		var r types.Resonate
		if err := rows.Scan(&r.ID, &r.UserID, &r.TraceID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resonate: %w", err)
		}
		resonates = append(resonates, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resonates: %w", err)
	}
	return resonates, nil
}

// Connections.

// AddConnection inserts one direction of a friend edge. Returns
// types.ErrDuplicateKey when that direction already exists.
func (q Queries) AddConnection(c types.Connection) error {
	_, err := q.q.Exec(
		"INSERT INTO connections (from_user, to_user, created_at) VALUES (?, ?, ?)",
		c.FromUser, c.ToUser, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("add connection: %w", mapConstraintErr(err))
	}
	return nil
}

// HasConnection reports whether the (from, to) direction exists.
func (q Queries) HasConnection(from, to string) (bool, error) {
	var one int
	err := q.q.QueryRow(
		"SELECT 1 FROM connections WHERE from_user = ? AND to_user = ?",
		from, to,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check connection: %w", err)
	}
	return true, nil
}

// DeleteConnection removes the (from, to) direction if present.
func (q Queries) DeleteConnection(from, to string) error {
	if _, err := q.q.Exec("DELETE FROM connections WHERE from_user = ? AND to_user = ?", from, to); err != nil {
		return fmt.Errorf("delete connection: %w", err)
	}
	return nil
}

// ConnectionsFrom returns the outgoing connection rows for a user.
func (q Queries) ConnectionsFrom(user string) ([]types.Connection, error) {
	rows, err := q.q.Query(
		"SELECT id, from_user, to_user, created_at FROM connections WHERE from_user = ?",
		user,
	)
	if err != nil {
		return nil, fmt.Errorf("query connections from: %w", err)
	}
	return scanConnections(rows)
}

// ConnectionsTo returns the incoming connection rows for a user.
func (q Queries) ConnectionsTo(user string) ([]types.Connection, error) {
	rows, err := q.q.Query(
		"SELECT id, from_user, to_user, created_at FROM connections WHERE to_user = ?",
		user,
	)
	if err != nil {
		return nil, fmt.Errorf("query connections to: %w", err)
	}
	return scanConnections(rows)
}

// RenameConnectionUser rewrites both endpoints on every connection row
// referencing oldName.
func (q Queries) RenameConnectionUser(oldName, newName string) error {
	if _, err := q.q.Exec("UPDATE connections SET from_user = ? WHERE from_user = ?", newName, oldName); err != nil {
		return fmt.Errorf("rename connection from_user: %w", err)
	}
	if _, err := q.q.Exec("UPDATE connections SET to_user = ? WHERE to_user = ?", newName, oldName); err != nil {
		return fmt.Errorf("rename connection to_user: %w", err)
	}
	return nil
}

func scanConnections(rows *sql.Rows) ([]types.Connection, error) {
	defer rows.Close()

	var conns []types.Connection
	for rows.Next() {
		var c types.Connection
		if err := rows.Scan(&c.ID, &c.FromUser, &c.ToUser, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		conns = append(conns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate connections: %w", err)
	}
	return conns, nil
}

// Subscriptions.

// AddSubscription inserts a follow edge. Returns types.ErrDuplicateKey
// when the (follower, followee) pair already exists.
func (q Queries) AddSubscription(s types.Subscription) error {
	_, err := q.q.Exec(
		"INSERT INTO subscriptions (follower, followee, created_at) VALUES (?, ?, ?)",
		s.Follower, s.Followee, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("add subscription: %w", mapConstraintErr(err))
	}
	return nil
}

// HasSubscription reports whether follower currently follows followee.
func (q Queries) HasSubscription(follower, followee string) (bool, error) {
	var one int
	err := q.q.QueryRow(
		"SELECT 1 FROM subscriptions WHERE follower = ? AND followee = ?",
		follower, followee,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return true, nil
}

// DeleteSubscription removes the (follower, followee) edge if present.
func (q Queries) DeleteSubscription(follower, followee string) error {
	if _, err := q.q.Exec("DELETE FROM subscriptions WHERE follower = ? AND followee = ?", follower, followee); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

// SubscriptionsByFollower returns the edges where user is the follower.
func (q Queries) SubscriptionsByFollower(follower string) ([]types.Subscription, error) {
	rows, err := q.q.Query(
		"SELECT id, follower, followee, created_at FROM subscriptions WHERE follower = ?",
		follower,
	)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions by follower: %w", err)
	}
	return scanSubscriptions(rows)
}

// SubscriptionsByFollowee returns the edges where user is the followee.
func (q Queries) SubscriptionsByFollowee(followee string) ([]types.Subscription, error) {
	rows, err := q.q.Query(
		"SELECT id, follower, followee, created_at FROM subscriptions WHERE followee = ?",
		followee,
	)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions by followee: %w", err)
	}
	return scanSubscriptions(rows)
}

// RenameSubscriptionUser rewrites both endpoints on every subscription row
// referencing oldName.
func (q Queries) RenameSubscriptionUser(oldName, newName string) error {
	if _, err := q.q.Exec("UPDATE subscriptions SET follower = ? WHERE follower = ?", newName, oldName); err != nil {
		return fmt.Errorf("rename subscription follower: %w", err)
	}
	if _, err := q.q.Exec("UPDATE subscriptions SET followee = ? WHERE followee = ?", newName, oldName); err != nil {
		return fmt.Errorf("rename subscription followee: %w", err)
	}
	return nil
}

func scanSubscriptions(rows *sql.Rows) ([]types.Subscription, error) {
	defer rows.Close()

	var subs []types.Subscription
	for rows.Next() {
		var s types.Subscription
		if err := rows.Scan(&s.ID, &s.Follower, &s.Followee, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}
	return subs, nil
}
