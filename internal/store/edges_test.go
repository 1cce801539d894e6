package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itskylebrooks/haven/pkg/types"
)

func TestResonates(t *testing.T) {
	t.Run("add then get round-trips", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddResonate(types.Resonate{UserID: "lena", TraceID: "t1", CreatedAt: 100}))

		r, err := q.GetResonate("lena", "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", r.TraceID)
		assert.Equal(t, int64(100), r.CreatedAt)
	})

	t.Run("duplicate pair fails with ErrDuplicateKey", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddResonate(types.Resonate{UserID: "lena", TraceID: "t1"}))
		err := q.AddResonate(types.Resonate{UserID: "lena", TraceID: "t1"})
		assert.ErrorIs(t, err, types.ErrDuplicateKey)
	})

	t.Run("same trace different users is fine", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddResonate(types.Resonate{UserID: "lena", TraceID: "t1"}))
		require.NoError(t, q.AddResonate(types.Resonate{UserID: "milo", TraceID: "t1"}))
	})

	t.Run("delete by id removes the row", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddResonate(types.Resonate{UserID: "lena", TraceID: "t1"}))
		r, err := q.GetResonate("lena", "t1")
		require.NoError(t, err)

		require.NoError(t, q.DeleteResonate(r.ID))
		_, err = q.GetResonate("lena", "t1")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("delete for trace removes every row on it", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddResonate(types.Resonate{UserID: "lena", TraceID: "t1"}))
		require.NoError(t, q.AddResonate(types.Resonate{UserID: "milo", TraceID: "t1"}))
		require.NoError(t, q.AddResonate(types.Resonate{UserID: "lena", TraceID: "t2"}))

		require.NoError(t, q.DeleteResonatesForTrace("t1"))

		rs, err := q.ResonatesByUser("lena")
		require.NoError(t, err)
		require.Len(t, rs, 1)
		assert.Equal(t, "t2", rs[0].TraceID)
	})
}

func TestConnections(t *testing.T) {
	t.Run("directions are independent rows", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddConnection(types.Connection{FromUser: "lena", ToUser: "milo"}))

		has, err := q.HasConnection("lena", "milo")
		require.NoError(t, err)
		assert.True(t, has)

		has, err = q.HasConnection("milo", "lena")
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("duplicate direction fails with ErrDuplicateKey", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddConnection(types.Connection{FromUser: "lena", ToUser: "milo"}))
		err := q.AddConnection(types.Connection{FromUser: "lena", ToUser: "milo"})
		assert.ErrorIs(t, err, types.ErrDuplicateKey)
	})

	t.Run("delete of absent edge is a no-op", func(t *testing.T) {
		q := newTestStore(t).Queries()
		assert.NoError(t, q.DeleteConnection("lena", "milo"))
	})

	t.Run("rename rewrites both endpoints", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddConnection(types.Connection{FromUser: "lena", ToUser: "milo"}))
		require.NoError(t, q.AddConnection(types.Connection{FromUser: "ava", ToUser: "lena"}))

		require.NoError(t, q.RenameConnectionUser("lena", "lena2"))

		has, err := q.HasConnection("lena2", "milo")
		require.NoError(t, err)
		assert.True(t, has)

		has, err = q.HasConnection("ava", "lena2")
		require.NoError(t, err)
		assert.True(t, has)

		from, err := q.ConnectionsFrom("lena")
		require.NoError(t, err)
		assert.Empty(t, from)
	})
}

func TestSubscriptions(t *testing.T) {
	t.Run("lookup by follower and followee", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddSubscription(types.Subscription{Follower: "ava", Followee: "lena"}))
		require.NoError(t, q.AddSubscription(types.Subscription{Follower: "ava", Followee: "milo"}))
		require.NoError(t, q.AddSubscription(types.Subscription{Follower: "eli", Followee: "lena"}))

		following, err := q.SubscriptionsByFollower("ava")
		require.NoError(t, err)
		assert.Len(t, following, 2)

		followers, err := q.SubscriptionsByFollowee("lena")
		require.NoError(t, err)
		assert.Len(t, followers, 2)
	})

	t.Run("duplicate edge fails with ErrDuplicateKey", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddSubscription(types.Subscription{Follower: "ava", Followee: "lena"}))
		err := q.AddSubscription(types.Subscription{Follower: "ava", Followee: "lena"})
		assert.ErrorIs(t, err, types.ErrDuplicateKey)
	})

	t.Run("delete removes exactly one direction", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddSubscription(types.Subscription{Follower: "ava", Followee: "lena"}))
		require.NoError(t, q.AddSubscription(types.Subscription{Follower: "lena", Followee: "ava"}))

		require.NoError(t, q.DeleteSubscription("ava", "lena"))

		has, err := q.HasSubscription("ava", "lena")
		require.NoError(t, err)
		assert.False(t, has)

		has, err = q.HasSubscription("lena", "ava")
		require.NoError(t, err)
		assert.True(t, has)
	})
}
