package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itskylebrooks/haven/pkg/types"
)

func TestSettings(t *testing.T) {
	t.Run("round-trips JSON values", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.PutSetting("accentColor", "lilac"))
		var color string
		require.NoError(t, q.GetSetting("accentColor", &color))
		assert.Equal(t, "lilac", color)

		require.NoError(t, q.PutSetting("notificationsLastSeen", int64(1756000000000)))
		var ts int64
		require.NoError(t, q.GetSetting("notificationsLastSeen", &ts))
		assert.Equal(t, int64(1756000000000), ts)
	})

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		q := newTestStore(t).Queries()

		var out string
		err := q.GetSetting("ghost", &out)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("put overwrites", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.PutSetting("currentUser", "lena"))
		require.NoError(t, q.PutSetting("currentUser", "milo"))

		var user string
		require.NoError(t, q.GetSetting("currentUser", &user))
		assert.Equal(t, "milo", user)
	})

	t.Run("add fails on existing key", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.AddSetting("seeding", "a"))
		err := q.AddSetting("seeding", "b")
		assert.ErrorIs(t, err, types.ErrDuplicateKey)
	})

	t.Run("delete then has reports absent", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.PutSetting("seeded", true))
		require.NoError(t, q.DeleteSetting("seeded"))

		has, err := q.HasSetting("seeded")
		require.NoError(t, err)
		assert.False(t, has)
	})
}

func TestDrafts(t *testing.T) {
	t.Run("round-trips the composer draft", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.PutDraft(types.Draft{Key: types.DraftComposer, Text: "half a thought", Kind: types.KindCircle, UpdatedAt: 42}))

		d, err := q.GetDraft(types.DraftComposer)
		require.NoError(t, err)
		assert.Equal(t, "half a thought", d.Text)
		assert.Equal(t, types.KindCircle, d.Kind)
	})

	t.Run("put overwrites the previous draft", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.PutDraft(types.Draft{Key: types.DraftComposer, Text: "first", Kind: types.KindSignal}))
		require.NoError(t, q.PutDraft(types.Draft{Key: types.DraftComposer, Text: "second", Kind: types.KindCircle}))

		d, err := q.GetDraft(types.DraftComposer)
		require.NoError(t, err)
		assert.Equal(t, "second", d.Text)
	})

	t.Run("missing draft returns ErrNotFound", func(t *testing.T) {
		q := newTestStore(t).Queries()

		_, err := q.GetDraft("ghost")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("delete removes the draft", func(t *testing.T) {
		q := newTestStore(t).Queries()

		require.NoError(t, q.PutDraft(types.Draft{Key: types.DraftComposer, Text: "x"}))
		require.NoError(t, q.DeleteDraft(types.DraftComposer))

		_, err := q.GetDraft(types.DraftComposer)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}
