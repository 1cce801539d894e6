package haven

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itskylebrooks/haven/pkg/types"
)

// newTestService opens a seeded service over a fresh temporary data
// directory, closed automatically when the test finishes.
func newTestService(t *testing.T) *Service {
	t.Helper()

	svc, err := Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

// traceByAuthor returns the first trace in the state authored by the given
// username.
func traceByAuthor(t *testing.T, state *FeedState, author string) FeedTrace {
	t.Helper()

	for _, tr := range state.Traces {
		if tr.Author == author {
			return tr
		}
	}
	t.Fatalf("no trace by %s in state", author)
	return FeedTrace{}
}

func TestOpen(t *testing.T) {
	t.Run("defaults the current user", func(t *testing.T) {
		svc := newTestService(t)

		user, err := svc.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, types.DefaultCurrentUser, user)
	})

	t.Run("honors the configured current user on first run", func(t *testing.T) {
		svc, err := Open(types.Config{DataDir: t.TempDir(), CurrentUser: "lena"})
		require.NoError(t, err)
		defer svc.Close()

		user, err := svc.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, "lena", user)
	})

	t.Run("an existing setting wins over the config on reopen", func(t *testing.T) {
		dataDir := t.TempDir()

		svc, err := Open(types.Config{DataDir: dataDir})
		require.NoError(t, err)
		require.NoError(t, svc.SetSetting(types.SettingCurrentUser, "milo"))
		require.NoError(t, svc.Close())

		svc2, err := Open(types.Config{DataDir: dataDir, CurrentUser: "lena"})
		require.NoError(t, err)
		defer svc2.Close()

		user, err := svc2.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, "milo", user)
	})
}

func TestStateFor(t *testing.T) {
	svc := newTestService(t)

	state, err := svc.StateFor("itskylebrooks")
	require.NoError(t, err)

	t.Run("includes every trace newest first", func(t *testing.T) {
		require.Len(t, state.Traces, 7)
		for i := 1; i < len(state.Traces); i++ {
			assert.GreaterOrEqual(t, state.Traces[i-1].CreatedAt, state.Traces[i].CreatedAt)
		}
	})

	t.Run("marks resonated traces", func(t *testing.T) {
		assert.True(t, traceByAuthor(t, state, "lena").Resonates)
		assert.True(t, traceByAuthor(t, state, "milo").Resonates)
		assert.False(t, traceByAuthor(t, state, "eli").Resonates)
	})

	t.Run("attaches reflections with display names", func(t *testing.T) {
		lena := traceByAuthor(t, state, "lena")
		require.Len(t, lena.Reflections, 1)
		assert.Equal(t, "Ava", lena.Reflections[0].Author)
	})

	t.Run("resolves author display names", func(t *testing.T) {
		kyle := traceByAuthor(t, state, "itskylebrooks")
		assert.Equal(t, "Kyle Brooks", kyle.AuthorName)
	})

	t.Run("includes connection and subscription maps", func(t *testing.T) {
		assert.True(t, state.Connections["lena"])
		assert.True(t, state.Connections["milo"])
		assert.False(t, state.Connections["ava"])

		assert.True(t, state.Incoming["lena"])
		assert.True(t, state.Incoming["milo"])

		assert.True(t, state.Subscriptions["lena"])
		assert.True(t, state.Subscriptions["milo"])
		assert.True(t, state.Subscriptions["ava"])
		assert.False(t, state.Subscriptions["noah"])
	})
}

func TestAddTrace(t *testing.T) {
	t.Run("new trace shows up at the top of the feed", func(t *testing.T) {
		svc := newTestService(t)
		now := time.Now().UnixMilli()

		id := NewID()
		require.NoError(t, svc.AddTrace("lena", "fresh post", types.KindSignal, now, id, ""))

		state, err := svc.StateFor("lena")
		require.NoError(t, err)
		assert.Equal(t, id, state.Traces[0].ID)
		assert.Equal(t, "fresh post", state.Traces[0].Text)
	})

	t.Run("delete removes it again", func(t *testing.T) {
		svc := newTestService(t)

		id := NewID()
		require.NoError(t, svc.AddTrace("lena", "ephemeral", types.KindCircle, 1, id, ""))
		require.NoError(t, svc.DeleteTrace(id))

		state, err := svc.StateFor("lena")
		require.NoError(t, err)
		for _, tr := range state.Traces {
			assert.NotEqual(t, id, tr.ID)
		}
	})
}

func TestToggleResonate(t *testing.T) {
	t.Run("toggling twice returns to the original state", func(t *testing.T) {
		svc := newTestService(t)

		id := NewID()
		require.NoError(t, svc.AddTrace("lena", "togglable", types.KindSignal, 1, id, ""))

		on, err := svc.ToggleResonate(id, "itskylebrooks")
		require.NoError(t, err)
		assert.True(t, on)

		on, err = svc.ToggleResonate(id, "itskylebrooks")
		require.NoError(t, err)
		assert.False(t, on)

		on, err = svc.ToggleResonate(id, "itskylebrooks")
		require.NoError(t, err)
		assert.True(t, on)
	})

	t.Run("toggles are scoped per user", func(t *testing.T) {
		svc := newTestService(t)

		id := NewID()
		require.NoError(t, svc.AddTrace("lena", "popular", types.KindSignal, 1, id, ""))

		_, err := svc.ToggleResonate(id, "ava")
		require.NoError(t, err)
		_, err = svc.ToggleResonate(id, "eli")
		require.NoError(t, err)

		off, err := svc.ToggleResonate(id, "ava")
		require.NoError(t, err)
		assert.False(t, off)

		state, err := svc.StateFor("eli")
		require.NoError(t, err)
		found := false
		for _, tr := range state.Traces {
			if tr.ID == id {
				found = tr.Resonates
			}
		}
		assert.True(t, found, "eli's resonate should survive ava's un-toggle")
	})
}

func TestReflections(t *testing.T) {
	t.Run("reflections land on their trace in posting order", func(t *testing.T) {
		svc := newTestService(t)

		traceID := NewID()
		require.NoError(t, svc.AddTrace("lena", "discuss", types.KindCircle, 1, traceID, ""))
		require.NoError(t, svc.AddReflection(traceID, "ava", "first", 10, NewID()))
		require.NoError(t, svc.AddReflection(traceID, "eli", "second", 20, NewID()))

		state, err := svc.StateFor("lena")
		require.NoError(t, err)
		for _, tr := range state.Traces {
			if tr.ID != traceID {
				continue
			}
			require.Len(t, tr.Reflections, 2)
			assert.Equal(t, "first", tr.Reflections[0].Text)
			assert.Equal(t, "second", tr.Reflections[1].Text)
			return
		}
		t.Fatal("trace not found in state")
	})
}

func TestDrafts(t *testing.T) {
	t.Run("save then load round-trips", func(t *testing.T) {
		svc := newTestService(t)

		require.NoError(t, svc.SaveDraft(types.DraftComposer, "half a thought", types.KindCircle))

		d, err := svc.LoadDraft(types.DraftComposer)
		require.NoError(t, err)
		assert.Equal(t, "half a thought", d.Text)
		assert.Equal(t, types.KindCircle, d.Kind)
		assert.Positive(t, d.UpdatedAt)
	})

	t.Run("missing draft returns ErrNotFound", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.LoadDraft("ghost")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}
