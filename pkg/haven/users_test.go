package haven

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itskylebrooks/haven/pkg/types"
)

func TestChangeUsername(t *testing.T) {
	t.Run("moves the account and every reference", func(t *testing.T) {
		svc := newTestService(t)

		require.NoError(t, svc.ChangeUsername("itskylebrooks", "kyle"))
		require.NoError(t, svc.RefreshNames())

		_, err := svc.GetUser("itskylebrooks")
		assert.ErrorIs(t, err, types.ErrUserNotFound)

		u, err := svc.GetUser("kyle")
		require.NoError(t, err)
		assert.Equal(t, "@kyle", u.Handle)
		assert.Equal(t, "Kyle Brooks", u.Name)

		state, err := svc.StateFor("kyle")
		require.NoError(t, err)

		authored := 0
		for _, tr := range state.Traces {
			assert.NotEqual(t, "itskylebrooks", tr.Author)
			if tr.Author == "kyle" {
				authored++
				assert.Equal(t, "Kyle Brooks", tr.AuthorName)
			}
		}
		assert.Equal(t, 2, authored)

		// Friendships, follows, and resonates survive under the new name.
		assert.True(t, state.Connections["lena"])
		assert.True(t, state.Connections["milo"])
		assert.True(t, state.Subscriptions["ava"])
		assert.True(t, traceByAuthor(t, state, "lena").Resonates)

		followers, err := svc.ListFollowers("kyle")
		require.NoError(t, err)
		assert.Len(t, followers, 3)
	})

	t.Run("updates the current user setting", func(t *testing.T) {
		svc := newTestService(t)

		require.NoError(t, svc.ChangeUsername("itskylebrooks", "kyle"))

		user, err := svc.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, "kyle", user)
	})

	t.Run("leaves the current user alone when renaming someone else", func(t *testing.T) {
		svc := newTestService(t)

		require.NoError(t, svc.ChangeUsername("lena", "helena"))

		user, err := svc.CurrentUser()
		require.NoError(t, err)
		assert.Equal(t, "itskylebrooks", user)
	})

	t.Run("fails when the new name is taken", func(t *testing.T) {
		svc := newTestService(t)

		err := svc.ChangeUsername("lena", "milo")
		assert.ErrorIs(t, err, types.ErrUsernameExists)

		// Nothing changed.
		_, err = svc.GetUser("lena")
		assert.NoError(t, err)
	})

	t.Run("fails when the old name does not exist", func(t *testing.T) {
		svc := newTestService(t)

		err := svc.ChangeUsername("ghost", "phantom")
		assert.ErrorIs(t, err, types.ErrUserNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("applies only the provided fields", func(t *testing.T) {
		svc := newTestService(t)

		require.NoError(t, svc.UpdateProfile("lena", types.ProfileUpdate{Bio: strPtr("new bio")}))

		u, err := svc.GetUser("lena")
		require.NoError(t, err)
		assert.Equal(t, "new bio", u.Bio)
		assert.Equal(t, "Lena", u.Name, "name should be untouched")
	})

	t.Run("can clear a field with an empty string", func(t *testing.T) {
		svc := newTestService(t)

		require.NoError(t, svc.UpdateProfile("lena", types.ProfileUpdate{Bio: strPtr("")}))

		u, err := svc.GetUser("lena")
		require.NoError(t, err)
		assert.Empty(t, u.Bio)
	})

	t.Run("fails for an unknown user", func(t *testing.T) {
		svc := newTestService(t)

		err := svc.UpdateProfile("ghost", types.ProfileUpdate{Name: strPtr("Ghost")})
		assert.ErrorIs(t, err, types.ErrUserNotFound)
	})
}

func TestRefreshNames(t *testing.T) {
	t.Run("picks up display name changes only on refresh", func(t *testing.T) {
		svc := newTestService(t)
		strPtr := func(s string) *string { return &s }

		require.NoError(t, svc.UpdateProfile("lena", types.ProfileUpdate{Name: strPtr("Helena")}))

		state, err := svc.StateFor("itskylebrooks")
		require.NoError(t, err)
		assert.Equal(t, "Lena", traceByAuthor(t, state, "lena").AuthorName, "stale cache until refresh")

		require.NoError(t, svc.RefreshNames())

		state, err = svc.StateFor("itskylebrooks")
		require.NoError(t, err)
		assert.Equal(t, "Helena", traceByAuthor(t, state, "lena").AuthorName)
	})

	t.Run("falls back to the username for unknown authors", func(t *testing.T) {
		svc := newTestService(t)

		id := NewID()
		require.NoError(t, svc.AddTrace("stranger", "hello", types.KindSignal, 1, id, ""))

		state, err := svc.StateFor("itskylebrooks")
		require.NoError(t, err)
		assert.Equal(t, "stranger", traceByAuthor(t, state, "stranger").AuthorName)
	})
}
