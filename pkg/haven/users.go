package haven

import (
	"errors"
	"fmt"

	"github.com/itskylebrooks/haven/internal/store"
	"github.com/itskylebrooks/haven/pkg/types"
)

// GetUser returns the user row for username, or types.ErrUserNotFound.
func (s *Service) GetUser(username string) (*types.User, error) {
	u, err := s.store.Queries().GetUser(username)
	if errors.Is(err, types.ErrNotFound) {
		return nil, types.ErrUserNotFound
	}
	return u, err
}

// ChangeUsername renames a user and cascades the new name through every
// table that references the old one: traces, reflections, resonates,
// connections and subscriptions on either endpoint, and the currentUser
// setting. The whole cascade runs in one transaction.
//
// Fails with types.ErrUsernameExists when newUsername is taken and
// types.ErrUserNotFound when oldUsername does not exist. The caller must
// invoke RefreshNames afterwards; the display-name cache is not refreshed
// here.
func (s *Service) ChangeUsername(oldUsername, newUsername string) error {
	return s.store.WithTx(func(q store.Queries) error {
		if _, err := q.GetUser(newUsername); err == nil {
			return types.ErrUsernameExists
		} else if !errors.Is(err, types.ErrNotFound) {
			return err
		}

		user, err := q.GetUser(oldUsername)
		if errors.Is(err, types.ErrNotFound) {
			return types.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if err := q.DeleteUser(oldUsername); err != nil {
			return err
		}
		user.ID = newUsername
		user.Handle = "@" + newUsername
		if err := q.PutUser(*user); err != nil {
			return err
		}

		if err := q.RenameTraceAuthor(oldUsername, newUsername); err != nil {
			return err
		}
		if err := q.RenameReflectionAuthor(oldUsername, newUsername); err != nil {
			return err
		}
		if err := q.RenameResonateUser(oldUsername, newUsername); err != nil {
			return err
		}
		if err := q.RenameConnectionUser(oldUsername, newUsername); err != nil {
			return err
		}
		if err := q.RenameSubscriptionUser(oldUsername, newUsername); err != nil {
			return err
		}

		var current string
		err = q.GetSetting(types.SettingCurrentUser, &current)
		if err != nil && !errors.Is(err, types.ErrNotFound) {
			return err
		}
		if current == oldUsername {
			if err := q.PutSetting(types.SettingCurrentUser, newUsername); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateProfile applies a partial update to the user row. Nil fields in
// the update are left untouched. Fails with types.ErrUserNotFound when the
// user does not exist.
func (s *Service) UpdateProfile(username string, update types.ProfileUpdate) error {
	return s.store.WithTx(func(q store.Queries) error {
		user, err := q.GetUser(username)
		if errors.Is(err, types.ErrNotFound) {
			return types.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if update.Name != nil {
			user.Name = *update.Name
		}
		if update.Bio != nil {
			user.Bio = *update.Bio
		}
		if update.Avatar != nil {
			user.Avatar = *update.Avatar
		}
		if err := q.PutUser(*user); err != nil {
			return fmt.Errorf("update profile %s: %w", username, err)
		}
		return nil
	})
}
