// Package haven is the data-access layer of the Haven social feed. A
// Service composes embedded-store operations into application-level reads
// and writes; it is the entire external contract of the core.
package haven

import (
	"fmt"
	"time"

	"github.com/itskylebrooks/haven/internal/store"
	"github.com/itskylebrooks/haven/pkg/types"
)

// Service exposes Haven's application operations over one open store.
// Reads recompute from the store on every call; the only cross-call state
// is the author display-name cache, which the caller refreshes explicitly
// after a rename.
type Service struct {
	store *store.Store
	names *NameCache
}

// Open opens (creating if necessary) the store described by config, seeds
// the demo roster on first run, ensures a currentUser setting exists, and
// loads the author-name cache.
func Open(config types.Config) (*Service, error) {
	st, err := store.Open(config)
	if err != nil {
		return nil, err
	}

	s := &Service{store: st, names: newNameCache()}

	if err := st.Seed(time.Now().UnixMilli()); err != nil {
		st.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	if err := s.ensureCurrentUser(config.CurrentUser); err != nil {
		st.Close()
		return nil, err
	}

	if err := s.RefreshNames(); err != nil {
		st.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying store. Idempotent.
func (s *Service) Close() error {
	return s.store.Close()
}

// NewID returns a fresh 12-character identifier for a trace or reflection.
func NewID() string {
	return store.NewID()
}

// CurrentUser returns the username stored under the currentUser setting.
func (s *Service) CurrentUser() (string, error) {
	var user string
	if err := s.store.Queries().GetSetting(types.SettingCurrentUser, &user); err != nil {
		return "", err
	}
	return user, nil
}

// ensureCurrentUser writes the currentUser setting when absent, preferring
// the configured value over the demo default.
func (s *Service) ensureCurrentUser(configured string) error {
	q := s.store.Queries()
	has, err := q.HasSetting(types.SettingCurrentUser)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	user := configured
	if user == "" {
		user = types.DefaultCurrentUser
	}
	return q.PutSetting(types.SettingCurrentUser, user)
}
