package haven

import (
	"strings"
	"sync"
)

// NameCache maps lowercase usernames to display names. It is refreshed
// from the users table only when RefreshNames is called; callers that
// rename a user must refresh afterwards, reads never refresh implicitly.
type NameCache struct {
	mu    sync.RWMutex
	names map[string]string
}

func newNameCache() *NameCache {
	return &NameCache{names: make(map[string]string)}
}

// DisplayName returns the display name for username, or the username
// itself when unknown.
func (c *NameCache) DisplayName(username string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.names[strings.ToLower(username)]; ok {
		return name
	}
	return username
}

func (c *NameCache) replace(next map[string]string) {
	c.mu.Lock()
	c.names = next
	c.mu.Unlock()
}

// RefreshNames reloads the display-name cache from the users table.
func (s *Service) RefreshNames() error {
	users, err := s.store.Queries().AllUsers()
	if err != nil {
		return err
	}
	next := make(map[string]string, len(users))
	for _, u := range users {
		name := u.Name
		if name == "" {
			name = u.ID
		}
		next[strings.ToLower(u.ID)] = name
	}
	s.names.replace(next)
	return nil
}
