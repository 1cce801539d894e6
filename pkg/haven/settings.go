package haven

import (
	"time"

	"github.com/itskylebrooks/haven/pkg/types"
)

// SetSetting stores value as JSON under key.
func (s *Service) SetSetting(key string, value any) error {
	return s.store.Queries().PutSetting(key, value)
}

// GetSetting unmarshals the setting stored under key into out. Returns
// types.ErrNotFound when the key is absent.
func (s *Service) GetSetting(key string, out any) error {
	return s.store.Queries().GetSetting(key, out)
}

// SaveDraft overwrites the composition draft stored under key.
func (s *Service) SaveDraft(key, text, kind string) error {
	return s.store.Queries().PutDraft(types.Draft{
		Key:       key,
		Text:      text,
		Kind:      kind,
		UpdatedAt: time.Now().UnixMilli(),
	})
}

// LoadDraft returns the draft stored under key, or types.ErrNotFound.
func (s *Service) LoadDraft(key string) (*types.Draft, error) {
	return s.store.Queries().GetDraft(key)
}
