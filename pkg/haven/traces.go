package haven

import (
	"errors"
	"time"

	"github.com/itskylebrooks/haven/internal/store"
	"github.com/itskylebrooks/haven/pkg/types"
)

// AddTrace inserts one trace row. No validation happens here; non-empty
// text, length caps, and kind checks are the caller's responsibility.
func (s *Service) AddTrace(author, text, kind string, createdAt int64, id, image string) error {
	return s.store.Queries().PutTrace(types.Trace{
		ID:        id,
		Author:    author,
		Text:      text,
		Kind:      kind,
		CreatedAt: createdAt,
		Image:     image,
	})
}

// DeleteTrace removes a trace by id. Reflections and resonates pointing at
// it are left behind, matching the composer's delete semantics; DedupeTraces
// is the cascading cleanup path.
func (s *Service) DeleteTrace(id string) error {
	return s.store.Queries().DeleteTrace(id)
}

// AddReflection inserts one reflection row. The traceID is not checked for
// existence.
func (s *Service) AddReflection(traceID, author, text string, createdAt int64, id string) error {
	return s.store.Queries().PutReflection(types.Reflection{
		ID:        id,
		TraceID:   traceID,
		Author:    author,
		Text:      text,
		CreatedAt: createdAt,
	})
}

// DeleteReflection removes a reflection by id.
func (s *Service) DeleteReflection(id string) error {
	return s.store.Queries().DeleteReflection(id)
}

// ToggleResonate flips whether userID resonates traceID and returns the new
// state: true when a row was inserted, false when the existing row was
// removed. The lookup and write share one transaction, so concurrent
// toggles cannot double-insert.
func (s *Service) ToggleResonate(traceID, userID string) (bool, error) {
	var on bool
	err := s.store.WithTx(func(q store.Queries) error {
		existing, err := q.GetResonate(userID, traceID)
		if err == nil {
			on = false
			return q.DeleteResonate(existing.ID)
		}
		if !errors.Is(err, types.ErrNotFound) {
			return err
		}
		on = true
		return q.AddResonate(types.Resonate{
			UserID:    userID,
			TraceID:   traceID,
			CreatedAt: time.Now().UnixMilli(),
		})
	})
	return on, err
}
