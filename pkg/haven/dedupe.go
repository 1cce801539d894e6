package haven

import (
	"strings"

	"github.com/itskylebrooks/haven/internal/store"
)

// DedupeTraces removes duplicate traces sharing (author, kind, trimmed
// text), keeping the newest of each group and cascading the deletion to
// the duplicates' reflections and resonates. Returns the number of traces
// removed. Fresh stores never contain duplicates; this exists to repair
// databases written by seeders that used random ids.
func (s *Service) DedupeTraces() (int, error) {
	removed := 0
	err := s.store.WithTx(func(q store.Queries) error {
		traces, err := q.AllTracesDesc()
		if err != nil {
			return err
		}

		// Traces arrive newest first, so the first trace seen per key is
		// the keeper.
		seen := make(map[string]bool, len(traces))
		for _, t := range traces {
			key := t.Author + "|" + t.Kind + "|" + strings.TrimSpace(t.Text)
			if !seen[key] {
				seen[key] = true
				continue
			}
			if err := q.DeleteReflectionsForTrace(t.ID); err != nil {
				return err
			}
			if err := q.DeleteResonatesForTrace(t.ID); err != nil {
				return err
			}
			if err := q.DeleteTrace(t.ID); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
