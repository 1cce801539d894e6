// First-run demo data seeding.
//
// Seeding is guarded twice: a fast-path check on the "seeded" setting, and
// a lock acquired by add-inserting the "seeding" key inside the seed
// transaction. A concurrent initializer that loses the insert race stands
// down without retrying. Seed trace and reflection ids are derived from
// their content, so a partially observed rerun upserts the same rows
// instead of duplicating them.
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/itskylebrooks/haven/pkg/types"
)

// Millisecond offsets used by the seed roster.
const (
	minuteMs int64 = 60 * 1000
	hourMs   int64 = 60 * minuteMs
)

// seedReflection is a demo comment attached to a seed trace.
type seedReflection struct {
	author string
	text   string
	offset int64 // subtracted from now to get created_at
}

// seedTrace is a demo post with its recorded time offset from now.
type seedTrace struct {
	author      string
	text        string
	kind        string
	offset      int64
	reflections []seedReflection
}

// seedEdge is a directed demo edge with its time offset.
type seedEdge struct {
	from   string
	to     string
	offset int64
}

// seedResonate maps a user onto the author whose newest trace they like.
type seedResonate struct {
	who      string
	onAuthor string
}

var seedUsers = []types.User{
	{ID: "itskylebrooks", Name: "Kyle Brooks", Handle: "@itskylebrooks", Bio: "learning to slow down", Visibility: types.VisibilityPublic},
	{ID: "lena", Name: "Lena", Handle: "@lena", Bio: "photographer of quiet things", Visibility: types.VisibilityPublic},
	{ID: "milo", Name: "Milo", Handle: "@milo", Bio: "designer of invisible systems", Visibility: types.VisibilityPublic},
	{ID: "ava", Name: "Ava", Handle: "@ava", Bio: "writer and listener", Visibility: types.VisibilityPublic},
	{ID: "eli", Name: "Eli", Handle: "@eli", Bio: "sound engineer of silent rooms", Visibility: types.VisibilityPublic},
	{ID: "noah", Name: "Noah", Handle: "@noah", Bio: "curating small, steady communities", Visibility: types.VisibilityPublic},
}

var seedTraces = []seedTrace{
	{
		author: "lena",
		text:   "Stillness teaches what noise hides.",
		kind:   types.KindCircle,
		offset: 2 * hourMs,
		reflections: []seedReflection{
			{author: "ava", text: "Saving this line for when the city gets loud.", offset: 90 * minuteMs},
		},
	},
	{
		author: "milo",
		text:   "Design is how silence looks when it's visual.",
		kind:   types.KindSignal,
		offset: 5 * hourMs,
	},
	{
		author: "ava",
		text:   "Every morning is a soft reset.",
		kind:   types.KindCircle,
		offset: 8 * hourMs,
	},
	{
		author: "eli",
		text:   "Silence is a tool, not a void.",
		kind:   types.KindSignal,
		offset: 24 * hourMs,
	},
	{
		author: "noah",
		text:   "Small conversations are where meaning hides.",
		kind:   types.KindCircle,
		offset: 48 * hourMs,
	},
	{
		author: "itskylebrooks",
		text:   "Pausing to notice who I miss.",
		kind:   types.KindCircle,
		offset: 3 * hourMs,
	},
	{
		author: "itskylebrooks",
		text:   "Letting signals be invitations, not interruptions.",
		kind:   types.KindSignal,
		offset: 12 * hourMs,
	},
}

// seedConnections holds both directions of each demo friendship.
var seedConnections = []seedEdge{
	{from: "itskylebrooks", to: "lena", offset: 1 * hourMs},
	{from: "lena", to: "itskylebrooks", offset: 1 * hourMs},
	{from: "itskylebrooks", to: "milo", offset: 2 * hourMs},
	{from: "milo", to: "itskylebrooks", offset: 2 * hourMs},
}

var seedSubscriptions = []seedEdge{
	{from: "ava", to: "itskylebrooks", offset: 30 * minuteMs},
	{from: "eli", to: "itskylebrooks", offset: 1 * hourMs},
	{from: "noah", to: "itskylebrooks", offset: 2 * hourMs},
	{from: "itskylebrooks", to: "lena", offset: 3 * hourMs},
	{from: "itskylebrooks", to: "milo", offset: 4 * hourMs},
	{from: "itskylebrooks", to: "ava", offset: 5 * hourMs},
}

// seedResonates resolves each entry to the author's most-recently-created
// trace. Entries whose author has no traces, or where who == onAuthor, are
// silently dropped.
var seedResonates = []seedResonate{
	{who: "itskylebrooks", onAuthor: "lena"},
	{who: "itskylebrooks", onAuthor: "milo"},
	{who: "ava", onAuthor: "itskylebrooks"},
	{who: "eli", onAuthor: "itskylebrooks"},
	{who: "lena", onAuthor: "ava"},
	{who: "milo", onAuthor: "milo"},
}

// SeedTraceID returns the deterministic id a seed trace is stored under.
func SeedTraceID(author, kind, text string) string {
	return ContentID(author, kind, text)
}

// Seed populates the demo roster on first run. now is the reference time in
// milliseconds; every seed timestamp is an offset from it. Seeding is a
// no-op when the store is already seeded or another initializer holds the
// seeding lock.
func (s *Store) Seed(now int64) error {
	seeded, err := s.Queries().HasSetting(types.SettingSeeded)
	if err != nil {
		return fmt.Errorf("check seeded: %w", err)
	}
	if seeded {
		return nil
	}

	return s.WithTx(func(q Queries) error {
		seeded, err := q.HasSetting(types.SettingSeeded)
		if err != nil {
			return fmt.Errorf("check seeded: %w", err)
		}
		if seeded {
			return nil
		}

		// The settings primary key elects a single initializer. Losing
		// the race means someone else is seeding; stand down.
		if err := q.AddSetting(types.SettingSeeding, uuid.NewString()); err != nil {
			if errors.Is(err, types.ErrDuplicateKey) {
				return nil
			}
			return err
		}

		for _, u := range seedUsers {
			if err := q.PutUser(u); err != nil {
				return err
			}
		}

		for _, st := range seedTraces {
			trace := types.Trace{
				ID:        SeedTraceID(st.author, st.kind, st.text),
				Author:    st.author,
				Text:      st.text,
				Kind:      st.kind,
				CreatedAt: now - st.offset,
			}
			if err := q.PutTrace(trace); err != nil {
				return err
			}
			for _, sr := range st.reflections {
				reflection := types.Reflection{
					ID:        ContentID(trace.ID, sr.author, sr.text),
					TraceID:   trace.ID,
					Author:    sr.author,
					Text:      sr.text,
					CreatedAt: now - sr.offset,
				}
				if err := q.PutReflection(reflection); err != nil {
					return err
				}
			}
		}

		for _, e := range seedConnections {
			err := q.AddConnection(types.Connection{FromUser: e.from, ToUser: e.to, CreatedAt: now - e.offset})
			if err != nil && !errors.Is(err, types.ErrDuplicateKey) {
				return err
			}
		}

		for _, e := range seedSubscriptions {
			err := q.AddSubscription(types.Subscription{Follower: e.from, Followee: e.to, CreatedAt: now - e.offset})
			if err != nil && !errors.Is(err, types.ErrDuplicateKey) {
				return err
			}
		}

		for _, sr := range seedResonates {
			if sr.who == sr.onAuthor {
				continue
			}
			target, err := q.LatestTraceByAuthor(sr.onAuthor)
			if errors.Is(err, types.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			err = q.AddResonate(types.Resonate{UserID: sr.who, TraceID: target.ID, CreatedAt: now})
			if err != nil && !errors.Is(err, types.ErrDuplicateKey) {
				return err
			}
		}

		if err := q.PutSetting(types.SettingSeeded, true); err != nil {
			return err
		}
		return q.DeleteSetting(types.SettingSeeding)
	})
}
