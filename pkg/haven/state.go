package haven

import (
	"sort"
	"strings"

	"github.com/itskylebrooks/haven/pkg/types"
)

// FeedReflection is a reflection with its author resolved to a display
// name.
type FeedReflection struct {
	ID        string
	Author    string
	Text      string
	CreatedAt int64
}

// FeedTrace is a trace annotated for one viewing user.
type FeedTrace struct {
	types.Trace
	AuthorName  string
	Resonates   bool // whether the viewing user resonates this trace
	Reflections []FeedReflection
}

// FeedState is the aggregate per-user snapshot consumed by the UI layer.
// The map keys are lowercase usernames.
type FeedState struct {
	Traces        []FeedTrace
	Connections   map[string]bool // outgoing friend edges
	Incoming      map[string]bool // incoming friend edges
	Subscriptions map[string]bool // outgoing follow edges
}

// StateFor aggregates every trace (newest first) with the given user's
// resonate flags and each trace's reflections sorted oldest first, plus the
// user's connection and subscription presence maps. Read-only and safe to
// call repeatedly; nothing is cached across calls.
func (s *Service) StateFor(userID string) (*FeedState, error) {
	q := s.store.Queries()

	traces, err := q.AllTracesDesc()
	if err != nil {
		return nil, err
	}
	resonates, err := q.ResonatesByUser(userID)
	if err != nil {
		return nil, err
	}
	reflections, err := q.AllReflections()
	if err != nil {
		return nil, err
	}
	outgoing, err := q.ConnectionsFrom(userID)
	if err != nil {
		return nil, err
	}
	incoming, err := q.ConnectionsTo(userID)
	if err != nil {
		return nil, err
	}
	follows, err := q.SubscriptionsByFollower(userID)
	if err != nil {
		return nil, err
	}

	resonated := make(map[string]bool, len(resonates))
	for _, r := range resonates {
		resonated[r.TraceID] = true
	}

	byTrace := make(map[string][]FeedReflection)
	for _, r := range reflections {
		byTrace[r.TraceID] = append(byTrace[r.TraceID], FeedReflection{
			ID:        r.ID,
			Author:    s.names.DisplayName(r.Author),
			Text:      r.Text,
			CreatedAt: r.CreatedAt,
		})
	}
	for _, list := range byTrace {
		sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt < list[j].CreatedAt })
	}

	state := &FeedState{
		Traces:        make([]FeedTrace, 0, len(traces)),
		Connections:   make(map[string]bool, len(outgoing)),
		Incoming:      make(map[string]bool, len(incoming)),
		Subscriptions: make(map[string]bool, len(follows)),
	}
	for _, t := range traces {
		state.Traces = append(state.Traces, FeedTrace{
			Trace:       t,
			AuthorName:  s.names.DisplayName(t.Author),
			Resonates:   resonated[t.ID],
			Reflections: byTrace[t.ID],
		})
	}
	for _, c := range outgoing {
		state.Connections[strings.ToLower(c.ToUser)] = true
	}
	for _, c := range incoming {
		state.Incoming[strings.ToLower(c.FromUser)] = true
	}
	for _, f := range follows {
		state.Subscriptions[strings.ToLower(f.Followee)] = true
	}
	return state, nil
}
