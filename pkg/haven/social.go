package haven

import (
	"time"

	"github.com/itskylebrooks/haven/internal/store"
	"github.com/itskylebrooks/haven/pkg/types"
)

// SetConnection turns the friendship between from and to on or off. Both
// directions are written or removed together inside one transaction, so a
// failure can never leave a one-directional edge behind.
func (s *Service) SetConnection(from, to string, connected bool) error {
	now := time.Now().UnixMilli()
	return s.store.WithTx(func(q store.Queries) error {
		if !connected {
			if err := q.DeleteConnection(from, to); err != nil {
				return err
			}
			return q.DeleteConnection(to, from)
		}
		for _, pair := range [2][2]string{{from, to}, {to, from}} {
			has, err := q.HasConnection(pair[0], pair[1])
			if err != nil {
				return err
			}
			if has {
				continue
			}
			if err := q.AddConnection(types.Connection{FromUser: pair[0], ToUser: pair[1], CreatedAt: now}); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetSubscription turns the one-way follow edge on or off, transactionally.
func (s *Service) SetSubscription(follower, followee string, subscribed bool) error {
	now := time.Now().UnixMilli()
	return s.store.WithTx(func(q store.Queries) error {
		if !subscribed {
			return q.DeleteSubscription(follower, followee)
		}
		has, err := q.HasSubscription(follower, followee)
		if err != nil || has {
			return err
		}
		return q.AddSubscription(types.Subscription{Follower: follower, Followee: followee, CreatedAt: now})
	})
}

// ListFriends returns the users the given username holds an outgoing
// connection to.
func (s *Service) ListFriends(username string) ([]types.Person, error) {
	q := s.store.Queries()
	conns, err := q.ConnectionsFrom(username)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(conns))
	for _, c := range conns {
		ids = append(ids, c.ToUser)
	}
	return s.people(ids)
}

// ListFollowers returns the users subscribed to the given username.
func (s *Service) ListFollowers(username string) ([]types.Person, error) {
	subs, err := s.store.Queries().SubscriptionsByFollowee(username)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.Follower)
	}
	return s.people(ids)
}

// ListFollowing returns the users the given username subscribes to.
func (s *Service) ListFollowing(username string) ([]types.Person, error) {
	subs, err := s.store.Queries().SubscriptionsByFollower(username)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.Followee)
	}
	return s.people(ids)
}

// people joins usernames against the users table into person summaries.
func (s *Service) people(ids []string) ([]types.Person, error) {
	users, err := s.store.Queries().UsersByIDs(ids)
	if err != nil {
		return nil, err
	}
	people := make([]types.Person, 0, len(users))
	for _, u := range users {
		people = append(people, types.Person{ID: u.ID, Name: u.Name, Handle: u.Handle})
	}
	return people, nil
}

// RemoveFriend deletes both directions of the friendship, transactionally.
func (s *Service) RemoveFriend(from, to string) error {
	return s.store.WithTx(func(q store.Queries) error {
		if err := q.DeleteConnection(from, to); err != nil {
			return err
		}
		return q.DeleteConnection(to, from)
	})
}

// RemoveFollower deletes the single follower -> followee edge.
func (s *Service) RemoveFollower(follower, followee string) error {
	return s.store.Queries().DeleteSubscription(follower, followee)
}
