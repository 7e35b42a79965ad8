package chat

import (
	"time"

	"github.com/zeromicro/go-zero/core/collection"
)

const defaultSessionTTL = 30 * time.Minute

// Registry keeps live sessions keyed by id. A session expires after ttl without access.
type Registry struct {
	cache       *collection.Cache
	recommender *Recommender
	opts        []Option
}

func NewRegistry(recommender *Recommender, ttl time.Duration, opts ...Option) (*Registry, error) {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	cache, err := collection.NewCache(ttl, collection.WithName("chat-sessions"))
	if err != nil {
		return nil, err
	}
	return &Registry{
		cache:       cache,
		recommender: recommender,
		opts:        opts,
	}, nil
}

// Session returns the session for id, creating it on first use.
func (r *Registry) Session(id string) (*Session, error) {
	val, err := r.cache.Take(id, func() (any, error) {
		return NewSession(id, r.recommender, r.opts...), nil
	})
	if err != nil {
		return nil, err
	}
	s := val.(*Session)
	// refresh the idle timer
	r.cache.Set(id, s)
	return s, nil
}

func (r *Registry) Drop(id string) {
	r.cache.Del(id)
}
