package service

import (
	"context"
	"errors"
)

// StoreURLGetter looks mappings up by identifier. Get returns ErrURLNotFound
// when nothing matches.
type StoreURLGetter interface {
	Get(ctx context.Context, id string) (string, error)
}

// URLCache is an optional read-through layer in front of the store. A miss is
// reported as ok == false with a nil error.
type URLCache interface {
	Get(ctx context.Context, id string) (url string, ok bool, err error)
	Set(ctx context.Context, id, url string) error
}

// GetURLService resolves identifiers, consulting the cache first when one is set.
type GetURLService struct {
	store StoreURLGetter
	cache URLCache
}

// NewGetURLService creates a GetURLService. cache may be nil.
func NewGetURLService(store StoreURLGetter, cache URLCache) *GetURLService {
	return &GetURLService{store: store, cache: cache}
}

// GetOriginalURL returns the URL stored for id. Cache failures are ignored.
func (s *GetURLService) GetOriginalURL(ctx context.Context, id string) (string, error) {
	if s.cache != nil {
		if url, ok, err := s.cache.Get(ctx, id); err == nil && ok {
			return url, nil
		}
	}

	url, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrURLNotFound) {
			return "", ErrURLNotFound
		}
		return "", NewPersistenceError("get", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, id, url)
	}
	return url, nil
}
