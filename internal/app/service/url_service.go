// Package service holds the short identifier logic: collision-free generation,
// create-or-reuse and lookup on top of a pluggable store.
package service

import (
	"context"
	"errors"

	"github.com/aseptimu/shortlink/internal/app/utils"
)

// MaxAttempts caps the collision loop. With 64^6 possible identifiers it is
// never reached in practice.
const MaxAttempts = 1000

// Store is everything the services need from a backend.
type Store interface {
	StoreURLGetter
	StoreURLSetter
}

// StoreURLSetter persists mappings.
//
// CountByID returns how many rows carry id. Upsert inserts (id, url), or on a
// url conflict rewrites the existing row in place and returns its id; it must
// be a single atomic statement. Upsert returns ErrIDTaken if id was claimed by
// a concurrent insert.
type StoreURLSetter interface {
	CountByID(ctx context.Context, id string) (int64, error)
	Upsert(ctx context.Context, id, url string) (string, error)
}

// URLShortener is the create-or-reuse side used by the façade.
type URLShortener interface {
	ShortenURL(ctx context.Context, input string) (string, error)
}

// CollisionObserver is told about every discarded candidate.
type CollisionObserver interface {
	ObserveCollision()
}

// IDGenerator produces candidate identifiers.
type IDGenerator func() (string, error)

type URLService struct {
	store    StoreURLSetter
	generate IDGenerator
	observer CollisionObserver
}

// Option customises a URLService.
type Option func(*URLService)

// WithGenerator replaces the default nanoid generator.
func WithGenerator(g IDGenerator) Option {
	return func(s *URLService) { s.generate = g }
}

// WithCollisionObserver reports discarded candidates to o.
func WithCollisionObserver(o CollisionObserver) Option {
	return func(s *URLService) { s.observer = o }
}

func NewURLService(store StoreURLSetter, opts ...Option) *URLService {
	s := &URLService{store: store, generate: utils.NewID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ShortenURL returns the identifier stored for input, creating the mapping if
// needed. The input is accepted verbatim. Resubmitting a URL returns the
// identifier of the existing row, not the freshly generated candidate.
func (s *URLService) ShortenURL(ctx context.Context, input string) (string, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		id, err := s.generate()
		if err != nil {
			return "", NewPersistenceError("generate id", err)
		}

		count, err := s.store.CountByID(ctx, id)
		if err != nil {
			return "", NewPersistenceError("count id", err)
		}
		if count != 0 {
			s.collision()
			continue
		}

		stored, err := s.store.Upsert(ctx, id, input)
		if errors.Is(err, ErrIDTaken) {
			s.collision()
			continue
		}
		if err != nil {
			return "", NewPersistenceError("upsert", err)
		}
		return stored, nil
	}

	return "", NewPersistenceError("shorten", ErrIDSpaceExhausted)
}

func (s *URLService) collision() {
	if s.observer != nil {
		s.observer.ObserveCollision()
	}
}
