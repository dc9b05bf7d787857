package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

const loadKey = "snapshot"

var ErrNoLoader = errors.New("cache: loader is required")

type entry[T any] struct {
	value    T
	loadedAt time.Time
}

// Store holds one immutable value that is swapped atomically after each
// successful load. Concurrent loads share a single call to the loader.
type Store[T any] struct {
	current atomic.Pointer[entry[T]]
	ttl     time.Duration
	flight  singleflight.Group
	loader  func(context.Context) (T, error)
	now     func() time.Time
}

// NewStore builds a Store. A ttl <= 0 keeps a loaded value until Refresh.
func NewStore[T any](ttl time.Duration, loader func(context.Context) (T, error)) *Store[T] {
	return &Store[T]{
		ttl:    ttl,
		loader: loader,
		now:    time.Now,
	}
}

// Peek returns the current value without loading.
func (s *Store[T]) Peek() (T, time.Time, bool) {
	e := s.current.Load()
	if e == nil {
		var zero T
		return zero, time.Time{}, false
	}
	return e.value, e.loadedAt, true
}

// Get returns the current value, loading it when absent or expired. When a
// reload fails and an older value exists, the older value is returned along
// with the load error.
func (s *Store[T]) Get(ctx context.Context) (T, error) {
	if e := s.current.Load(); e != nil && !s.expired(e) {
		return e.value, nil
	}
	return s.Refresh(ctx)
}

// Refresh forces a load. The previous value is kept when the load fails.
func (s *Store[T]) Refresh(ctx context.Context) (T, error) {
	if s.loader == nil {
		var zero T
		return zero, ErrNoLoader
	}

	ch := s.flight.DoChan(loadKey, func() (any, error) {
		value, err := s.loader(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		e := &entry[T]{value: value, loadedAt: s.now()}
		s.current.Store(e)
		return e, nil
	})

	select {
	case <-ctx.Done():
		return s.fallback(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return s.fallback(res.Err)
		}
		return res.Val.(*entry[T]).value, nil
	}
}

func (s *Store[T]) fallback(err error) (T, error) {
	if e := s.current.Load(); e != nil {
		return e.value, err
	}
	var zero T
	return zero, err
}

func (s *Store[T]) expired(e *entry[T]) bool {
	if s.ttl <= 0 {
		return false
	}
	return !e.loadedAt.Add(s.ttl).After(s.now())
}
