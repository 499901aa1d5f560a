package settings

import (
	"context"
	"fmt"
	"sync"
)

// Repository persists settings. Load returns the zero Settings when nothing
// has been saved yet.
type Repository interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

type subscriber struct {
	id int
	fn func(Settings)
}

// Store holds the current settings and notifies subscribers of changes.
// It is safe for concurrent use.
type Store struct {
	repo Repository

	mu      sync.RWMutex
	current Settings
	subs    []subscriber
	nextID  int

	// serializes Set so persistence and notification keep the same order
	writeMu sync.Mutex
}

// NewStore loads persisted settings from repo and fills in defaults. A nil
// repo keeps settings in memory only.
func NewStore(ctx context.Context, repo Repository) (*Store, error) {
	s := &Store{repo: repo, current: Defaults()}
	if repo == nil {
		return s, nil
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	s.current = ApplyDefaults(loaded)
	return s, nil
}

// Get returns a copy of the current settings
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Set validates next, persists it and notifies subscribers in subscription
// order. Empty fields take their defaults. Nothing changes on error.
func (s *Store) Set(ctx context.Context, next Settings) error {
	if err := next.Validate(); err != nil {
		return err
	}
	next = ApplyDefaults(next)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.repo != nil {
		if err := s.repo.Save(ctx, next); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}

	s.mu.Lock()
	s.current = next
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
	return nil
}

// Update applies fn to a copy of the current settings and stores the result
func (s *Store) Update(ctx context.Context, fn func(*Settings) error) error {
	next := s.Get()
	if err := fn(&next); err != nil {
		return err
	}
	return s.Set(ctx, next)
}

// Reset restores the defaults
func (s *Store) Reset(ctx context.Context) error {
	return s.Set(ctx, Defaults())
}

// Subscribe registers fn to be called after every successful Set. The
// returned func removes the subscription; calling it twice is a no-op.
func (s *Store) Subscribe(fn func(Settings)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}
