package remote

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"driftsort/internal/logging"
)

const (
	defaultRetryAttempts   = 3
	defaultRetryBaseDelay  = 1 * time.Second
	defaultRetryMaxDelay   = 10 * time.Second
	defaultRetryMultiplier = 1.5
	defaultCacheTTL        = 5 * time.Minute
)

// Policy controls the accessor's retry behavior and cache lifetime.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
	CacheTTL    time.Duration
}

// DefaultPolicy returns the documented retry defaults.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: defaultRetryAttempts,
		BaseDelay:   defaultRetryBaseDelay,
		MaxDelay:    defaultRetryMaxDelay,
		Multiplier:  defaultRetryMultiplier,
		CacheTTL:    defaultCacheTTL,
	}
}

func (p Policy) withDefaults() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultRetryAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = defaultRetryBaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = defaultRetryMaxDelay
	}
	if p.Multiplier <= 1 {
		p.Multiplier = defaultRetryMultiplier
	}
	if p.CacheTTL <= 0 {
		p.CacheTTL = defaultCacheTTL
	}
	return p
}

type cachedFolder struct {
	file      File
	fetchedAt time.Time
}

// Accessor wraps a Store with bounded retry on transient failures and a TTL
// cache of folder metadata. One accessor serves one scan; it is not safe for
// concurrent use.
type Accessor struct {
	store  Store
	policy Policy
	logger *slog.Logger

	sleeper func(time.Duration)
	now     func() time.Time
	folders map[string]cachedFolder
}

// Option customizes an Accessor.
type Option func(*Accessor)

// WithSleeper overrides how retry sleeps are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(a *Accessor) {
		if sleeper != nil {
			a.sleeper = sleeper
		}
	}
}

// WithClock overrides the time source used for cache expiry (useful for
// tests).
func WithClock(now func() time.Time) Option {
	return func(a *Accessor) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAccessor builds an accessor over store with the given policy.
func NewAccessor(store Store, policy Policy, logger *slog.Logger, opts ...Option) *Accessor {
	a := &Accessor{
		store:   store,
		policy:  policy.withDefaults(),
		logger:  logging.NewComponentLogger(logger, "remote"),
		sleeper: time.Sleep,
		now:     time.Now,
		folders: make(map[string]cachedFolder),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ListChildren lists one page of folderID's children, retrying transient
// failures per the policy.
func (a *Accessor) ListChildren(ctx context.Context, folderID, pageToken string) (Page, error) {
	var page Page
	err := a.call(ctx, "list children", func() error {
		var callErr error
		page, callErr = a.store.ListChildren(ctx, folderID, pageToken)
		return callErr
	})
	if err != nil {
		return Page{}, err
	}
	return page, nil
}

// Folder returns folder metadata by identifier, serving repeated lookups
// from the cache until the entry's TTL lapses.
func (a *Accessor) Folder(ctx context.Context, id string) (File, error) {
	if entry, ok := a.folders[id]; ok {
		if a.now().Sub(entry.fetchedAt) < a.policy.CacheTTL {
			return entry.file, nil
		}
		delete(a.folders, id)
	}

	var file File
	err := a.call(ctx, "get metadata", func() error {
		var callErr error
		file, callErr = a.store.GetMetadata(ctx, id)
		return callErr
	})
	if err != nil {
		return File{}, err
	}
	if file.IsFolder() {
		a.folders[id] = cachedFolder{file: file, fetchedAt: a.now()}
	}
	return file, nil
}

// call runs op with bounded exponential-backoff retry. Only transient status
// codes are retried; anything else, and retry exhaustion, propagate.
func (a *Accessor) call(ctx context.Context, op string, fn func() error) error {
	attempts := a.policy.MaxAttempts
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsTransient(err) {
			return err
		}
		lastErr = err
		if attempt == attempts {
			break
		}
		delay := a.backoffDelay(attempt)
		a.logger.Debug("transient remote failure, retrying",
			logging.String(logging.FieldEventType, "remote_retry"),
			logging.String("op", op),
			logging.Int("attempt", attempt),
			logging.Duration("delay", delay),
			logging.Error(err))
		if err := a.sleep(ctx, delay); err != nil {
			return err
		}
	}

	return fmt.Errorf("%s: failed after %d attempts: %w", op, attempts, lastErr)
}

func (a *Accessor) backoffDelay(attempt int) time.Duration {
	delay := a.policy.BaseDelay
	for i := 1; i < attempt; i++ {
		delay = time.Duration(float64(delay) * a.policy.Multiplier)
		if delay >= a.policy.MaxDelay {
			return a.policy.MaxDelay
		}
	}
	if delay > a.policy.MaxDelay {
		return a.policy.MaxDelay
	}
	return delay
}

func (a *Accessor) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	a.sleeper(delay)
	return nil
}
