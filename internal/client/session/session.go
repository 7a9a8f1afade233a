// Package session holds the in-memory view of the signed-in user.
//
// A Session combines the credential store (is there a token?) with a cached
// user profile (who does the token belong to?). It is the only writer of
// that state: loads, logins and invalidations are serialized through its
// lock, concurrent loads share one in-flight fetch, and fetches that were
// overtaken by a newer load or by an invalidation are discarded.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/blogclient/internal/client/credentials"
	"github.com/dmitrijs2005/blogclient/internal/client/models"
	"github.com/dmitrijs2005/blogclient/internal/common"
	"github.com/dmitrijs2005/blogclient/internal/logging"
	"golang.org/x/sync/singleflight"
)

// ProfileFetcher retrieves the profile of the user the stored credential
// belongs to (GET /user/current).
type ProfileFetcher interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// FailurePolicy decides what a failed profile fetch does to Authenticated.
type FailurePolicy int

const (
	// KeepAuthenticated clears the profile but leaves Authenticated tracking
	// credential presence.
	KeepAuthenticated FailurePolicy = iota
	// DropAuthenticated also reports the session as unauthenticated until
	// the next successful load.
	DropAuthenticated
)

// ParseFailurePolicy maps "keep"/"drop" to a policy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch s {
	case "", "keep":
		return KeepAuthenticated, nil
	case "drop":
		return DropAuthenticated, nil
	default:
		return KeepAuthenticated, fmt.Errorf("unknown fetch failure policy %q", s)
	}
}

func (p FailurePolicy) String() string {
	if p == DropAuthenticated {
		return "drop"
	}
	return "keep"
}

// State is a snapshot of the session.
type State struct {
	User          *models.User
	Authenticated bool
	Loaded        bool
}

const (
	lazyFetch  = "lazy"
	forceFetch = "force"
)

type Session struct {
	store   credentials.Store
	fetcher ProfileFetcher
	logger  logging.Logger
	policy  FailurePolicy

	group singleflight.Group

	mu            sync.RWMutex
	user          *models.User
	authenticated bool
	loaded        bool
	// generation changes on Login and Invalidate; fetches started under an
	// older generation are not applied.
	generation uint64
	// seq numbers fetches in start order; applied is the newest applied one.
	seq     uint64
	applied uint64
}

type Option func(*Session)

func WithFailurePolicy(p FailurePolicy) Option {
	return func(s *Session) { s.policy = p }
}

// New builds a session whose Authenticated flag starts out as "a credential
// is stored".
func New(ctx context.Context, store credentials.Store, fetcher ProfileFetcher, logger logging.Logger, opts ...Option) *Session {
	s := &Session{store: store, fetcher: fetcher, logger: logger}
	for _, o := range opts {
		o(s)
	}
	_, s.authenticated = store.Read(ctx)
	return s
}

// IsAuthenticated is a non-blocking read of the current flag.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{User: s.user, Authenticated: s.authenticated, Loaded: s.loaded}
}

// LazyLoad returns the cached profile, fetching it at most once while the
// cache is valid. Without a credential it returns nil and makes no request.
// Fetch failures are logged and reported as nil.
func (s *Session) LazyLoad(ctx context.Context) *models.User {
	if _, ok := s.store.Read(ctx); !ok {
		s.mu.Lock()
		s.authenticated = false
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	if s.loaded && s.user != nil {
		s.authenticated = true
		u := s.user
		s.mu.Unlock()
		s.logger.Debug(ctx, "profile served from cache", "user_id", u.ID)
		return u
	}
	s.mu.Unlock()

	u, err := s.fetch(ctx, lazyFetch)
	if err != nil {
		return nil
	}
	return u
}

// ForceLoad always refetches the profile when a credential is stored.
// It reports whether the session ended up with a fresh profile.
func (s *Session) ForceLoad(ctx context.Context) bool {
	if _, ok := s.store.Read(ctx); !ok {
		s.mu.Lock()
		s.authenticated = false
		s.mu.Unlock()
		return false
	}

	_, err := s.fetch(ctx, forceFetch)
	return err == nil
}

// Login stores token as the new credential and loads its profile. A failed
// profile fetch is visible through State; only storage errors are returned.
func (s *Session) Login(ctx context.Context, token string) error {
	s.mu.Lock()
	if err := s.store.Save(ctx, token); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("store credential: %w", err)
	}
	s.generation++
	s.user = nil
	s.loaded = false
	s.authenticated = true
	s.mu.Unlock()

	s.logger.Info(ctx, "credential stored")
	s.ForceLoad(ctx)
	return nil
}

// Invalidate evicts the credential and resets the session in one step.
// Fetches still in flight are discarded when they complete.
func (s *Session) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear credential", "error", err)
	}
	s.generation++
	s.user = nil
	s.loaded = false
	s.authenticated = false
	s.logger.Info(ctx, "session invalidated")
}

type fetchResult struct {
	user *models.User
}

// fetch runs one coalesced profile request under key and applies its
// outcome. The shared request is detached from the caller's cancellation;
// each caller stops waiting when its own ctx is done.
func (s *Session) fetch(ctx context.Context, kind string) (*models.User, error) {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	// keyed by generation so a fetch begun before Login/Invalidate is never
	// joined by callers that come after it
	key := fmt.Sprintf("%s/%d", kind, gen)
	ch := s.group.DoChan(key, func() (any, error) {
		return s.fetchAndApply(context.WithoutCancel(ctx), gen)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(fetchResult).user, nil
	}
}

var errSuperseded = errors.New("profile fetch superseded")

func (s *Session) fetchAndApply(ctx context.Context, gen uint64) (fetchResult, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	user, err := s.fetcher.CurrentUser(ctx)
	if err == nil && user == nil {
		err = errors.New("empty profile")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug(ctx, "discarding profile fetch from an ended session", "seq", seq)
		if err != nil {
			return fetchResult{}, err
		}
		return fetchResult{}, errSuperseded
	}
	if seq < s.applied {
		// a newer fetch of the same session already decided the state
		s.logger.Debug(ctx, "discarding superseded profile fetch", "seq", seq, "applied", s.applied)
		if err != nil {
			return fetchResult{}, err
		}
		if !s.loaded || s.user == nil {
			return fetchResult{}, errSuperseded
		}
		return fetchResult{user: s.user}, nil
	}
	s.applied = seq

	if err != nil {
		s.logger.Error(ctx, "failed to load user profile", "error", err)
		s.user = nil
		s.loaded = false
		switch {
		case errors.Is(err, common.ErrUnauthorized):
			s.authenticated = false
		case s.policy == DropAuthenticated:
			s.authenticated = false
		default:
			_, s.authenticated = s.store.Read(ctx)
		}
		return fetchResult{}, err
	}

	s.user = user
	s.loaded = true
	s.authenticated = true
	return fetchResult{user: user}, nil
}
