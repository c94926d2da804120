// Package store contains the application's two state containers: the session
// store (active identity) and the history store (scan record collection).
// Both follow the same lifecycle: state is loaded from a durable snapshot at
// startup, every mutation updates memory first, and the new state is then
// flushed back to the snapshot repository and pushed to subscribers.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/ntndev/skinscan/internal/common"
	"github.com/ntndev/skinscan/internal/logging"
	"github.com/ntndev/skinscan/internal/models"
	"github.com/ntndev/skinscan/internal/passwordx"
	"github.com/ntndev/skinscan/internal/repositories/snapshots"
	"github.com/ntndev/skinscan/internal/repositories/users"
)

const sessionSnapshotKey = "auth-storage"

// SessionState is the observable state of the session store.
//
// Invariant: IsAuthenticated is true iff User is non-nil. Err holds the
// outcome of the last fallible operation; callers render it inline rather
// than handling exceptions. IsLoading is raised for the duration of the
// simulated network round trip.
type SessionState struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Err             error
}

// SessionStore owns the single active login. Operations record their outcome
// in the state's Err field and also return it, so both reactive readers and
// direct callers observe the same result. Overlapping calls are not
// serialized: last write wins, matching the single-user device scope.
type SessionStore struct {
	mu      sync.Mutex
	state   SessionState
	users   users.Repository
	snaps   snapshots.Repository
	latency time.Duration
	log     logging.Logger

	subMu   sync.Mutex
	subs    map[int]func(SessionState)
	nextSub int
}

// NewSessionStore builds a session store over the given credential directory
// and snapshot repository. latency is the simulated network delay applied to
// login, registration, and profile updates.
func NewSessionStore(dir users.Repository, snaps snapshots.Repository, latency time.Duration, log logging.Logger) *SessionStore {
	return &SessionStore{
		users:   dir,
		snaps:   snaps,
		latency: latency,
		log:     log.With("component", "session-store"),
		subs:    make(map[int]func(SessionState)),
	}
}

// Load restores the session from its durable snapshot. A missing snapshot
// leaves the store anonymous. Called once at startup before any operation.
func (s *SessionStore) Load(ctx context.Context) error {
	data, err := s.snaps.Get(ctx, sessionSnapshotKey)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}

	var snap models.SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = SessionState{
		User:            snap.User,
		IsAuthenticated: snap.User != nil,
	}
	s.mu.Unlock()
	return nil
}

// State returns a copy of the current state.
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Subscribe registers fn to receive a state copy after every transition.
// The returned function removes the subscription.
func (s *SessionStore) Subscribe(fn func(SessionState)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Login authenticates against the credential directory. On a match the
// identity (without any password material) becomes the active session; on a
// mismatch the session is left unchanged and ErrInvalidCredentials is
// recorded.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	s.begin()

	if err := s.simulateLatency(ctx); err != nil {
		return s.fail(common.ErrInternal)
	}

	acc, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return s.fail(common.ErrInvalidCredentials)
		}
		s.log.Error(ctx, "credential lookup failed", "error", err)
		return s.fail(common.ErrInternal)
	}

	ok, err := passwordx.Verify(password, acc.PasswordHash)
	if err != nil {
		s.log.Error(ctx, "password verification failed", "error", err)
		return s.fail(common.ErrInternal)
	}
	if !ok {
		return s.fail(common.ErrInvalidCredentials)
	}

	user := acc.User
	s.setAuthenticated(ctx, &user)
	s.log.Info(ctx, "login successful", "user", user.ID)
	return nil
}

// Register creates a new account and signs it in. The new identifier grows
// strictly with the directory size. An already-registered email records
// ErrDuplicateEmail and leaves the session unchanged.
func (s *SessionStore) Register(ctx context.Context, name, email, password string) error {
	s.begin()

	if err := s.simulateLatency(ctx); err != nil {
		return s.fail(common.ErrInternal)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return s.fail(common.ErrDuplicateEmail)
	} else if !errors.Is(err, common.ErrNotFound) {
		s.log.Error(ctx, "credential lookup failed", "error", err)
		return s.fail(common.ErrInternal)
	}

	n, err := s.users.Count(ctx)
	if err != nil {
		s.log.Error(ctx, "directory count failed", "error", err)
		return s.fail(common.ErrInternal)
	}

	hash, err := passwordx.Hash(password)
	if err != nil {
		s.log.Error(ctx, "password hashing failed", "error", err)
		return s.fail(common.ErrInternal)
	}

	user := models.User{
		ID:    strconv.Itoa(n + 1),
		Email: email,
		Name:  name,
	}
	err = s.users.Insert(ctx, &users.Account{User: user, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return s.fail(common.ErrDuplicateEmail)
		}
		s.log.Error(ctx, "account insert failed", "error", err)
		return s.fail(common.ErrInternal)
	}

	s.setAuthenticated(ctx, &user)
	s.log.Info(ctx, "registration successful", "user", user.ID)
	return nil
}

// Logout clears the active identity. Synchronous, no error path.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state = SessionState{}
	st := s.stateLocked()
	s.mu.Unlock()

	s.persist(ctx)
	s.notify(st)
	s.log.Info(ctx, "logged out")
}

// UpdateProfile merges the given partial fields into the active identity.
// Email is not part of ProfileUpdate and therefore cannot change. Without an
// active identity the call records ErrNotAuthenticated. A profile update
// failure never de-authenticates.
func (s *SessionStore) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	s.begin()

	if err := s.simulateLatency(ctx); err != nil {
		return s.fail(common.ErrInternal)
	}

	s.mu.Lock()
	if s.state.User == nil {
		s.mu.Unlock()
		return s.fail(common.ErrNotAuthenticated)
	}
	merged := s.state.User.Apply(upd)
	s.state = SessionState{User: &merged, IsAuthenticated: true}
	st := s.stateLocked()
	s.mu.Unlock()

	// keep the directory in step so a later login sees the new fields
	if err := s.users.Update(ctx, merged); err != nil {
		s.log.Warn(ctx, "directory update failed", "error", err)
	}

	s.persist(ctx)
	s.notify(st)
	s.log.Info(ctx, "profile updated", "user", merged.ID)
	return nil
}

// begin marks the start of a simulated network operation: loading on,
// previous error cleared.
func (s *SessionStore) begin() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Err = nil
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

// fail finishes an operation with err recorded in state; the identity is
// left exactly as it was.
func (s *SessionStore) fail(err error) error {
	s.mu.Lock()
	s.state.IsLoading = false
	s.state.Err = err
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
	return err
}

func (s *SessionStore) setAuthenticated(ctx context.Context, user *models.User) {
	s.mu.Lock()
	s.state = SessionState{User: user, IsAuthenticated: true}
	st := s.stateLocked()
	s.mu.Unlock()

	s.persist(ctx)
	s.notify(st)
}

// stateLocked returns a copy of the state. Caller must hold mu.
func (s *SessionStore) stateLocked() SessionState {
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// persist flushes the {user, isAuthenticated} snapshot. Best-effort: a flush
// failure is logged, never surfaced as an operation error.
func (s *SessionStore) persist(ctx context.Context) {
	s.mu.Lock()
	snap := models.SessionSnapshot{
		User:            s.state.User,
		IsAuthenticated: s.state.IsAuthenticated,
	}
	s.mu.Unlock()

	data, err := json.Marshal(snap)
	if err != nil {
		s.log.Error(ctx, "session snapshot marshal failed", "error", err)
		return
	}
	if err := s.snaps.Set(ctx, sessionSnapshotKey, data); err != nil {
		s.log.Warn(ctx, "session snapshot flush failed", "error", err)
	}
}

func (s *SessionStore) notify(st SessionState) {
	s.subMu.Lock()
	fns := make([]func(SessionState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

func (s *SessionStore) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
