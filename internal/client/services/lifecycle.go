package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/client/storage"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

// Resetter clears in-memory state kept for the logged-in user, such as a
// pending analysis.
type Resetter interface {
	Reset()
}

// ResetFunc adapts a function to Resetter.
type ResetFunc func()

func (f ResetFunc) Reset() { f() }

// LifecycleService implements logout and account deletion.
type LifecycleService struct {
	repos *storage.Repositories
	reset Resetter
	log   logging.Logger
}

// NewLifecycleService builds the service. reset may be nil.
func NewLifecycleService(repos *storage.Repositories, reset Resetter, log logging.Logger) *LifecycleService {
	return &LifecycleService{repos: repos, reset: reset, log: log}
}

// Logout clears the session pointer and transient state. Stored data is
// kept.
func (s *LifecycleService) Logout(ctx context.Context) error {
	if err := s.repos.Session.Clear(ctx); err != nil {
		return err
	}
	s.resetState()
	s.log.Info(ctx, "logged out")
	return nil
}

// DeleteAccount removes the logged-in user's record, their entry in every
// registered per-user store, the session pointer and the whole test
// history, in one transaction where the backend has them. Without a
// session it does nothing.
func (s *LifecycleService) DeleteAccount(ctx context.Context) error {
	userID, err := s.repos.Session.Current(ctx)
	if err != nil {
		return err
	}
	if userID == "" {
		s.log.Debug(ctx, "delete account without a session, nothing to do")
		return nil
	}

	err = s.repos.Store.Atomic(ctx, func(ctx context.Context, tx kv.Store) error {
		if err := s.repos.Users.WithStore(tx).Delete(ctx, userID); err != nil {
			return err
		}
		if err := s.repos.PerUser.DeleteUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.repos.Session.WithStore(tx).Clear(ctx); err != nil {
			return err
		}
		// the history sequence is shared, so all of it goes
		return s.repos.History.WithStore(tx).Clear(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", userID, err)
	}

	s.resetState()
	s.log.Info(ctx, "account deleted", "user", userID)
	return nil
}

func (s *LifecycleService) resetState() {
	if s.reset != nil {
		s.reset.Reset()
	}
}

type DeleteState int

const (
	DeleteIdle DeleteState = iota
	DeleteConfirming
)

func (st DeleteState) String() string {
	if st == DeleteConfirming {
		return "confirming"
	}
	return "idle"
}

// DeleteFlow is the two-step confirmation in front of DeleteAccount.
// Request arms it, Cancel disarms it, and Confirm deletes only when armed.
// It never times out.
type DeleteFlow struct {
	mu        sync.Mutex
	state     DeleteState
	lifecycle *LifecycleService
}

func NewDeleteFlow(lifecycle *LifecycleService) *DeleteFlow {
	return &DeleteFlow{lifecycle: lifecycle}
}

func (f *DeleteFlow) State() DeleteState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *DeleteFlow) Request() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = DeleteConfirming
}

func (f *DeleteFlow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = DeleteIdle
}

// Confirm runs the deletion if a request is pending and returns the flow
// to idle whatever the outcome.
func (f *DeleteFlow) Confirm(ctx context.Context) error {
	f.mu.Lock()
	if f.state != DeleteConfirming {
		f.mu.Unlock()
		return common.ErrNotConfirming
	}
	f.state = DeleteIdle
	f.mu.Unlock()

	return f.lifecycle.DeleteAccount(ctx)
}
