package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nekotick/synccore/internal/adapter"
	"github.com/nekotick/synccore/internal/logger"
	"github.com/nekotick/synccore/internal/store"
	"github.com/nekotick/synccore/models"
)

type syncOrchestrator struct {
	backend adapter.RemoteBackend
	vault   CredentialVault
	flags   store.FlagRepository
	logger  *logger.Logger

	// refreshWindow is how close to expiry a token may get before
	// CheckStatus refreshes it ahead of use.
	refreshWindow time.Duration

	mu      sync.Mutex
	session models.SyncSession

	// runInFlight collapses concurrent TriggerSync calls into one run.
	runInFlight bool

	// statusInFlight/statusDone coalesce concurrent CheckStatus calls:
	// followers wait on the shared channel and return the leader's error.
	statusInFlight bool
	statusDone     chan struct{}
	statusErr      error
}

// NewSyncOrchestrator constructs the [SyncOrchestrator]. Call Bootstrap
// before any other operation to restore the persisted session.
func NewSyncOrchestrator(backend adapter.RemoteBackend, vault CredentialVault, flags store.FlagRepository, refreshWindow time.Duration, log *logger.Logger) SyncOrchestrator {
	return &syncOrchestrator{
		backend:       backend,
		vault:         vault,
		flags:         flags,
		refreshWindow: refreshWindow,
		logger:        log,
	}
}

func (s *syncOrchestrator) Bootstrap(ctx context.Context) error {
	access, err := s.vault.Get(ctx, VaultKeyAccessToken)
	if err != nil && !errors.Is(err, store.ErrSecretNotFound) {
		return fmt.Errorf("bootstrap read access token: %w", err)
	}
	refresh, err := s.vault.Get(ctx, VaultKeyRefreshToken)
	if err != nil && !errors.Is(err, store.ErrSecretNotFound) {
		return fmt.Errorf("bootstrap read refresh token: %w", err)
	}
	accountID, err := s.vault.Get(ctx, VaultKeyAccountID)
	if err != nil && !errors.Is(err, store.ErrSecretNotFound) {
		return fmt.Errorf("bootstrap read account id: %w", err)
	}

	pendingFlag, err := s.flags.GetFlag(ctx, store.FlagPendingSync)
	if err != nil {
		return fmt.Errorf("bootstrap read pending flag: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.SyncSession{
		AccountID:    string(accountID),
		AccessToken:  string(access),
		RefreshToken: string(refresh),
		PendingSync:  pendingFlag,
	}
	if s.session.AccessToken != "" {
		if expiry, err := adapter.TokenExpiry(s.session.AccessToken); err != nil {
			s.logger.Err(err).Str("func", "Bootstrap").Msg("stored access token is not parseable")
		} else {
			s.session.TokenExpiry = expiry
		}
	}

	s.logger.Info().
		Bool("has_token", s.session.HasToken()).
		Bool("pending_sync", s.session.PendingSync).
		Msg("session restored")
	return nil
}

// CheckStatus refreshes Connected, AccountID and Entitled from the remote
// backend. Concurrent callers share a single request and its result.
func (s *syncOrchestrator) CheckStatus(ctx context.Context) (models.SyncSession, error) {
	s.mu.Lock()
	if s.statusInFlight {
		done := s.statusDone
		s.mu.Unlock()
		select {
		case <-done:
			s.mu.Lock()
			session, err := s.session, s.statusErr
			s.mu.Unlock()
			return session, err
		case <-ctx.Done():
			return models.SyncSession{}, ctx.Err()
		}
	}
	s.statusInFlight = true
	s.statusDone = make(chan struct{})
	s.mu.Unlock()

	err := s.doCheckStatus(ctx)

	s.mu.Lock()
	s.statusErr = err
	s.statusInFlight = false
	close(s.statusDone)
	session := s.session
	s.mu.Unlock()

	return session, err
}

func (s *syncOrchestrator) doCheckStatus(ctx context.Context) error {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if !session.HasToken() {
		s.mu.Lock()
		s.session.Connected = false
		s.mu.Unlock()
		return nil
	}

	if session.TokenExpiresWithin(time.Now(), s.refreshWindow) {
		if err := s.refreshTokens(ctx, session.RefreshToken); err != nil {
			s.mu.Lock()
			s.session.Connected = false
			s.mu.Unlock()
			if errors.Is(err, adapter.ErrUnauthorized) {
				return fmt.Errorf("%w: %w", ErrReauthRequired, err)
			}
			return err
		}
		s.mu.Lock()
		session = s.session
		s.mu.Unlock()
	}

	status, err := s.backend.CheckStatus(ctx, session.AccessToken)
	if err != nil {
		s.mu.Lock()
		s.session.Connected = false
		s.mu.Unlock()
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("%w: %w", ErrReauthRequired, err)
		}
		return fmt.Errorf("check status: %w", err)
	}

	s.mu.Lock()
	s.session.Connected = true
	s.session.AccountID = status.AccountID
	s.session.Entitled = status.Entitled
	s.mu.Unlock()

	s.logger.Debug().
		Str("account", status.AccountID).
		Bool("entitled", status.Entitled).
		Msg("status check completed")
	return nil
}

// refreshTokens exchanges the refresh token for a fresh pair and persists
// both to the vault before the session picks them up.
func (s *syncOrchestrator) refreshTokens(ctx context.Context, refreshToken string) error {
	pair, err := s.backend.Refresh(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("refresh tokens: %w", err)
	}

	if err = s.vault.Set(ctx, VaultKeyAccessToken, []byte(pair.AccessToken)); err != nil {
		return fmt.Errorf("persist access token: %w", err)
	}
	if err = s.vault.Set(ctx, VaultKeyRefreshToken, []byte(pair.RefreshToken)); err != nil {
		return fmt.Errorf("persist refresh token: %w", err)
	}

	s.mu.Lock()
	s.session.AccessToken = pair.AccessToken
	s.session.RefreshToken = pair.RefreshToken
	s.session.TokenExpiry = pair.Expiry
	s.mu.Unlock()

	s.logger.Info().Time("expiry", pair.Expiry).Msg("tokens refreshed")
	return nil
}

func (s *syncOrchestrator) TriggerSync(ctx context.Context, trigger models.SyncTrigger) (models.SyncRun, error) {
	s.mu.Lock()
	if s.runInFlight {
		s.mu.Unlock()
		now := time.Now()
		return models.SyncRun{
			ID:         newRunID(),
			Trigger:    trigger,
			Outcome:    models.OutcomeCoalesced,
			StartedAt:  now,
			FinishedAt: now,
		}, nil
	}
	if !s.session.Entitled {
		s.mu.Unlock()
		return models.SyncRun{}, ErrNotEntitled
	}
	s.runInFlight = true
	session := s.session
	s.mu.Unlock()

	run := models.SyncRun{
		ID:        newRunID(),
		Trigger:   trigger,
		StartedAt: time.Now(),
	}

	err := s.backend.PerformSync(ctx, session.AccessToken, adapter.SyncRequest{
		AccountID: session.AccountID,
		RunID:     run.ID,
		StartedAt: run.StartedAt,
	})
	run.FinishedAt = time.Now()
	run.Outcome = s.classifyOutcome(ctx, err)

	s.mu.Lock()
	s.runInFlight = false
	s.mu.Unlock()

	s.logger.Info().
		Str("run", run.ID).
		Str("trigger", string(trigger)).
		Str("outcome", string(run.Outcome)).
		Msg("sync run finished")

	if err != nil {
		return run, fmt.Errorf("sync run %s: %w", run.ID, err)
	}
	return run, nil
}

// classifyOutcome maps a PerformSync error onto the run outcome and applies
// the matching session side effects.
func (s *syncOrchestrator) classifyOutcome(ctx context.Context, err error) models.SyncOutcome {
	switch {
	case err == nil:
		s.mu.Lock()
		s.session.PendingSync = false
		s.mu.Unlock()
		if ferr := s.flags.SetFlag(ctx, store.FlagPendingSync, false); ferr != nil {
			s.logger.Err(ferr).Str("func", "classifyOutcome").Msg("failed to clear pending flag")
		}
		return models.OutcomeSuccess
	case errors.Is(err, adapter.ErrConflict):
		return models.OutcomeConflict
	case errors.Is(err, adapter.ErrTransport):
		s.mu.Lock()
		s.session.Connected = false
		s.mu.Unlock()
		return models.OutcomeNetworkFailure
	default:
		s.mu.Lock()
		s.session.Connected = false
		s.mu.Unlock()
		return models.OutcomeAuthFailure
	}
}

func (s *syncOrchestrator) MarkPendingWork(ctx context.Context) error {
	s.mu.Lock()
	s.session.PendingSync = true
	s.mu.Unlock()

	if err := s.flags.SetFlag(ctx, store.FlagPendingSync, true); err != nil {
		return fmt.Errorf("persist pending flag: %w", err)
	}
	return nil
}

// HandleOnline runs the network-recovery path: re-check the session and, if
// there is pending work and the account is entitled, launch exactly one
// recovery sync. The bool reports whether a run was started.
func (s *syncOrchestrator) HandleOnline(ctx context.Context) (models.SyncRun, bool) {
	session, err := s.CheckStatus(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "HandleOnline").Msg("status check after network recovery failed")
		return models.SyncRun{}, false
	}

	shouldSync := session.Connected && session.Entitled && session.PendingSync

	if !shouldSync {
		return models.SyncRun{}, false
	}

	run, err := s.TriggerSync(ctx, models.TriggerNetworkRecovery)
	if err != nil {
		s.logger.Err(err).Str("func", "HandleOnline").Msg("recovery sync failed")
	}
	return run, true
}

func (s *syncOrchestrator) SignOut(ctx context.Context) error {
	for _, key := range []string{VaultKeyAccessToken, VaultKeyRefreshToken, VaultKeyAccountID} {
		if err := s.vault.Clear(ctx, key); err != nil {
			return fmt.Errorf("clear credential %s: %w", key, err)
		}
	}

	s.mu.Lock()
	s.session = models.SyncSession{PendingSync: s.session.PendingSync}
	s.mu.Unlock()

	s.logger.Info().Msg("signed out")
	return nil
}

func (s *syncOrchestrator) Status() models.SyncSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
