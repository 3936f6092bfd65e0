package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jus-mpfumo/ra-auth/core"
)

// SessionManager tracks the single current authenticated identity as the
// bare email string under one storage key. The session has no expiry and
// survives restarts until cleared.
type SessionManager struct {
	kv       core.KeyValue
	accounts *AccountStore
}

func NewSessionManager(kv core.KeyValue, accounts *AccountStore) *SessionManager {
	return &SessionManager{
		kv:       kv,
		accounts: accounts,
	}
}

// Establish records email as the current identity, replacing any prior
// session. Only one session exists at a time.
func (sm *SessionManager) Establish(ctx context.Context, email string) error {
	if err := sm.kv.Set(ctx, core.SessionKey, []byte(email)); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the current identity. Clearing an absent session is a no-op.
func (sm *SessionManager) Clear(ctx context.Context) error {
	if err := sm.kv.Delete(ctx, core.SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Current resolves the stored identity against the account store. It reports
// (nil, nil) when no session is recorded or when the referenced account has
// since been deleted; a stale pointer never resolves to a stale record. The
// stale key is left in place (lazy cleanup, not eager).
func (sm *SessionManager) Current(ctx context.Context) (*core.Account, error) {
	raw, err := sm.kv.Get(ctx, core.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	account, err := sm.accounts.FindByEmail(ctx, string(raw))
	if err != nil {
		if errors.Is(err, core.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}
