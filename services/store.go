package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jus-mpfumo/ra-auth/core"
	"github.com/jus-mpfumo/ra-auth/pkg/crypto"
)

// AccountStore owns the persisted account collection.
//
// The collection is always read in full, mutated in memory and written back
// in full, so no single operation can leave a partial write behind. The
// trade-off is O(n) operations and no protection against two genuinely
// concurrent writers on the same medium.
type AccountStore struct {
	kv        core.KeyValue
	passwords crypto.PasswordHandler
}

func NewAccountStore(kv core.KeyValue, passwords crypto.PasswordHandler) *AccountStore {
	return &AccountStore{
		kv:        kv,
		passwords: passwords,
	}
}

func (s *AccountStore) load(ctx context.Context) ([]core.Account, error) {
	raw, err := s.kv.Get(ctx, core.AccountsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var accounts []core.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountStore) save(ctx context.Context, accounts []core.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := s.kv.Set(ctx, core.AccountsKey, raw); err != nil {
		return fmt.Errorf("failed to write accounts: %w", err)
	}
	return nil
}

// Create registers a new account with the fixed tutor role.
//
// The uniqueness check runs before the password is hashed, so a conflicting
// signup returns ErrAccountExists without mutating the collection.
func (s *AccountStore) Create(ctx context.Context, name, email, password string) (*core.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Email == email {
			return nil, core.ErrAccountExists
		}
	}

	digest, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := core.Account{
		Name:             name,
		Email:            email,
		CredentialDigest: digest,
		Role:             core.RoleTutor,
	}

	if err := s.save(ctx, append(accounts, account)); err != nil {
		return nil, err
	}

	return &account, nil
}

// Authenticate verifies the supplied password against the stored digest.
// A missing account reports ErrAccountNotFound, a mismatch
// ErrInvalidCredential.
func (s *AccountStore) Authenticate(ctx context.Context, email, password string) (*core.Account, error) {
	account, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	valid, err := s.passwords.Verify(password, account.CredentialDigest)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredential
	}

	return account, nil
}

// Update merges the patch into the matching record and persists the full
// collection. A missing email reports (false, nil) rather than an error so
// batch-editing callers can continue past missing rows.
func (s *AccountStore) Update(ctx context.Context, email string, patch core.AccountPatch) (bool, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	idx := -1
	for i := range accounts {
		if accounts[i].Email == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	if patch.Name != nil {
		accounts[idx].Name = *patch.Name
	}
	if patch.Password != nil {
		digest, err := s.passwords.Hash(*patch.Password)
		if err != nil {
			return false, fmt.Errorf("failed to hash password: %w", err)
		}
		accounts[idx].CredentialDigest = digest
	}

	if err := s.save(ctx, accounts); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the matching record. Deleting an absent email is a no-op,
// not a failure: administrative deletion is idempotent.
func (s *AccountStore) Delete(ctx context.Context, email string) error {
	accounts, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]core.Account, 0, len(accounts))
	for i := range accounts {
		if accounts[i].Email != email {
			kept = append(kept, accounts[i])
		}
	}

	return s.save(ctx, kept)
}

// FindByEmail returns the account stored under email, or ErrAccountNotFound.
func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*core.Account, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Email == email {
			account := accounts[i]
			return &account, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

// ListAll returns a snapshot of every persisted account.
func (s *AccountStore) ListAll(ctx context.Context) ([]core.Account, error) {
	return s.load(ctx)
}
