package services

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/jus-mpfumo/ra-auth/core"
)

// AuthService is the caller-facing surface of the library: the account
// lifecycle, the session, and the feedback log behind one set of plain
// operations. The presentation layer (forms, tables, modals) sits entirely
// outside and only calls these methods.
type AuthService struct {
	accounts *AccountStore
	sessions *SessionManager
	feedback *FeedbackLog
	log      *slog.Logger
}

func NewAuthService(accounts *AccountStore, sessions *SessionManager, feedback *FeedbackLog, log *slog.Logger) *AuthService {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		feedback: feedback,
		log:      log,
	}
}

// Accounts exposes the underlying store for callers that need direct access.
func (s *AuthService) Accounts() *AccountStore { return s.accounts }

// Sessions exposes the underlying session manager.
func (s *AuthService) Sessions() *SessionManager { return s.sessions }

// Feedback exposes the underlying feedback log.
func (s *AuthService) Feedback() *FeedbackLog { return s.feedback }

// SignUp registers a new account. Name and email are trimmed before
// validation; a taken email reports ErrAccountExists. Signing up does not
// establish a session, the caller logs in afterwards.
func (s *AuthService) SignUp(ctx context.Context, input core.SignUpInput) (*core.Account, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	if name == "" {
		return nil, core.ErrNameRequired
	}
	if email == "" {
		return nil, core.ErrEmailRequired
	}

	account, err := s.accounts.Create(ctx, name, email, input.Password)
	if err != nil {
		s.log.Warn("sign up rejected", "email", email, "error", err)
		return nil, err
	}

	s.log.Info("account created", "email", account.Email, "role", account.Role)
	return account, nil
}

// LogIn authenticates the credentials and establishes the account as the
// current session. A failed login leaves the existing session untouched.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (*core.Account, error) {
	account, err := s.accounts.Authenticate(ctx, email, password)
	if err != nil {
		s.log.Warn("login failed", "email", email, "error", err)
		return nil, err
	}

	if err := s.sessions.Establish(ctx, account.Email); err != nil {
		return nil, err
	}

	s.log.Info("login succeeded", "email", account.Email)
	return account, nil
}

// LogOut clears the current session. Idempotent.
func (s *AuthService) LogOut(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("logged out")
	return nil
}

// CurrentAccount returns the account behind the current session, or
// (nil, nil) when nobody is logged in.
func (s *AuthService) CurrentAccount(ctx context.Context) (*core.Account, error) {
	return s.sessions.Current(ctx)
}

// ListAccounts returns a snapshot of all registered accounts.
func (s *AuthService) ListAccounts(ctx context.Context) ([]core.Account, error) {
	return s.accounts.ListAll(ctx)
}

// EditAccount applies an administrative patch. It reports false when no
// account exists under email, so bulk edits can continue past missing rows.
func (s *AuthService) EditAccount(ctx context.Context, email string, patch core.AccountPatch) (bool, error) {
	updated, err := s.accounts.Update(ctx, email, patch)
	if err != nil {
		return false, err
	}
	if updated {
		s.log.Info("account updated", "email", email)
	}
	return updated, nil
}

// RemoveAccount deletes the account under email. Removing an absent account
// succeeds; a session still pointing at it resolves to no current user.
func (s *AuthService) RemoveAccount(ctx context.Context, email string) error {
	if err := s.accounts.Delete(ctx, email); err != nil {
		return err
	}
	s.log.Info("account removed", "email", email)
	return nil
}

// SubmitFeedback appends an entry attributed to the current session, or to
// the anonymous marker when nobody is logged in.
func (s *AuthService) SubmitFeedback(ctx context.Context, rating int, comment string) (*core.FeedbackEntry, error) {
	current, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	user := core.AnonymousUser
	if current != nil {
		user = current.Email
	}
	return s.feedback.Submit(ctx, user, rating, comment)
}

// ListFeedback returns the full feedback log in submission order.
func (s *AuthService) ListFeedback(ctx context.Context) ([]core.FeedbackEntry, error) {
	return s.feedback.List(ctx)
}
