package raauth

import (
	"log/slog"
	"time"

	"github.com/jus-mpfumo/ra-auth/core"
	"github.com/jus-mpfumo/ra-auth/pkg/crypto"
	"github.com/jus-mpfumo/ra-auth/services"
)

// interfaces
type (
	KeyValue = core.KeyValue

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	App = services.AuthService

	AccountStore   = services.AccountStore
	SessionManager = services.SessionManager
	FeedbackLog    = services.FeedbackLog
)

type (
	Account       = core.Account
	AccountPatch  = core.AccountPatch
	SignUpInput   = core.SignUpInput
	FeedbackEntry = core.FeedbackEntry
)

const (
	RoleTutor     = core.RoleTutor
	AnonymousUser = core.AnonymousUser
)

// Constructors & helpers (convenience re-exports)
var (
	NewSHA256 = crypto.NewSHA256
	NewArgon2 = crypto.NewArgon2
)

var (
	ErrAccountExists     = core.ErrAccountExists
	ErrAccountNotFound   = core.ErrAccountNotFound
	ErrInvalidCredential = core.ErrInvalidCredential
)

var (
	ErrNameRequired  = core.ErrNameRequired
	ErrEmailRequired = core.ErrEmailRequired
)

var (
	ErrStorageRequired = core.ErrStorageRequired
)

// Config wires the library together. Storage is the only required field.
type Config struct {
	Storage KeyValue

	// Optional config
	PasswordHasher PasswordHandler
	Logger         *slog.Logger
	Now            func() time.Time
}

// New validates the config, fills in defaults and returns the caller-facing
// App. The default hasher is the unsalted SHA-256 digest for compatibility
// with data written by the original build; inject NewArgon2() for salted
// hashing on fresh deployments.
func New(config Config) (*App, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewSHA256()
	}

	accounts := services.NewAccountStore(config.Storage, passwordHasher)
	sessions := services.NewSessionManager(config.Storage, accounts)
	feedback := services.NewFeedbackLog(config.Storage, config.Now)

	return services.NewAuthService(accounts, sessions, feedback, config.Logger), nil
}
