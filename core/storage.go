package core

import "context"

// KeyValue is the durable medium behind the account collection, the session
// pointer and the feedback log.
//
// Values are whole documents: Set replaces the entire value under a key and
// Get returns it exactly as stored. Get reports a missing key as (nil, nil).
// Delete of a missing key is a no-op.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Storage keys. The names carry over from the original browser build so a
// migrated data snapshot keeps working unchanged.
const (
	AccountsKey = "ra_app_users_v1"
	SessionKey  = "ra_app_current_v1"
	FeedbackKey = "ra_app_feedback_v1"
)
