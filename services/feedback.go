package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jus-mpfumo/ra-auth/core"
)

// FeedbackLog is the append-only collaborator: entries are only ever added,
// never mutated. It shares the whole-list read/write discipline of the
// account store.
type FeedbackLog struct {
	kv  core.KeyValue
	now func() time.Time
}

// NewFeedbackLog builds a log writing timestamps from now; a nil now falls
// back to time.Now.
func NewFeedbackLog(kv core.KeyValue, now func() time.Time) *FeedbackLog {
	if now == nil {
		now = time.Now
	}
	return &FeedbackLog{
		kv:  kv,
		now: now,
	}
}

func (f *FeedbackLog) load(ctx context.Context) ([]core.FeedbackEntry, error) {
	raw, err := f.kv.Get(ctx, core.FeedbackKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read feedback: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var entries []core.FeedbackEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return entries, nil
}

// Submit appends one entry. An empty user is recorded under the anonymous
// marker.
func (f *FeedbackLog) Submit(ctx context.Context, user string, rating int, comment string) (*core.FeedbackEntry, error) {
	entries, err := f.load(ctx)
	if err != nil {
		return nil, err
	}

	if user == "" {
		user = core.AnonymousUser
	}

	entry := core.FeedbackEntry{
		ID:          uuid.NewString(),
		User:        user,
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: f.now(),
	}

	raw, err := json.Marshal(append(entries, entry))
	if err != nil {
		return nil, fmt.Errorf("failed to encode feedback: %w", err)
	}
	if err := f.kv.Set(ctx, core.FeedbackKey, raw); err != nil {
		return nil, fmt.Errorf("failed to write feedback: %w", err)
	}

	return &entry, nil
}

// List returns every entry in submission order.
func (f *FeedbackLog) List(ctx context.Context) ([]core.FeedbackEntry, error) {
	return f.load(ctx)
}
