package memory

import (
	"bytes"
	"context"
	"testing"
)

func TestStore_SetAndGet(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := New()

	// Act
	if err := store.Set(ctx, "k1", []byte("v1")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value, err := store.Get(ctx, "k1")

	// Assert
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(value, []byte("v1")) {
		t.Errorf("Get() = %q, want %q", value, "v1")
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	ctx := context.Background()
	store := New()

	value, err := store.Get(ctx, "absent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != nil {
		t.Errorf("Get() = %q, want nil for a missing key", value)
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := New()

	if err := store.Set(ctx, "k", []byte("old")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, "k", []byte("new")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(value, []byte("new")) {
		t.Errorf("Get() = %q, want %q", value, "new")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := New()
	if err := store.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}

	value, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != nil {
		t.Errorf("Get() after Delete() = %q, want nil", value)
	}
}

// Mutating the returned slice must not corrupt the stored value.
func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := New()
	if err := store.Set(ctx, "k", []byte("value")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	first, _ := store.Get(ctx, "k")
	first[0] = 'X'

	second, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(second, []byte("value")) {
		t.Errorf("stored value mutated through the returned slice: %q", second)
	}
}
