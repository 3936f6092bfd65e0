package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	store, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, dsn
}

func TestOpen_RunsMigrations(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	// The storage table exists, so a Set straight after Open succeeds.
	require.NoError(t, store.Set(ctx, "k", []byte("v")))
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", []byte{0x01, 0x02}))

	value, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, value)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	value, err := store.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("old")))
	require.NoError(t, store.Set(ctx, "k", []byte("new")))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), value)
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestValues_PersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	store, dsn := openTestStore(t)
	require.NoError(t, store.Set(ctx, "k", []byte("durable")))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), value)
}
