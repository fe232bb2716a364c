package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dayaniravi123/meduber/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (string, *SQLiteKeyValueStore, *SQLiteCredentialStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return path, NewSQLiteKeyValueStore(db), NewSQLiteCredentialStore(db)
}

func TestKeyValueStoreSetGet(t *testing.T) {
	_, kv, _ := newTestDB(t)
	ctx := context.Background()

	_, err := kv.Get(ctx, "userEmail")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "userEmail", "jane@x.com"))
	got, err := kv.Get(ctx, "userEmail")
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", got)

	// Set overwrites.
	require.NoError(t, kv.Set(ctx, "userEmail", "janet@x.com"))
	got, err = kv.Get(ctx, "userEmail")
	require.NoError(t, err)
	assert.Equal(t, "janet@x.com", got)
}

func TestKeyValueStoreBoolHelpers(t *testing.T) {
	_, kv, _ := newTestDB(t)
	ctx := context.Background()

	// Missing flag reads as false, not as an error.
	flag, err := GetBool(ctx, kv, "hasSignedUp")
	require.NoError(t, err)
	assert.False(t, flag)

	require.NoError(t, SetBool(ctx, kv, "hasSignedUp", true))
	flag, err = GetBool(ctx, kv, "hasSignedUp")
	require.NoError(t, err)
	assert.True(t, flag)

	require.NoError(t, SetBool(ctx, kv, "hasSignedUp", false))
	flag, err = GetBool(ctx, kv, "hasSignedUp")
	require.NoError(t, err)
	assert.False(t, flag)
}

func TestCredentialStorePutGet(t *testing.T) {
	_, _, creds := newTestDB(t)
	ctx := context.Background()

	_, err := creds.Get(ctx, "jane@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, creds.Put(ctx, "jane@x.com", "hash-1"))
	got, err := creds.Get(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", got)

	// Put is an upsert: the prior entry for the account is replaced.
	require.NoError(t, creds.Put(ctx, "jane@x.com", "hash-2"))
	got, err = creds.Get(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash-2", got)
}

func TestStoresSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	db, err := database.New(path)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	kv := NewSQLiteKeyValueStore(db)
	creds := NewSQLiteCredentialStore(db)
	require.NoError(t, kv.Set(ctx, "firstName", "A"))
	require.NoError(t, creds.Put(ctx, "a@x.com", "hash"))
	require.NoError(t, db.Close())

	db, err = database.New(path)
	require.NoError(t, err)
	defer db.Close()

	kv = NewSQLiteKeyValueStore(db)
	creds = NewSQLiteCredentialStore(db)

	got, err := kv.Get(ctx, "firstName")
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	secret, err := creds.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", secret)
}

func TestMemoryStoresMatchContract(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	creds := NewMemoryCredentialStore()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, kv.Set(ctx, "k", "v"))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = creds.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, creds.Put(ctx, "a", "s1"))
	require.NoError(t, creds.Put(ctx, "a", "s2"))
	secret, err := creds.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "s2", secret)
}
