package store

import (
	"context"
	"database/sql"
	"errors"
)

// SQLiteKeyValueStore is the durable preference store, backed by the
// preferences table.
type SQLiteKeyValueStore struct {
	db *sql.DB
}

// NewSQLiteKeyValueStore creates a KeyValueStore over an open database.
func NewSQLiteKeyValueStore(db *sql.DB) *SQLiteKeyValueStore {
	return &SQLiteKeyValueStore{db: db}
}

// Set writes or replaces the value for a key.
func (s *SQLiteKeyValueStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}

// Get reads the value for a key, returning ErrNotFound when absent.
func (s *SQLiteKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	row := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// SQLiteCredentialStore holds account secrets in the credentials table. It
// stands in for the platform keychain of the mobile app.
type SQLiteCredentialStore struct {
	db *sql.DB
}

// NewSQLiteCredentialStore creates a CredentialStore over an open database.
func NewSQLiteCredentialStore(db *sql.DB) *SQLiteCredentialStore {
	return &SQLiteCredentialStore{db: db}
}

// Put upserts the secret for an account. The old entry is removed first,
// matching the delete-then-insert contract of the store.
func (s *SQLiteCredentialStore) Put(ctx context.Context, accountID, secret string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM credentials WHERE account_id = ?", accountID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO credentials (account_id, secret) VALUES (?, ?)", accountID, secret); err != nil {
		return err
	}
	return tx.Commit()
}

// Get retrieves the secret for an account, returning ErrNotFound when absent.
func (s *SQLiteCredentialStore) Get(ctx context.Context, accountID string) (string, error) {
	var secret string
	row := s.db.QueryRowContext(ctx, "SELECT secret FROM credentials WHERE account_id = ?", accountID)
	if err := row.Scan(&secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return secret, nil
}
