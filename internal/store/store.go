package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key or account has no stored value.
var ErrNotFound = errors.New("not found")

// CredentialStore persists an opaque secret keyed by an account identifier.
// Put is an upsert: any existing secret for the account is replaced.
type CredentialStore interface {
	Put(ctx context.Context, accountID, secret string) error
	Get(ctx context.Context, accountID string) (string, error)
}

// KeyValueStore persists small string flags and fields durably.
type KeyValueStore interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
}

// SetBool writes a boolean flag through a KeyValueStore.
func SetBool(ctx context.Context, kv KeyValueStore, key string, value bool) error {
	v := "false"
	if value {
		v = "true"
	}
	return kv.Set(ctx, key, v)
}

// GetBool reads a boolean flag. A missing key reads as false.
func GetBool(ctx context.Context, kv KeyValueStore, key string) (bool, error) {
	v, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return v == "true", nil
}

// GetString reads a key, treating absence as the empty string.
func GetString(ctx context.Context, kv KeyValueStore, key string) (string, error) {
	v, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}
