package kv

import "context"

// Store is a key-value namespace.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// Atomic runs fn with a Store whose writes become visible together.
	// Calling Atomic on a transaction-bound Store runs fn in the same
	// transaction.
	Atomic(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

// Backend is a Store that owns a connection.
type Backend interface {
	Store
	Close() error
}
