// Package kv is the device-local key-value store every repository sits on.
//
// # Overview
//
// The store is a flat namespace of string keys holding opaque byte values,
// the same shape as browser local storage. Typed repositories (users,
// avatars, theme, history, session) serialize their data as JSON under a
// fixed key each.
//
// # Backends
//
//   - SQLiteStore   — default; a single kv table in a local sqlite file
//   - MemoryStore   — process memory, used by tests and the "memory" driver
//   - RedisStore    — one redis hash, for kiosks sharing a device store
//   - PostgresStore — one table, for managed deployments
//
// # Atomicity
//
// Store.Atomic runs a function against a transaction-bound Store. SQLite and
// Postgres use a database transaction; MemoryStore applies a private copy
// on success; RedisStore has no multi-key transaction and runs the function
// directly.
//
// # Contract
//
// Get returns (nil, nil) for a missing key. Delete of a missing key is not
// an error.
package kv
