// Package storage opens the local key-value backend and builds the typed
// repositories on top of it.
//
// Overview
//
//   - Open selects a backend by driver name: "sqlite" (default, a file
//     migrated with goose), "memory", "redis" or "postgres".
//   - NewRepositories namespaces every key with a prefix, constructs the
//     user, session, theme, history and avatar repositories, and registers
//     each per-user store with the cascade registry used by account
//     deletion.
//
// Typical Usage
//
//	store, err := storage.Open(ctx, storage.Options{Driver: "sqlite", Path: "nvx.db"})
//	repos, err := storage.NewRepositories(store, "nvx_", log)
//	defer repos.Close()
package storage
