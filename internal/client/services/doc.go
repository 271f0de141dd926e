// Package services contains the application services behind the profile
// client's commands: the account view, theme, avatar upload, account
// lifecycle, settings, and register/login.
//
// Services work on a storage.Repositories bundle. Every write goes straight
// to the backend, so the next read observes it; multi-key deletes run inside
// kv.Store.Atomic.
package services
