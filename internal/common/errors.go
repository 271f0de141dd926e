// Package common defines shared constants and sentinel errors used across
// the profile client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrUnauthenticated    = errors.New("no active session")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrCorruptStore = errors.New("stored value is malformed")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidUser  = errors.New("invalid user record")
	ErrInvalidTheme = errors.New("invalid theme mode")

	// Avatar ingestion errors.
	ErrAvatarDecode     = errors.New("avatar could not be decoded")
	ErrUploadSuperseded = errors.New("avatar upload superseded by a newer one")
	ErrSessionChanged   = errors.New("session changed during avatar upload")

	// Account lifecycle errors.
	ErrNotConfirming = errors.New("account deletion was not requested")
)
