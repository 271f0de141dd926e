package common

// DefaultKeyPrefix namespaces every key written to the local store.
const DefaultKeyPrefix = "nvx_"

// Unqualified store key names. The effective key is prefix + name.
const (
	KeyCurrentUser  = "current_user"
	KeyUsers        = "users"
	KeyAvatars      = "avatars"
	KeyTheme        = "theme"
	KeyTestHistory  = "test_history"
	KeyCredentials  = "credentials"
	KeyFaceProfiles = "face_profiles"
	KeyBioMethods   = "bio_methods"
)
