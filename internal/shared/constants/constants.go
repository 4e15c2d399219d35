package constants

const (
	// RoleAdmin grants access to the admin mutation surface.
	RoleAdmin = "admin"
	// RoleUser is the implicit role for any registered account.
	RoleUser = "user"

	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// HeaderAPIKey carries the shared secret for the bot/API surface.
	HeaderAPIKey = "x-api-key"
)
