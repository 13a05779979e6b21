package constants

import "time"

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Validation limits
const (
	MinProjectNameLength = 3
	MinPasswordLength    = 6
)

// TokenTTL is the lifetime of an issued access token.
const TokenTTL = 15 * 24 * time.Hour

// Context keys for the authenticated identity
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserName  = "user_name"
	ContextKeyUserEmail = "user_email"
)
