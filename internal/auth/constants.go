package auth

import "time"

// Cache settings for verified tokens
const (
	DefaultCacheSize = 10000
	DefaultCacheTTL  = 5 * time.Minute
)

// SigningMethod is the only accepted token algorithm
const SigningMethod = "HS256"

// Error messages
const (
	ErrMsgMissingCredential = "missing credential"
	ErrMsgInvalidToken      = "invalid token"
	ErrMsgExpiredToken      = "token expired"
	ErrMsgMissingSubject    = "token has no subject"
)
