package domain

import "time"

// Identity is the caller identity supplied by the external identity provider.
// A nil *Identity means the caller is unauthenticated. Anonymous identities
// carry a uid but may not create or own events.
type Identity struct {
	UID         string `json:"uid"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// TokenIssuer issues tokens (e.g. JWT) for an identity.
type TokenIssuer interface {
	Issue(uid string, anonymous bool, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}
