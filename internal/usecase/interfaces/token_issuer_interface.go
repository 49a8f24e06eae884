package interfaces

import (
	"errors"
	"time"
)

var (
	// ErrTokenInvalid covers malformed, tampered or wrongly-signed
	// capability tokens.
	ErrTokenInvalid = errors.New("capability token invalid")
	// ErrTokenExpired is surfaced distinctly so clients can prompt the
	// buyer to request a fresh link instead of treating it as a denial.
	ErrTokenExpired = errors.New("capability token expired")
)

// ITokenIssuer mints and verifies signed, time-limited capability tokens
// that grant access to exactly one invoice without session authentication.
type ITokenIssuer interface {
	Issue(invoiceID string, ttl time.Duration) (string, error)
	Verify(token string) (invoiceID string, err error)
}
