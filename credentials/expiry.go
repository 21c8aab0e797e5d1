// credentials/expiry.go
package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsExpiredAt reports whether the access token is unusable at the given
// instant: absent, not decodable as a JWT, or carrying an exp claim at or
// before now. The embedded claim is read without any signature verification -
// this is a local, advisory freshness check and never an authentication
// decision, which stays with the server. A decodable token without an exp
// claim is treated as unexpired, since it carries no expiry evidence.
//
// Pure function of (token, now): identical inputs yield identical results.
func IsExpiredAt(token string, now time.Time) bool {
	if token == "" {
		return true
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}

	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.Time.After(now)
}

// IsExpired is IsExpiredAt against the current clock.
func IsExpired(token string) bool {
	return IsExpiredAt(token, time.Now())
}
