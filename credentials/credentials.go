// credentials/credentials.go
/* The credentials package owns the client's credential pair: an opaque access
token and the refresh token used to renew it. The Store interface abstracts the
injected key-value backend; the refresh coordinator only ever reads and writes
whole pairs through it, so no caller can observe a half-updated pair. */
package credentials

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when no credential pair is held.
var ErrNotFound = errors.New("credentials: no credential pair held")

// Pair is an access/refresh token pair. Both values are opaque strings; the
// access token happens to be a JWT whose exp claim the expiry oracle reads,
// but nothing here depends on that.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Empty reports whether the pair carries no tokens at all.
func (p Pair) Empty() bool {
	return p.Access == "" && p.Refresh == ""
}

// Store is the injected key-value backend holding the credential pair.
// Implementations must make Set and Clear atomic with respect to Get: a
// concurrent reader sees either the old pair or the new one, never a mix.
type Store interface {
	Get(ctx context.Context) (Pair, error)
	Set(ctx context.Context, pair Pair) error
	Clear(ctx context.Context) error
}
