// Package usecase defines the application use case interfaces and their
// input/output types.
package usecase

import "storefront/internal/domain/entity"

// Session describes the current browser session. ID is the session cookie
// value; Identity is nil for anonymous visitors. Token is the raw access
// token for the signed-in identity, carried so background work (the
// notification poller) can keep calling the backend between requests.
type Session struct {
	ID       string
	Identity *entity.Identity
	Token    string
}

// IsAuthenticated reports whether the session belongs to a signed-in user.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Identity != nil
}
