package domain

// AuthSession is the resolved identity for one request. It is derived from a
// validated bearer token, lives only for the request's duration and is never
// persisted.
type AuthSession struct {
	Username string
	Role     *Role
}

// HasRole reports whether the session carries the given role claim.
func (s *AuthSession) HasRole(role Role) bool {
	return s != nil && s.Role != nil && *s.Role == role
}
