package service

import "errors"

// ErrInvalidToken covers every token verification failure: bad signature,
// wrong signing method, expired, malformed, or a subject that no longer
// exists. Callers translate it into an Unauthorized response.
var ErrInvalidToken = errors.New("invalid or expired token")
