package services

import (
	"errors"
)

// Error kinds returned by the service layer. Handlers map these to HTTP
// status codes with errors.Is; everything else is a 500.
var (
	ErrUnauthorized  = errors.New("login required")
	ErrInvalidTarget = errors.New("exactly one of claim_id or rebuttal_id must be set")
	ErrInvalidVote   = errors.New("vote_type must be like or dislike")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflicting concurrent update")
)
