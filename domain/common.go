package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "invalid or expired token"
	MessageFailedTokenMissing   = "authorization header missing"
	MessageFailedTokenFormat    = "invalid authorization format"

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrTokenExpired    = errors.New("token expired")
	ErrUpstreamFailure = errors.New("upstream AI service failed")
)

// Identity is the authenticated caller, produced once by the auth middleware
// and consumed by every handler downstream.
type Identity struct {
	UserID uuid.UUID
}

type MessageResponse struct {
	Message string `json:"message"`
}
