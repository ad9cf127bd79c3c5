package model

import (
	"errors"
	"fmt"
)

// Storage-level sentinel errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrStatisticsNotFound = errors.New("statistics not found")
)

// ErrorClass separates caller mistakes from system failures.
type ErrorClass int

const (
	// ClientError maps to HTTP 4xx.
	ClientError ErrorClass = iota
	// ServerError maps to HTTP 5xx.
	ServerError
)

// Domain error codes.
const (
	CodeInvalidHand      = "INVALID_HAND"
	CodeInvalidUsername  = "INVALID_USERNAME"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeRandomGeneration = "RANDOM_GENERATION_ERROR"
	CodeGameError        = "GAME_ERROR"
)

// DomainError is a classified domain failure. Code and Class are queryable
// so boundary layers never have to parse messages.
type DomainError struct {
	Code    string
	Class   ErrorClass
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the original cause for diagnostics.
func (e *DomainError) Unwrap() error { return e.Cause }

// InvalidHand reports a missing or unrecognized player hand.
func InvalidHand(message string) *DomainError {
	return &DomainError{Code: CodeInvalidHand, Class: ClientError, Message: message}
}

// InvalidUsername reports a username that is empty, out of bounds, or taken.
func InvalidUsername(message string) *DomainError {
	return &DomainError{Code: CodeInvalidUsername, Class: ClientError, Message: message}
}

// UserNotFound reports a lookup for a user that does not exist.
func UserNotFound(message string) *DomainError {
	return &DomainError{Code: CodeUserNotFound, Class: ClientError, Message: message}
}

// RandomGenerationError reports a failure of the entropy source.
func RandomGenerationError(message string, cause error) *DomainError {
	return &DomainError{Code: CodeRandomGeneration, Class: ServerError, Message: message, Cause: cause}
}

// GameError wraps an unanticipated failure during play, preserving the cause.
func GameError(message string, cause error) *DomainError {
	return &DomainError{Code: CodeGameError, Class: ServerError, Message: message, Cause: cause}
}

// AsDomainError unwraps err to a DomainError if one is in its chain.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
