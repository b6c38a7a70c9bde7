package model

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the requester does not own the record.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated indicates no principal could be resolved.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidCredentials indicates email/password verification failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidInput indicates an empty or malformed request field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrSessionRevoked indicates the session was revoked.
	ErrSessionRevoked = errors.New("session revoked")
	// ErrSessionExpired indicates the session is past its expiry.
	ErrSessionExpired = errors.New("session expired")
	// ErrSessionMismatch indicates the presented token does not match the stored session.
	ErrSessionMismatch = errors.New("session mismatch")
)
