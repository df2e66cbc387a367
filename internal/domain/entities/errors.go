package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidPassword   = errors.New("invalid password")

	// Event errors
	ErrEventNotFound   = errors.New("event not found")
	ErrNotParticipant  = errors.New("user is not a participant of this event")
	ErrAlreadyJoined   = errors.New("user already joined this event")
	ErrNegativeOffset  = errors.New("reminder offset must be non-negative")
	ErrNotEventOwner   = errors.New("user is not the event owner")
	ErrInvalidCapacity = errors.New("capacity must be non-negative")

	// Invitation errors
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrInvitationProcessed = errors.New("invitation has already been processed")

	// Configuration errors
	ErrConfigurationMissing = errors.New("configuration row missing")

	// Session errors
	ErrInvalidToken = errors.New("invalid token")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
