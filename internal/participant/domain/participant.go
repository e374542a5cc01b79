// Package domain defines the participant entity and the events it emits.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/signup/internal/errors"
)

// EventTypeRegistered is the outbox event type written for each new participant.
const EventTypeRegistered = "participant.registered"

// Participant is a person registered for the class.
type Participant struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	TelegramHandle string
	Email          string
	PhoneNumber    *string
	RegisteredAt   time.Time
}

// RegisterInput contains the data submitted by a participant.
type RegisterInput struct {
	FirstName      string
	LastName       string
	TelegramHandle string
	Email          string
	PhoneNumber    string
}

// RegisteredEvent is the outbox payload of EventTypeRegistered.
type RegisteredEvent struct {
	ParticipantID  uuid.UUID `json:"participantId"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	TelegramHandle string    `json:"telegramHandle"`
	Email          string    `json:"email"`
}

// Domain-specific errors for participant operations.
var (
	// ErrParticipantNotFound indicates the requested participant does not exist.
	ErrParticipantNotFound = errors.Wrap(errors.ErrNotFound, "participant not found")

	// ErrAlreadyRegistered indicates a participant with the same email exists.
	ErrAlreadyRegistered = errors.Wrap(errors.ErrConflict, "You have already registered.")

	// ErrFieldsRequired indicates a required registration field is missing.
	ErrFieldsRequired = errors.Wrap(errors.ErrInvalidInput, "All fields are required.")
)
