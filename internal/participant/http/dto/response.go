package dto

import (
	"time"

	"github.com/allisson/signup/internal/participant/domain"
)

// RegistrationSuccessMessage is returned after a successful registration.
const RegistrationSuccessMessage = "Registration successful!"

// ParticipantResponse is the public representation of a participant.
type ParticipantResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	TelegramHandle string    `json:"telegramHandle"`
	Email          string    `json:"email"`
	PhoneNumber    *string   `json:"phoneNumber,omitempty"`
	RegisteredAt   time.Time `json:"registeredAt"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    ParticipantResponse `json:"data"`
}

// GetParticipantResponse wraps a single participant.
type GetParticipantResponse struct {
	Success bool                `json:"success"`
	Data    ParticipantResponse `json:"data"`
}

// ListParticipantsResponse is a page of participants.
type ListParticipantsResponse struct {
	Success bool                  `json:"success"`
	Data    []ParticipantResponse `json:"data"`
	Total   int                   `json:"total"`
	Offset  int                   `json:"offset"`
	Limit   int                   `json:"limit"`
}

// MapParticipantToResponse converts a domain participant to its response shape.
func MapParticipantToResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:             p.ID.String(),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		TelegramHandle: p.TelegramHandle,
		Email:          p.Email,
		PhoneNumber:    p.PhoneNumber,
		RegisteredAt:   p.RegisteredAt,
	}
}

// MapRegisterResponse builds the registration response.
func MapRegisterResponse(p *domain.Participant) RegisterResponse {
	return RegisterResponse{
		Success: true,
		Message: RegistrationSuccessMessage,
		Data:    MapParticipantToResponse(p),
	}
}

// MapListParticipantsResponse builds a list response. Data is never null.
func MapListParticipantsResponse(
	participants []*domain.Participant,
	total, offset, limit int,
) ListParticipantsResponse {
	data := make([]ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		data = append(data, MapParticipantToResponse(p))
	}
	return ListParticipantsResponse{
		Success: true,
		Data:    data,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	}
}
