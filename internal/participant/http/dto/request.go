// Package dto holds the request and response bodies of the participant endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/signup/internal/participant/domain"
	appValidation "github.com/allisson/signup/internal/validation"
)

// RegisterRequest is the body of POST /api/v1/register.
type RegisterRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	TelegramHandle string `json:"telegramHandle"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
}

// Validate rejects a request missing any mandatory field with ErrFieldsRequired.
// Formats are checked by the use case.
func (r *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.Required, appValidation.NotBlank),
		validation.Field(&r.LastName, validation.Required, appValidation.NotBlank),
		validation.Field(&r.TelegramHandle, validation.Required, appValidation.NotBlank),
		validation.Field(&r.Email, validation.Required, appValidation.NotBlank),
	)
	if err != nil {
		return domain.ErrFieldsRequired
	}
	return nil
}

// ToDomain converts the request into use case input.
func (r *RegisterRequest) ToDomain() *domain.RegisterInput {
	return &domain.RegisterInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		TelegramHandle: r.TelegramHandle,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
	}
}
