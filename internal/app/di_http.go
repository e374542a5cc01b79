package app

import (
	"fmt"

	"github.com/allisson/signup/internal/http"
	participantHTTP "github.com/allisson/signup/internal/participant/http"
	paymentHTTP "github.com/allisson/signup/internal/payment/http"
	tokenHTTP "github.com/allisson/signup/internal/token/http"
)

// httpHandlers builds the handlers mounted by the API server.
func (c *Container) httpHandlers() (http.Handlers, error) {
	logger := c.Logger()

	participantUseCase, err := c.ParticipantUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get participant use case for http server: %w", err)
	}

	paymentUseCase, err := c.PaymentUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get payment use case for http server: %w", err)
	}

	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get token use case for http server: %w", err)
	}

	return http.Handlers{
		Participant: participantHTTP.NewParticipantHandler(participantUseCase, logger),
		Payment:     paymentHTTP.NewPaymentHandler(paymentUseCase, c.Guard(), logger),
		Token:       tokenHTTP.NewTokenHandler(tokenUseCase, logger),
	}, nil
}
