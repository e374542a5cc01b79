// Package http provides the HTTP handlers for participant registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/signup/internal/errors"
	"github.com/allisson/signup/internal/httputil"
	"github.com/allisson/signup/internal/participant/http/dto"
	participantUseCase "github.com/allisson/signup/internal/participant/usecase"
)

// ParticipantHandler handles participant registration and lookup.
type ParticipantHandler struct {
	participantUseCase participantUseCase.ParticipantUseCase
	logger             *slog.Logger
}

// NewParticipantHandler creates a new participant handler with required dependencies.
func NewParticipantHandler(
	participantUseCase participantUseCase.ParticipantUseCase,
	logger *slog.Logger,
) *ParticipantHandler {
	return &ParticipantHandler{
		participantUseCase: participantUseCase,
		logger:             logger,
	}
}

// RegisterHandler registers a participant.
// POST /api/v1/register - public; returns 201 Created.
func (h *ParticipantHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, "Invalid request body", err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	participant, err := h.participantUseCase.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("participant registered", slog.String("participant_id", participant.ID.String()))

	c.JSON(http.StatusCreated, dto.MapRegisterResponse(participant))
}

// GetHandler returns a single participant.
// GET /api/v1/participants/:id - guarded.
func (h *ParticipantHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid participant id"), h.logger)
		return
	}

	participant, err := h.participantUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.GetParticipantResponse{
		Success: true,
		Data:    dto.MapParticipantToResponse(participant),
	})
}

// ListHandler returns a page of participants.
// GET /api/v1/participants?offset=0&limit=50 - guarded.
func (h *ParticipantHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	participants, total, err := h.participantUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapListParticipantsResponse(participants, total, offset, limit))
}
