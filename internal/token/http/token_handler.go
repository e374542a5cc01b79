// Package http provides the HTTP handlers for token generation and validation.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/signup/internal/httputil"
	"github.com/allisson/signup/internal/token/http/dto"
	tokenUseCase "github.com/allisson/signup/internal/token/usecase"
)

// TokenHandler handles the administrative token endpoints.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(tokenUseCase tokenUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// GenerateHandler generates a new access token.
// POST /api/v1/generate-token - an empty body uses the defaults.
func (h *TokenHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.HandleBadRequestGin(c, "Invalid request body", err, h.logger)
		return
	}

	output, err := h.tokenUseCase.Generate(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGenerateOutputToResponse(output))
}

// ValidateHandler checks the format of a candidate token.
// POST /api/v1/validate-token
func (h *TokenHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.HandleBadRequestGin(c, "Invalid request body", err, h.logger)
		return
	}

	output, err := h.tokenUseCase.Validate(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidateOutputToResponse(output))
}
