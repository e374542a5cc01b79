package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/signup/internal/httputil"
	tokenDomain "github.com/allisson/signup/internal/token/domain"
	"github.com/allisson/signup/internal/token/http/dto"
	tokenService "github.com/allisson/signup/internal/token/service"
	tokenUseCase "github.com/allisson/signup/internal/token/usecase"
	"github.com/allisson/signup/internal/token/usecase/mocks"
)

func setupTokenTestHandler(t *testing.T) (*TokenHandler, *mocks.MockTokenUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockTokenUseCase := &mocks.MockTokenUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewTokenHandler(mockTokenUseCase, logger), mockTokenUseCase
}

func createTestContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestTokenHandler_GenerateHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		expectedInput := &tokenDomain.GenerateInput{Length: new(48), Type: new("alphanumeric")}
		mockUseCase.On("Generate", mock.Anything, expectedInput).
			Return(&tokenDomain.GenerateOutput{Token: "AbCd1234AbCd1234", Encoding: tokenDomain.EncodingAlphanumeric}, nil).
			Once()

		body := mustJSON(t, dto.GenerateTokenRequest{Length: new(48), Type: new("alphanumeric")})
		c, w := createTestContext(http.MethodPost, "/api/v1/generate-token", body)

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.GenerateTokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, "AbCd1234AbCd1234", response.Data.Token)
		assert.Equal(t, "SIMPLE_ACCESS_TOKEN=AbCd1234AbCd1234", response.Instructions.Example)
		assert.Nil(t, response.Data.IssuedAt)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_EmptyBodyUsesDefaults", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		mockUseCase.On("Generate", mock.Anything, &tokenDomain.GenerateInput{}).
			Return(&tokenDomain.GenerateOutput{Token: "00ff", Encoding: tokenDomain.EncodingHex}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/generate-token", nil)

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_WithTimestamp", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		issued := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		expires := issued.Add(24 * time.Hour)
		mockUseCase.On("Generate", mock.Anything, &tokenDomain.GenerateInput{IncludeTimestamp: true}).
			Return(&tokenDomain.GenerateOutput{Token: "00ff", IssuedAt: &issued, ExpiresAt: &expires}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/generate-token", []byte(`{"includeTimestamp":true}`))

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.GenerateTokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Data.IssuedAt)
		require.NotNil(t, response.Data.ExpiresAt)
		assert.Equal(t, expires, response.Data.ExpiresAt.UTC())
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/v1/generate-token", []byte(`{"length":"long"}`))

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Error_InternalHidesDetail", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		mockUseCase.On("Generate", mock.Anything, mock.Anything).
			Return(nil, errors.New("failed to read random bytes: entropy exhausted")).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/generate-token", []byte(`{}`))

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "entropy")
	})
}

func TestTokenHandler_GenerateHandler_ParameterRejection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := tokenUseCase.NewTokenUseCase(tokenService.NewGenerator(), tokenService.NewValidator())
	handler := NewTokenHandler(uc, logger)

	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{
			name:            "length below minimum",
			body:            `{"length":8}`,
			expectedMessage: "Token length must be between 16 and 128 characters",
		},
		{
			name:            "length above maximum",
			body:            `{"length":256}`,
			expectedMessage: "Token length must be between 16 and 128 characters",
		},
		{
			name:            "explicit zero length",
			body:            `{"length":0}`,
			expectedMessage: "Token length must be between 16 and 128 characters",
		},
		{
			name:            "explicit empty type",
			body:            `{"type":""}`,
			expectedMessage: "Token type must be 'hex', 'base64url', or 'alphanumeric'",
		},
		{
			name:            "unsupported type",
			body:            `{"type":"rot13"}`,
			expectedMessage: "Token type must be 'hex', 'base64url', or 'alphanumeric'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := createTestContext(http.MethodPost, "/api/v1/generate-token", []byte(tt.body))

			handler.GenerateHandler(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response httputil.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expectedMessage, response.Message)
		})
	}
}

func TestTokenHandler_ValidateHandler(t *testing.T) {
	t.Run("Success_Valid", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		mockUseCase.On("Validate", mock.Anything, "abcdef0123456789").
			Return(&tokenDomain.ValidateOutput{IsValid: true, TokenLength: 16}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/validate-token", []byte(`{"token":"abcdef0123456789"}`))

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"success":true,"isValid":true,"tokenLength":16,"message":"Token format is valid"}`,
			w.Body.String(),
		)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_Invalid", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		mockUseCase.On("Validate", mock.Anything, "short").
			Return(&tokenDomain.ValidateOutput{IsValid: false, TokenLength: 5}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/validate-token", []byte(`{"token":"short"}`))

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"success":true,"isValid":false,"tokenLength":5,"message":"Token format is invalid"}`,
			w.Body.String(),
		)
	})

	t.Run("Error_MissingToken", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		mockUseCase.On("Validate", mock.Anything, "").Return(nil, tokenDomain.ErrTokenRequired).Once()

		c, w := createTestContext(http.MethodPost, "/api/v1/validate-token", []byte(`{}`))

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Token is required", response.Message)
	})

	t.Run("Error_NonStringToken", func(t *testing.T) {
		handler, _ := setupTokenTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/v1/validate-token", []byte(`{"token":12345}`))

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
