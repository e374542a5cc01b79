package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/signup/internal/errors"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// ParsePagination reads the offset and limit query parameters.
// Offset defaults to 0 and limit to 50; a limit outside 1..100 is rejected.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput, "offset must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput, "limit must be between 1 and 100")
	}

	return offset, limit, nil
}
