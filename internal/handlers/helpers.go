package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/logger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/uuid"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseOptionalID validates an optional UUID field from a request body.
func parseOptionalID(field string, v *string) (*string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*v))
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+field)
	}
	return &id, nil
}

// parseFlexibleTime accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
// A plain date is midnight in loc, the zone "today" is judged in.
func parseFlexibleTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

// datePlaceholders are the hint strings date inputs submit when left blank.
var datePlaceholders = map[string]bool{
	"dd/mm/yyyy": true,
	"mm/dd/yyyy": true,
	"yyyy-mm-dd": true,
}

// parseOptionalDate turns a date field into a *time.Time. Empty values and
// placeholders mean the date is absent.
func parseOptionalDate(field string, v *string, loc *time.Location) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	if s == "" || datePlaceholders[strings.ToLower(s)] {
		return nil, nil
	}
	t, err := parseFlexibleTime(s, loc)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+field+" format, use RFC3339 or YYYY-MM-DD")
	}
	return &t, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    apperrors.ErrInternalServer.Code,
			Message: apperrors.ErrInternalServer.Message,
		},
	})
}
