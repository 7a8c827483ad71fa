package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context, and panics raised by later handlers, into JSON error responses.
// AppErrors are returned with their code and message; anything else is
// logged and reported as a generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Get().Errorw("panic recovered",
					"panic", fmt.Sprint(r),
					"path", c.Request.URL.Path,
					"request_id", RequestID(c),
				)
				c.Abort()
				writeError(c, apperrors.ErrInternalServer)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
					"request_id", RequestID(c),
				)
			}
			writeError(c, appErr)
			return
		}

		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", RequestID(c),
		)
		writeError(c, apperrors.ErrInternalServer)
	}
}

func writeError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
