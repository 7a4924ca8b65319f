package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. AppErrors are returned with
// their code and message; consistency warnings from partially failed
// workflows additionally report that the store needs manual review.
// Unexpected errors are logged and return a generic internal error to avoid
// leaking details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			log := logger.Get()
			switch {
			case appErr.Consistency:
				log.Warnw("store left inconsistent by partial workflow failure",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", internalDetail(appErr),
					"path", c.Request.URL.Path,
				)
			case appErr.Internal != nil:
				log.Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			body := gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			}
			if appErr.Consistency {
				body["consistency_warning"] = true
			}
			c.JSON(appErr.StatusCode, gin.H{"error": body})
			return
		}

		// Unexpected error: log full details, return generic message
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
			"error": gin.H{
				"code":    apperrors.ErrInternalServer.Code,
				"message": apperrors.ErrInternalServer.Message,
			},
		})
	}
}

func internalDetail(appErr *apperrors.AppError) string {
	if appErr.Internal == nil {
		return ""
	}
	return appErr.Internal.Error()
}
