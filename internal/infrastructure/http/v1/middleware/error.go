package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyfolio/internal/core/apperror"
	"skyfolio/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON
// responses: {"error": msg} for client errors and not-found,
// {"error": msg, "details": detail} for server errors. Handlers
// register errors on the context; this is the single place responses
// are rendered.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			body := gin.H{"error": appErr.Message}
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				detail := appErr.Message
				if appErr.Err != nil {
					detail = appErr.Err.Error()
				}
				body["details"] = detail
			}

			c.JSON(appErr.HTTPStatus, body)
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": err.Error(),
		})
	}
}
