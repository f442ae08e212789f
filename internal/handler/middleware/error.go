package middleware

import (
	"log/slog"
	"net/http"

	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error when a handler aborted without writing a body.
// Internal errors carry the request ID so support can find the matching log line.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				if resp.Status >= http.StatusInternalServerError && resp.Detail == nil {
					resp.Detail = internalDetail(c)
				}
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalErrorResponse(c))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Newf("panic: %v", rec)
				slog.Error("recovered from panic",
					"error", err.Error(),
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", errs.ExtractStackLines(err, maxStackLines))

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse(c))
			}
		}()
		c.Next()
	}
}

func internalErrorResponse(c *gin.Context) httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	resp.Error.Code = "INTERNAL"
	resp.Detail = internalDetail(c)
	return resp
}

func internalDetail(c *gin.Context) any {
	if id := GetRequestID(c); id != "" {
		return gin.H{"requestId": id}
	}
	return nil
}
