package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"lounge-scheduler/internal/handler/httperr"
	"lounge-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes a response for handlers that recorded an error without
// writing one. Public errors carry their own response; anything else is
// classified by its sentinel.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status, msg := httperr.StatusFor(last.Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		c.JSON(status, resp)
	}
}

// CustomRecovery turns a panic into a 500 and logs the stack of the recovered
// value with the request id.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = errs.New(fmt.Sprint(rec))
			}
			slog.Error("recovered from panic",
				"error", err,
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(errs.Wrap(err, "panic"), 8))

			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		}()
		c.Next()
	}
}
