package httperr

import (
	"net/http"

	"lounge-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
}

var mappings = []mapping{
	{errs.ErrInvalidWindow, http.StatusBadRequest, "Invalid time window"},
	{errs.ErrValidation, http.StatusBadRequest, "Validation failed"},
	{errs.ErrConfiguration, http.StatusBadRequest, "Invalid parameter"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrOverlap, http.StatusConflict, "Time window overlaps an existing booking"},
	{errs.ErrMachineUnavailable, http.StatusConflict, "Machine unavailable"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Invalid state transition"},
	{errs.ErrSubscriptionInactive, http.StatusUnprocessableEntity, "Subscription inactive"},
	{errs.ErrOfferNotActive, http.StatusUnprocessableEntity, "Offer not active"},
}

// StatusFor maps a categorised error onto an HTTP status and public message.
func StatusFor(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort responds with the status of a usecase error. Client errors carry the
// error text as detail; server errors do not.
func Abort(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	var detail any
	if status < http.StatusInternalServerError {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}
