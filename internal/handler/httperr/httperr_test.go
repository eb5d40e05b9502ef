//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"lounge-scheduler/internal/handler/httperr"
	"lounge-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid window", err: errs.ErrInvalidWindow, want: http.StatusBadRequest},
		{name: "validation", err: errs.Wrap(errs.ErrValidation, "customer"), want: http.StatusBadRequest},
		{name: "configuration", err: errs.ErrConfiguration, want: http.StatusBadRequest},
		{name: "not found", err: errs.Mark(errs.New("booking b-1"), errs.ErrNotFound), want: http.StatusNotFound},
		{name: "overlap", err: errs.ErrOverlap, want: http.StatusConflict},
		{name: "machine unavailable", err: errs.ErrMachineUnavailable, want: http.StatusConflict},
		{name: "invalid transition", err: errs.ErrInvalidTransition, want: http.StatusConflict},
		{name: "subscription inactive", err: errs.ErrSubscriptionInactive, want: http.StatusUnprocessableEntity},
		{name: "offer not active", err: errs.ErrOfferNotActive, want: http.StatusUnprocessableEntity},
		{name: "database failure", err: errs.ErrDatabaseOperationFailed, want: http.StatusInternalServerError},
		{name: "uncategorised", err: assert.AnError, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := httperr.StatusFor(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, msg)
		})
	}
}
