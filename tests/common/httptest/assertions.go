//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"lounge-scheduler/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if targetStruct == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "failed to decode response JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the public message contains
// expectedErrorMsg. It returns the decoded body for further checks on detail.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) httperr.Response {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to decode error JSON: %s", w.Body.String()) {
		return resp
	}
	if expectedErrorMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedErrorMsg, "error message mismatch")
	}
	return resp
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
