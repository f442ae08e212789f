//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail"`
}

// AssertSuccessResponse checks the status and, for 2xx answers, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that error.message contains expectedMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	body := decodeError(t, w, expectedStatus)
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg, "error message mismatch")
	}
}

// AssertErrorCode checks the status and the machine-readable error.code.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()

	body := decodeError(t, w, expectedStatus)
	assert.Equal(t, expectedCode, body.Error.Code, "error code mismatch")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	var body errorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "failed to decode error body: %s", w.Body.String())
	return body
}

// AssertHeaders compares each expected header; an empty value asserts the header is absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Empty(t, w.Header().Values(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
