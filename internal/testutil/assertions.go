package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode checks the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// DecodeJSON decodes the response body into target
func DecodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NoError(t, json.Unmarshal(body, target), "failed to decode response body: %s", string(body))
}

// AssertEnvelopeError checks the admin error envelope
func AssertEnvelopeError(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	AssertStatusCode(t, resp, expectedStatus)

	var envelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	DecodeJSON(t, resp, &envelope)

	assert.False(t, envelope.Success, "expected success=false")
	if expectedMessage != "" {
		assert.Equal(t, expectedMessage, envelope.Error)
	}
}

// DeviceEnvelope is the fixed device protocol response shape
type DeviceEnvelope struct {
	Result  int             `json:"result"`
	Success bool            `json:"success"`
	Msg     string          `json:"msg"`
	Total   *int64          `json:"total"`
	Data    json.RawMessage `json:"data"`
}

// AssertDeviceFailure checks a device protocol failure response
func AssertDeviceFailure(t *testing.T, resp *http.Response, expectedStatus int, expectedMsg string) DeviceEnvelope {
	t.Helper()

	AssertStatusCode(t, resp, expectedStatus)

	var envelope DeviceEnvelope
	DecodeJSON(t, resp, &envelope)

	assert.Equal(t, 0, envelope.Result, "expected result=0")
	assert.False(t, envelope.Success, "expected success=false")
	if expectedMsg != "" {
		assert.Equal(t, expectedMsg, envelope.Msg)
	}
	return envelope
}

// AssertDeviceSuccess checks a device protocol success response
func AssertDeviceSuccess(t *testing.T, resp *http.Response) DeviceEnvelope {
	t.Helper()

	AssertStatusCode(t, resp, http.StatusOK)

	var envelope DeviceEnvelope
	DecodeJSON(t, resp, &envelope)

	assert.Equal(t, 1, envelope.Result, "expected result=1")
	assert.True(t, envelope.Success, "expected success=true")
	return envelope
}
