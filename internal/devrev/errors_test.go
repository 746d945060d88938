package devrev

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifyError_JSONMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", 400, `{"message": "bad request param"}`, "bad request param"},
		{"error field", 400, `{"error": "something broke"}`, "something broke"},
		{"message preferred over error", 400, `{"message": "msg", "error": "err"}`, "msg"},
		{"parsed but empty", 400, `{"detail": "other"}`, genericAPIMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := classifyError(&statusError{StatusCode: tt.status, Body: tt.body})
			if apiErr.Message != tt.message {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.message)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Body != tt.body {
				t.Errorf("Body = %q, want %q", apiErr.Body, tt.body)
			}
		})
	}
}

func TestClassifyError_StatusFallbacks(t *testing.T) {
	tests := []struct {
		status   int
		contains string
	}{
		{401, "authentication failed"},
		{403, "permission"},
		{404, "not found"},
		{429, "rate limit"},
		{500, genericAPIMessage},
	}

	for _, tt := range tests {
		apiErr := classifyError(&statusError{StatusCode: tt.status, Body: "<html>not json</html>"})
		if !strings.Contains(apiErr.Message, tt.contains) {
			t.Errorf("status %d: Message = %q, want it to contain %q", tt.status, apiErr.Message, tt.contains)
		}
	}
}

func TestClassifyError_MissingStatusDefaultsTo500(t *testing.T) {
	apiErr := classifyError(&statusError{Body: "oops"})
	if apiErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
}

func TestClassifyError_NetworkFailure(t *testing.T) {
	underlying := errors.New("dial tcp: connection refused")
	apiErr := classifyError(underlying)

	if apiErr.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", apiErr.StatusCode)
	}
	if apiErr.Message != connectionMessage {
		t.Errorf("Message = %q, want %q", apiErr.Message, connectionMessage)
	}
	if !errors.Is(apiErr, ErrConnection) {
		t.Error("errors.Is(apiErr, ErrConnection) = false")
	}
	if !errors.Is(apiErr, underlying) {
		t.Error("classified network error does not unwrap to the transport error")
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{429, ErrRateLimited},
		{503, ErrConnection},
	}

	for _, tt := range tests {
		err := &APIError{StatusCode: tt.status}
		if !errors.Is(err, tt.sentinel) {
			t.Errorf("APIError{%d} does not match %v", tt.status, tt.sentinel)
		}
	}

	if errors.Is(&APIError{StatusCode: 404}, ErrUnauthorized) {
		t.Error("APIError{404} matched ErrUnauthorized")
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "the requested resource was not found"}
	want := "devrev API error 404: the requested resource was not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &APIError{StatusCode: 500}
	if bare.Error() != "devrev API error 500" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "devrev API error 500")
	}
}
