package devrev

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingToken is returned when no API token is provided.
	ErrMissingToken = errors.New("API token is required")

	// ErrUnsupportedMethod is returned for HTTP methods other than GET
	// and POST. This is a programmer error and is never retried.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")

	// ErrUnauthorized is returned when the token is invalid or expired.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrForbidden is returned when the token lacks permission.
	ErrForbidden = errors.New("permission denied")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrConnection is returned when the API could not be reached at all.
	ErrConnection = errors.New("could not connect to the DevRev API")

	// ErrUnsupportedWorkType is returned when creating a work of a type
	// other than issue or task.
	ErrUnsupportedWorkType = errors.New("unsupported work type")

	// ErrPartRequired is returned when creating an issue without a part.
	ErrPartRequired = errors.New("applies_to_part is required for issues")

	// ErrUnsupportedObjectID is returned when an object ID prefix does not
	// map to any known endpoint.
	ErrUnsupportedObjectID = errors.New("unsupported object ID format")

	// ErrNoIdentity is returned when the "self" owner sentinel is used but
	// no authenticated identity is cached on the client.
	ErrNoIdentity = errors.New("no authenticated identity available")
)

// statusError is the internal carrier for a non-2xx HTTP response inside
// the retry loop, before classification.
type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// APIError is the structured error produced once retries are exhausted.
// It carries enough context for the caller to decide remediation.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
	Err        error // underlying transport error, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("devrev API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("devrev API error %d", e.StatusCode)
}

// Unwrap returns the underlying transport error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 403:
		return target == ErrForbidden
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	case 503:
		return target == ErrConnection
	}
	return false
}

// Fixed fallback messages for well-known status codes, used when the
// response body carries no parseable message.
var statusMessages = map[int]string{
	401: "authentication failed, check your API token",
	403: "you don't have permission to access this resource",
	404: "the requested resource was not found",
	429: "rate limit exceeded, please try again later",
}

const (
	genericAPIMessage = "an error occurred while communicating with the DevRev API"
	connectionMessage = "could not connect to the DevRev API, check your network connection"
)

// classifyError turns the last failure of a retry loop into a structured
// *APIError. An HTTP response yields its status code and the message or
// error field of its JSON body; a pure network failure yields status 503.
// The classifier always produces an error, never a bare value.
func classifyError(err error) *APIError {
	var serr *statusError
	if errors.As(err, &serr) {
		status := serr.StatusCode
		if status == 0 {
			status = 500
		}

		message := genericAPIMessage
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if jerr := json.Unmarshal([]byte(serr.Body), &body); jerr == nil {
			switch {
			case body.Message != "":
				message = body.Message
			case body.Error != "":
				message = body.Error
			}
		} else if fallback, ok := statusMessages[status]; ok {
			message = fallback
		}

		return &APIError{
			StatusCode: status,
			Message:    message,
			Body:       serr.Body,
		}
	}

	return &APIError{
		StatusCode: 503,
		Message:    connectionMessage,
		Err:        err,
	}
}
