package errors

import "net/http"

// HTTPError is an error carrying an HTTP status code, produced by the
// delivery layers when mapping domain errors to transport errors.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status carried by err, or 400 for plain errors.
func StatusOf(err error) int {
	if httpErr, ok := err.(*HTTPError); ok {
		return httpErr.StatusCode
	}
	return http.StatusBadRequest
}
