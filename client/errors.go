package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse is returned when a 2xx body does not have the
// shape the endpoint promises.
var ErrMalformedResponse = errors.New("malformed response")

// HTTPError reports a non-2xx answer from the API. Body holds the raw
// response text, which for plain-text failures is the server's message.
type HTTPError struct {
	Method     string
	URL        string
	Status     int
	StatusText string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Status, e.StatusText)
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an
// HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
