package tdameritrade

import (
	"errors"
	"fmt"
)

// ErrMalformedPayload is returned when a success response does not have the expected shape.
var ErrMalformedPayload = errors.New("malformed payload")

// StatusError is returned for any non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Reason     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code %d - %s", e.StatusCode, e.Reason)
}
