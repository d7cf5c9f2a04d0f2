package sheet

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is wrapped by every error caused by a payload that does
// not look like a gviz table response.
var ErrMalformedResponse = errors.New("malformed response")

// TransportError reports a fetch that completed with a non-success status.
type TransportError struct {
	StatusCode int
	URL        string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}

// IsTransport reports whether err was caused by a non-success fetch status.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsMalformed reports whether err was caused by an unusable payload.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
