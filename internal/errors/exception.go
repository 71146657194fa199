package errors

import (
	"errors"
	"net/http"
)

// Exception is a domain error that knows how it should be reported to a client.
// Two exceptions match under errors.Is when their Code is equal, so callers can
// compare against the package-level values regardless of the message.
type Exception struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	return ok && t.Code == e.Code
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsException reports whether err carries a client-facing message.
func IsException(err error) bool {
	var appErr *Exception
	return errors.As(err, &appErr)
}
