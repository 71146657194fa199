package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Code:       ErrValidation.Code,
	Message:    "invalid JSON payload",
	StatusCode: http.StatusUnprocessableEntity,
}
