package errors

import "net/http"

var ErrValidation = &Exception{
	Code:       "validation",
	Message:    "invalid input",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrInvalidLimit = &Exception{
	Code:       ErrValidation.Code,
	Message:    "limit must be positive",
	StatusCode: http.StatusUnprocessableEntity,
}

func Validation(message string) *Exception {
	return &Exception{
		Code:       ErrValidation.Code,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}
