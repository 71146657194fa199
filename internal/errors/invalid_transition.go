package errors

import (
	"fmt"
	"net/http"
)

var ErrInvalidTransition = &Exception{
	Code:       "invalid_transition",
	Message:    "invalid status transition",
	StatusCode: http.StatusBadRequest,
}

func InvalidTransition(id uint, from, to string) *Exception {
	return &Exception{
		Code:       ErrInvalidTransition.Code,
		Message:    fmt.Sprintf("Task %d cannot move from %s to %s", id, from, to),
		StatusCode: http.StatusBadRequest,
	}
}
