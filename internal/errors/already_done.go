package errors

import (
	"fmt"
	"net/http"
)

var ErrAlreadyDone = &Exception{
	Code:       "already_done",
	Message:    "Task is already done",
	StatusCode: http.StatusBadRequest,
}

func AlreadyDone(id uint) *Exception {
	return &Exception{
		Code:       ErrAlreadyDone.Code,
		Message:    fmt.Sprintf("Task %d is already done", id),
		StatusCode: http.StatusBadRequest,
	}
}
