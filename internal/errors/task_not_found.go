package errors

import (
	"fmt"
	"net/http"
)

var ErrTaskNotFound = &Exception{
	Code:       "task_not_found",
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

func TaskNotFound(id uint) *Exception {
	return &Exception{
		Code:       ErrTaskNotFound.Code,
		Message:    fmt.Sprintf("Task %d not found", id),
		StatusCode: http.StatusNotFound,
	}
}
