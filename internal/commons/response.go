package commons

import "strings"

// Response is the uniform envelope every ledger service method returns. The
// command surface renders Message (and Detail on failure) instead of mapping
// conditions to status codes.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// Detail joins the error strings for single-line display; empty when the
// response succeeded or carries no detail.
func (r Response[T]) Detail() string {
	return strings.Join(r.Errors, "; ")
}
