package service

import "strings"

// ValidationError собирает все пустые обязательные поля запроса,
// чтобы отдать их пользователю одним сообщением
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

func newValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
