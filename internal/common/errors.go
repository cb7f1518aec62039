// Package common содержит ошибки, общие для слоёв хранилища, сервисов и HTTP-обработчиков.
package common

import "errors"

var (
	// ошибки хранилища
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// ошибки сервисов
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ошибки токена сессии
	ErrTokenMissing = errors.New("token missing")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// ValidationError описывает некорректные входные данные.
// Message отдаётся клиенту как есть.
type ValidationError struct {
	Message string
}

// NewValidationError создаёт ValidationError с сообщением для клиента.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is позволяет проверять ошибку через errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
