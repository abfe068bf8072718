package apimodels

import "github.com/pkg/errors"

// ошибки, текст которых показывается пользователю
type notFoundError struct {
	message string
}

func (e notFoundError) Error() string {
	return e.message
}

type validationError struct {
	message string
}

func (e validationError) Error() string {
	return e.message
}

func NewNotFoundError(message string) error {
	return notFoundError{message: message}
}

func NewValidationError(message string) error {
	return validationError{message: message}
}

func IsNotFound(err error) bool {
	var target notFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target validationError
	return errors.As(err, &target)
}
