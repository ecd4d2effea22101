package validation

import (
	"net/http"

	"company-services/internal/shared/apperror"
	"company-services/internal/shared/messages"
)

// Error constructors for the validation pipeline. The HTTP status is the
// canonical classification used in logs; the transport always answers 200
// with the error envelope.

func ErrSchema(reason string) *apperror.AppError {
	return apperror.New(apperror.CodeInvalidInput, messages.SchemaError(reason), http.StatusBadRequest)
}

func ErrDoesNotExist(column string) *apperror.AppError {
	return apperror.New(apperror.CodeNotFound, messages.DoesNotExist(column), http.StatusNotFound)
}

func ErrWrongFormat(column string) *apperror.AppError {
	return apperror.New(apperror.CodeInvalidInput, messages.WrongFormat(column), http.StatusBadRequest)
}

func ErrNotUnique(column string) *apperror.AppError {
	return apperror.New(apperror.CodeConflict, messages.NotValid(column, "unique"), http.StatusConflict)
}

func ErrNotValid(column string) *apperror.AppError {
	return apperror.New(apperror.CodeInvalidInput, messages.NotValid(column, "valid"), http.StatusBadRequest)
}

func ErrEmpty(column string) *apperror.AppError {
	return apperror.New(apperror.CodeInvalidInput, messages.CannotBeEmpty(column), http.StatusBadRequest)
}

func ErrNotPositive(column string) *apperror.AppError {
	return apperror.New(apperror.CodeInvalidInput, messages.NotPositive(column), http.StatusBadRequest)
}
