package handler

import (
	"errors"

	"github.com/evandrarf/lingua-level-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-level-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
)

// requestError keeps per-field validation errors intact and turns anything
// else from parsing into a 400.
func requestError(err error) error {
	var fields *validate.FieldsError
	if errors.As(err, &fields) {
		return fields
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

// usecaseError maps usecase failures to 400 for bad input and 500 otherwise.
func usecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
