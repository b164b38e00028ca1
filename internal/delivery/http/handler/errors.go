package handler

import (
	"errors"

	"pcd-jobs/internal/delivery/http/middleware"
	"pcd-jobs/internal/domain/principal"
	"pcd-jobs/internal/pkg/response"
	"pcd-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	msgBadRequest         = "Bad request"
	msgValidation         = "Validation failed"
	msgEmailInUse         = "Email already in use"
	msgInvalidCredentials = "Invalid email or password"
	msgForbidden          = "Forbidden"
	msgNotFound           = "Not found"
	msgUnauthorized       = "Unauthorized"
)

func mapUsecaseError(err error) error {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, msgValidation, verr.Fields, err)
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, msgValidation, nil, err)
	case errors.Is(err, usecase.ErrEmailInUse):
		return middleware.NewAppError(fiber.StatusBadRequest, msgEmailInUse, nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusBadRequest, msgInvalidCredentials, nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, msgUnauthorized, nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, msgForbidden, nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, msgNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// errorMessage is the client-facing text for an error inside a multi-item
// response.
func errorMessage(err error) string {
	var app *middleware.AppError
	if errors.As(mapUsecaseError(err), &app) {
		return app.Message
	}
	return response.MessageInternalServerError
}

// paramID parses a path uuid. A malformed id cannot name a stored row, so it
// is reported as not found.
func paramID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, msgNotFound, nil, err)
	}
	return id, nil
}

func mustPrincipal(c fiber.Ctx) (principal.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return principal.Principal{}, middleware.NewAppError(fiber.StatusUnauthorized, msgUnauthorized, nil, nil)
	}
	return p, nil
}

func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgBadRequest, nil, err)
	}
	return nil
}
