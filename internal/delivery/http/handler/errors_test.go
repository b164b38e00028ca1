package handler

import (
	"errors"
	"fmt"
	"testing"

	"pcd-jobs/internal/delivery/http/middleware"
	"pcd-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func TestMapUsecaseError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{&usecase.ValidationError{Fields: map[string]string{"email": "required"}}, fiber.StatusBadRequest, msgValidation},
		{fmt.Errorf("register: %w", usecase.ErrEmailInUse), fiber.StatusBadRequest, msgEmailInUse},
		{usecase.ErrInvalidCredentials, fiber.StatusBadRequest, msgInvalidCredentials},
		{usecase.ErrForbidden, fiber.StatusForbidden, msgForbidden},
		{usecase.ErrNotFound, fiber.StatusNotFound, msgNotFound},
		{usecase.Storage("insert", errors.New("conn reset")), fiber.StatusInternalServerError, "internal server error"},
		{errors.New("unknown"), fiber.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		var app *middleware.AppError
		if !errors.As(mapUsecaseError(tc.err), &app) {
			t.Fatalf("%v: expected AppError", tc.err)
		}
		if app.StatusCode != tc.status || app.Message != tc.msg {
			t.Fatalf("%v: got %d %q, want %d %q", tc.err, app.StatusCode, app.Message, tc.status, tc.msg)
		}
	}
}

func TestMapUsecaseError_ValidationFieldsAreData(t *testing.T) {
	fields := map[string]string{"title": "required"}
	var app *middleware.AppError
	errors.As(mapUsecaseError(&usecase.ValidationError{Fields: fields}), &app)

	got, ok := app.Data.(map[string]string)
	if !ok || got["title"] != "required" {
		t.Fatalf("expected field errors as data, got %#v", app.Data)
	}
}

func TestErrorMessage_HidesStorageCause(t *testing.T) {
	if got := errorMessage(usecase.Storage("insert", errors.New("pq: relation missing"))); got != "internal server error" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := errorMessage(usecase.ErrEmailInUse); got != msgEmailInUse {
		t.Fatalf("unexpected message %q", got)
	}
}
