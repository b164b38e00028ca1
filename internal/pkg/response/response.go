// Package response writes the {status, message, data} JSON envelope.
package response

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
)

type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageCreated             = "created"
	MessageInternalServerError = "internal server error"
)

func Success(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func OK(c fiber.Ctx, message string, data any) error {
	return write(c, fiber.StatusOK, message, data)
}

func Created(c fiber.Ctx, message string, data any) error {
	return write(c, fiber.StatusCreated, message, data)
}

// Error always writes data as given; callers pass nil unless the payload is
// safe to show, like validation field errors.
func Error(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data any) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(Envelope{Status: st, Message: normalizeMessage(message, st), Data: data})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessage(status)
}

// DefaultMessage is the lower-case status text, with 5xx collapsed into one
// message.
func DefaultMessage(status int) string {
	switch {
	case status == fiber.StatusCreated:
		return MessageCreated
	case status >= 200 && status < 300:
		return MessageOK
	case status >= 500:
		return MessageInternalServerError
	}
	if txt := http.StatusText(status); txt != "" {
		return strings.ToLower(txt)
	}
	return "error"
}
