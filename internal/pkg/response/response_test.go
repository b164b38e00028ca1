package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func decode(t *testing.T, app *fiber.App, path string) (int, Envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		t.Fatalf("decode %s: %v", string(b), err)
	}
	return resp.StatusCode, env
}

func TestEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error { return OK(c, "", map[string]string{"a": "b"}) })
	app.Get("/created", func(c fiber.Ctx) error { return Created(c, "Company registered", nil) })
	app.Get("/bad-status", func(c fiber.Ctx) error { return Error(c, 42, "", nil) })
	app.Get("/forbidden", func(c fiber.Ctx) error { return Error(c, fiber.StatusForbidden, "", nil) })

	code, env := decode(t, app, "/ok")
	if code != 200 || env.Status != 200 || env.Message != MessageOK || env.Data == nil {
		t.Fatalf("unexpected /ok: %d %+v", code, env)
	}
	code, env = decode(t, app, "/created")
	if code != 201 || env.Message != "Company registered" {
		t.Fatalf("unexpected /created: %d %+v", code, env)
	}
	code, env = decode(t, app, "/bad-status")
	if code != 500 || env.Message != MessageInternalServerError {
		t.Fatalf("unexpected /bad-status: %d %+v", code, env)
	}
	_, env = decode(t, app, "/forbidden")
	if env.Message != "forbidden" {
		t.Fatalf("unexpected default message %q", env.Message)
	}
}
