package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pcd-jobs/internal/domain/principal"
	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/pkg/jwt"
	"pcd-jobs/internal/pkg/metrics"
	"pcd-jobs/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newApp(tokens jwt.Service) *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logging.Discard()).Middleware())
	app.Use(NewErrorMiddleware(logging.Discard()).Middleware())

	auth := NewAuthMiddleware(tokens).Middleware()
	app.Get("/me", auth, func(c fiber.Ctx) error {
		p, ok := PrincipalFrom(c)
		if !ok {
			return errors.New("no principal")
		}
		return response.OK(c, "", map[string]string{"id": p.ID.String(), "kind": p.Kind.String()})
	})
	app.Get("/pcd-only", auth, RequireKind(principal.KindPCD), func(c fiber.Ctx) error {
		return response.OK(c, "", nil)
	})
	app.Get("/boom", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "pq: secret detail", nil, errors.New("dsn=postgres://u:p@h"))
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("kaboom")
	})
	return app
}

func do(t *testing.T, app *fiber.App, path, token string) (int, response.Envelope, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	var env response.Envelope
	_ = json.Unmarshal(b, &env)
	return resp.StatusCode, env, resp.Header.Get(HeaderRequestID)
}

func TestAuthMiddleware(t *testing.T) {
	tokens := jwt.NewHMACService("secret", time.Hour)
	app := newApp(tokens)

	pcdTok, _, _ := tokens.Issue(principal.Principal{ID: uuid.New(), Kind: principal.KindPCD})
	companyTok, _, _ := tokens.Issue(principal.Principal{ID: uuid.New(), Kind: principal.KindCompany})
	otherTok, _, _ := jwt.NewHMACService("other", time.Hour).Issue(principal.Principal{ID: uuid.New(), Kind: principal.KindPCD})

	cases := []struct {
		name   string
		path   string
		header string
		status int
		msg    string
	}{
		{"missing header", "/me", "", 401, "Unauthorized"},
		{"wrong scheme", "/me", "Basic " + pcdTok, 401, "Unauthorized"},
		{"empty bearer", "/me", "Bearer   ", 401, "Unauthorized"},
		{"bad signature", "/me", "Bearer " + otherTok, 401, "Invalid token"},
		{"garbage", "/me", "Bearer abc.def", 401, "Invalid token"},
		{"valid", "/me", "Bearer " + pcdTok, 200, "ok"},
		{"lowercase scheme", "/me", "bearer " + companyTok, 200, "ok"},
		{"wrong kind", "/pcd-only", "Bearer " + companyTok, 403, "Forbidden"},
		{"right kind", "/pcd-only", "Bearer " + pcdTok, 200, "ok"},
	}
	for _, tc := range cases {
		status, env, _ := do(t, app, tc.path, tc.header)
		if status != tc.status || env.Message != tc.msg {
			t.Fatalf("%s: got %d %q, want %d %q", tc.name, status, env.Message, tc.status, tc.msg)
		}
	}
}

func TestAuthMiddleware_Expired(t *testing.T) {
	tokens := jwt.NewHMACService("secret", time.Nanosecond)
	tok, _, err := tokens.Issue(principal.Principal{ID: uuid.New(), Kind: principal.KindPCD})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)

	status, env, _ := do(t, newApp(tokens), "/me", "Bearer "+tok)
	if status != 401 || env.Message != "Token expired" {
		t.Fatalf("expected 401 Token expired, got %d %q", status, env.Message)
	}
}

func TestErrorMiddleware_HidesInternals(t *testing.T) {
	app := newApp(jwt.NewHMACService("secret", time.Hour))

	status, env, _ := do(t, app, "/boom", "")
	if status != 500 || env.Message != response.MessageInternalServerError {
		t.Fatalf("unexpected 500 rendering: %d %+v", status, env)
	}

	status, env, _ = do(t, app, "/panic", "")
	if status != 500 || env.Message != response.MessageInternalServerError {
		t.Fatalf("unexpected panic rendering: %d %+v", status, env)
	}
}

func TestErrorMiddleware_FiberErrors(t *testing.T) {
	app := newApp(jwt.NewHMACService("secret", time.Hour))
	status, env, _ := do(t, app, "/nope", "")
	if status != 404 || env.Status != 404 {
		t.Fatalf("expected 404 envelope, got %d %+v", status, env)
	}
}

func TestAccessLog_RequestID(t *testing.T) {
	app := newApp(jwt.NewHMACService("secret", time.Hour))

	_, _, rid := do(t, app, "/nope", "")
	if len(rid) != 26 {
		t.Fatalf("expected a generated ULID, got %q", rid)
	}

	req := httptest.NewRequest("GET", "/nope", nil)
	req.Header.Set(HeaderRequestID, "client-id-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if got := resp.Header.Get(HeaderRequestID); got != "client-id-1" {
		t.Fatalf("expected client id echoed, got %q", got)
	}

	req = httptest.NewRequest("GET", "/nope", nil)
	req.Header.Set(HeaderRequestID, strings.Repeat("x", 500))
	resp, _ = app.Test(req)
	if got := resp.Header.Get(HeaderRequestID); len(got) != 26 {
		t.Fatalf("oversized id must be replaced, got %q", got)
	}
}

func TestRateLimiter(t *testing.T) {
	m := metrics.New()
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Post("/login", NewRateLimiter(1, 2, m).Middleware(), func(c fiber.Ctx) error {
		return response.OK(c, "", nil)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		codes = append(codes, resp.StatusCode)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != 429 {
		t.Fatalf("expected burst of 2 then 429, got %v", codes)
	}
	if got := testutil.ToFloat64(m.RateLimitRejected); got != 1 {
		t.Fatalf("expected one rejection counted, got %v", got)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	if NewRateLimiter(0, 10, nil) != nil {
		t.Fatalf("zero rate must disable the limiter")
	}
	var l *RateLimiter
	app := fiber.New()
	app.Get("/", l.Middleware(), func(c fiber.Ctx) error { return c.SendStatus(204) })
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil || resp.StatusCode != 204 {
		t.Fatalf("nil limiter must pass through, got %v %v", resp, err)
	}
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	m := metrics.New()
	app := fiber.New()
	app.Use(NewMetricsMiddleware(m).Middleware())
	app.Get("/jobs/:id", func(c fiber.Ctx) error { return c.SendStatus(200) })

	for i := 0; i < 2; i++ {
		if _, err := app.Test(httptest.NewRequest("GET", "/jobs/"+uuid.NewString(), nil)); err != nil {
			t.Fatalf("request: %v", err)
		}
	}
	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/jobs/:id", "200")); got != 2 {
		t.Fatalf("expected 2 requests under the route pattern, got %v", got)
	}
}
