package middleware

import (
	"time"

	"pcd-jobs/internal/logging"
	"pcd-jobs/internal/pkg/ids"

	"github.com/gofiber/fiber/v3"
)

const (
	HeaderRequestID    = "X-Request-ID"
	ctxRequestIDKey    = "request_id"
	maxRequestIDLength = 128
)

type AccessLogMiddleware struct {
	logger logging.Logger
}

func NewAccessLogMiddleware(logger logging.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware assigns a request id (client supplied or a new ULID), echoes it
// back and logs one line per request.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" || len(rid) > maxRequestIDLength {
			rid = ids.NewRequestID()
		}
		c.Locals(ctxRequestIDKey, rid)
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []any{
			"request_id", rid,
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start),
			"ip", c.IP(),
			"req_bytes", len(c.Body()),
			"resp_bytes", len(c.Response().Body()),
			"ua", c.Get(fiber.HeaderUserAgent),
		}
		if p, ok := PrincipalFrom(c); ok {
			attrs = append(attrs, "principal_kind", p.Kind.String(), "principal_id", p.ID.String())
		}

		switch {
		case status >= 500:
			m.logger.Error(c.Context(), "http request", attrs...)
		case status >= 400:
			m.logger.Warn(c.Context(), "http request", attrs...)
		default:
			m.logger.Info(c.Context(), "http request", attrs...)
		}

		return err
	}
}

func RequestIDFrom(c fiber.Ctx) string {
	rid, _ := c.Locals(ctxRequestIDKey).(string)
	return rid
}
