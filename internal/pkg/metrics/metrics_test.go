package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.Auth("pcd", "login", OutcomeSuccess)
	m.Auth("pcd", "login", OutcomeSuccess)
	m.Talent("apply", OutcomeNoop)
	m.Cache("companies_public", true)

	if got := testutil.ToFloat64(m.AuthAttempts.WithLabelValues("pcd", "login", OutcomeSuccess)); got != 2 {
		t.Fatalf("expected 2 auth attempts, got %v", got)
	}
	if got := testutil.ToFloat64(m.TalentOperations.WithLabelValues("apply", OutcomeNoop)); got != 1 {
		t.Fatalf("expected 1 talent op, got %v", got)
	}
	if got := testutil.ToFloat64(m.CacheLookups.WithLabelValues("companies_public", "hit")); got != 1 {
		t.Fatalf("expected 1 cache hit, got %v", got)
	}
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	m.Auth("company", "login", OutcomeError)
	m.Talent("withdraw", OutcomeSuccess)
	m.Cache("x", false)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Auth("company", "register", OutcomeSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "auth_attempts_total") {
		t.Fatalf("expected auth_attempts_total in exposition")
	}
}

func TestNew_Independent(t *testing.T) {
	a, b := New(), New()
	a.Auth("pcd", "login", OutcomeSuccess)
	if got := testutil.ToFloat64(b.AuthAttempts.WithLabelValues("pcd", "login", OutcomeSuccess)); got != 0 {
		t.Fatalf("registries must not share state, got %v", got)
	}
}
