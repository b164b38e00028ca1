package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"pcd-jobs/internal/config"
	"pcd-jobs/internal/logging"
)

func TestNewRedis_DisabledIsPassThrough(t *testing.T) {
	r := NewRedis(context.Background(), config.RedisConfig{Enabled: false}, logging.Discard())
	if r.Available() {
		t.Fatalf("disabled cache must not be available")
	}

	ctx := context.Background()
	if err := r.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	var out map[string]string
	hit, err := r.GetJSON(ctx, "k", &out)
	if err != nil || hit {
		t.Fatalf("expected miss, got hit=%v err=%v", hit, err)
	}
	if err := r.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := r.DeleteByPattern(ctx, "k*"); err != nil {
		t.Fatalf("DeleteByPattern: %v", err)
	}
	if err := r.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNewRedis_UnreachableFallsBack(t *testing.T) {
	r := NewRedis(context.Background(), config.RedisConfig{
		Enabled: true,
		Host:    "127.0.0.1",
		Port:    "1",
	}, logging.Discard())
	if r.Available() {
		t.Fatalf("unreachable redis must fall back to pass-through")
	}
}

func TestNilRedis(t *testing.T) {
	var r *Redis
	if r.Available() {
		t.Fatalf("nil cache is never available")
	}
	var out any
	if hit, err := r.GetJSON(context.Background(), "k", &out); hit || err != nil {
		t.Fatalf("expected miss, got hit=%v err=%v", hit, err)
	}
}
