package logger

import (
	"context"
	"log/slog"
	"testing"

	"watch-store-backend/internal/config"
)

func TestNewRespectsLevel(t *testing.T) {
	l := New(config.Log{Level: "warn", Format: "json"})

	if l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("did not expect info level to be enabled")
	}
	if !l.Enabled(context.Background(), slog.LevelWarn) {
		t.Errorf("expected warn level to be enabled")
	}

	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestNewTextFormat(t *testing.T) {
	l := New(config.Log{Level: "debug", Format: "text"})

	if _, ok := l.Handler().(*slog.TextHandler); !ok {
		t.Fatalf("expected text handler, got %T", l.Handler())
	}
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be enabled")
	}
}
