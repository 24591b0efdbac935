package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	ctxlog "github.com/tcr/pretty-cron/internal/log"
	"github.com/tcr/pretty-cron/internal/requestid"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(ctxlog.NewContextHandler(slog.NewJSONHandler(buf, nil)))
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log record %q: %v", buf.String(), err)
	}
	return rec
}

func TestContextHandler_AddsRequestIDAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf)

	ctx := requestid.WithRequestID(context.Background(), "req-1")
	ctx = ctxlog.With(ctx, slog.String("expr", "* * * * *"))
	ctx = ctxlog.With(ctx, slog.Int("preview", 3))
	logger.InfoContext(ctx, "described")

	rec := decode(t, &buf)
	if rec["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want req-1", rec["request_id"])
	}
	if rec["expr"] != "* * * * *" {
		t.Errorf("expr = %v", rec["expr"])
	}
	if rec["preview"] != float64(3) {
		t.Errorf("preview = %v, want 3", rec["preview"])
	}
}

func TestContextHandler_PlainContext(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf).With("component", "test").InfoContext(context.Background(), "hello")

	rec := decode(t, &buf)
	if _, ok := rec["request_id"]; ok {
		t.Error("request_id should be absent without one in the context")
	}
	if rec["component"] != "test" {
		t.Errorf("component = %v, want test", rec["component"])
	}
}

func TestWith_DoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf)

	parent := ctxlog.With(context.Background(), slog.String("a", "1"))
	_ = ctxlog.With(parent, slog.String("b", "2"))
	logger.InfoContext(parent, "parent")

	rec := decode(t, &buf)
	if _, ok := rec["b"]; ok {
		t.Error("child attribute leaked into parent context")
	}
}

func TestNewLogger_JSONOutsideLocal(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.NewLogger(&buf, "production", slog.LevelInfo)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %q", buf.String())
	}

	logger.InfoContext(requestid.WithRequestID(context.Background(), "req-2"), "shown")
	rec := decode(t, &buf)
	if rec["msg"] != "shown" || rec["request_id"] != "req-2" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestNewLogger_LocalUsesTint(t *testing.T) {
	var buf bytes.Buffer
	ctxlog.NewLogger(&buf, "local", slog.LevelDebug).Debug("colored")

	if !bytes.Contains(buf.Bytes(), []byte("colored")) {
		t.Errorf("missing message in %q", buf.String())
	}
	if json.Valid(buf.Bytes()) {
		t.Error("local logger should not emit JSON")
	}
}
