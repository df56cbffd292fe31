package logger_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/moti-254/chat-service/pkg/logger"
)

func captureStdOut(fn func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() {
		os.Stdout = orig
	}()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()
	return buf.String()
}

func TestInit_DevStd_TextOutput(t *testing.T) {
	cfg := logger.Config{
		Service: "chat-service",
		Version: "v0.0.1",
		Env:     logger.EnvDev,
		Backend: logger.BackendStd,
		Level:   slog.LevelDebug,
	}

	out := captureStdOut(func() {
		logger.Init(cfg)
		slog.Info("hello world")
	})

	if strings.Contains(out, "{") && strings.Contains(out, "}") {
		t.Fatalf("expected text output in dev/std, got JSON: %s", out)
	}
	if !strings.Contains(out, "hello world") {
		t.Fatalf("message missing: %s", out)
	}
	if !strings.Contains(out, "service=chat-service") {
		t.Fatalf("service attr missing: %s", out)
	}
	if !strings.Contains(out, "env=dev") {
		t.Fatalf("env attr missing: %s", out)
	}
}

func TestInit_Prod_ZapJSON(t *testing.T) {
	cfg := logger.Config{
		Service: "chat-service",
		Version: "v0.0.1",
		Env:     logger.EnvProd,
		Backend: logger.BackendZap,
	}

	out := captureStdOut(func() {
		logger.Init(cfg)
		slog.Info("structured entry")
	})

	if !strings.Contains(out, "{") {
		t.Fatalf("expected JSON output in prod/zap: %s", out)
	}
	if !strings.Contains(out, "structured entry") {
		t.Fatalf("message missing: %s", out)
	}
}

func TestL_FallsBackToDefault(t *testing.T) {
	if logger.L() == nil {
		t.Fatal("L() returned nil")
	}
}
