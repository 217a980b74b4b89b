package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pdf "github.com/ScriptRock/textpdf"
)

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	out := filepath.Join(dir, "output", "pdf", "summary.pdf")

	path, err := run("", out, true, logger)
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(path) || filepath.Base(path) != "summary.pdf" {
		t.Errorf("run() = %q, want an absolute path to summary.pdf", path)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(filepath.Join("..", "..", "testdata", "summary.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Error("default document differs from testdata/summary.pdf")
	}
}

func TestRun_VerifyLogs(t *testing.T) {
	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug}))
	out := filepath.Join(t.TempDir(), "summary.pdf")

	if _, err := run("", out, true, logger); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logged.String(), "verified cross-reference table") {
		t.Errorf("expected a verification log line, got %q", logged.String())
	}
}

func TestRun_Overflow(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tall.yaml")
	script := "lines:\n" + strings.Repeat("  - [title, tall]\n", 40)
	if err := os.WriteFile(cfg, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "tall.pdf")

	_, err := run(cfg, out, false, logger)
	var overflow *pdf.OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected *pdf.OverflowError, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("no file should be written on overflow, stat err = %v", err)
	}
}
