package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter("json", slog.LevelInfo, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter() error = %v", err)
	}
	ctx := WithLogger(context.Background(), l.With("runId", "r1"))
	FromContext(ctx).Debug(ctx, "hidden")
	FromContext(ctx).Info(ctx, "CMD:stack.up/S", "resourceId", "grocery-list/dev")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["msg"] != "CMD:stack.up/S" || entry["runId"] != "r1" || entry["resourceId"] != "grocery-list/dev" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewWithWriter_HumanOmitsTime(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter("human", slog.LevelDebug, &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Debugf(context.Background(), "declared %d nodes", 5)
	out := buf.String()
	if strings.Contains(out, "time=") {
		t.Errorf("human output has a timestamp: %q", out)
	}
	if !strings.Contains(out, `msg="declared 5 nodes"`) {
		t.Errorf("human output = %q", out)
	}
}

func TestNewWithWriter_UnknownFormat(t *testing.T) {
	if _, err := NewWithWriter("xml", slog.LevelInfo, &bytes.Buffer{}); err == nil {
		t.Error("NewWithWriter() should reject unknown formats")
	}
}

func TestFromContext_Default(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Error("FromContext() returned nil without a logger")
	}
}
