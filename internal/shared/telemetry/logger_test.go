package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"
)

func captureStdout(t *testing.T, fn func()) []byte {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = orig
	}()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read output: %v", err)
	}
	return buf.Bytes()
}

func TestWriteReservedKeysWin(t *testing.T) {
	out := captureStdout(t, func() {
		Warn("store.load.skip", map[string]any{
			"msg":   "overridden",
			"key":   "resume_1.json",
			"error": errors.New("bad json"),
		})
	})

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(out), &payload); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if payload["msg"] != "store.load.skip" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "warn" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["error"] != "bad json" {
		t.Fatalf("expected error string, got %v", payload["error"])
	}
	if payload["key"] != "resume_1.json" {
		t.Fatalf("unexpected key: %v", payload["key"])
	}
}

func TestSetOutputRedirects(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Warn("redirected", map[string]any{"k": "v"})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("unmarshal: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "redirected" || entry["level"] != "warn" || entry["k"] != "v" {
		t.Fatalf("unexpected entry %v", entry)
	}
}
