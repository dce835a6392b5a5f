package local

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"resume-editor/internal/shared/storage/object"
)

func TestPutOpenRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := New(dir)
	ctx := context.Background()

	n, err := store.Put(ctx, "resume_1.json", "application/json", strings.NewReader(`{"id":"resume_1"}`))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if n != int64(len(`{"id":"resume_1"}`)) {
		t.Fatalf("unexpected size %d", n)
	}

	rc, err := store.Open(ctx, "resume_1.json")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(body) != `{"id":"resume_1"}` {
		t.Fatalf("unexpected body %q", body)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the object file, found %d entries", len(entries))
	}
}

func TestOpenMissingReturnsNotFound(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Open(context.Background(), "resume_missing.json")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"../escape.json", "/etc/passwd", "", "a/../../b"} {
		if _, err := store.Put(ctx, key, "application/json", strings.NewReader("x")); err == nil {
			t.Fatalf("expected Put(%q) to fail", key)
		}
		if _, err := store.Open(ctx, key); err == nil {
			t.Fatalf("expected Open(%q) to fail", key)
		}
	}
}

func TestListMatchesPattern(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	ctx := context.Background()

	for _, key := range []string{"resume_b.json", "resume_a.json", "notes.txt"} {
		if _, err := store.Put(ctx, key, "", strings.NewReader("{}")); err != nil {
			t.Fatalf("Put %s: %v", key, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "resume_dir.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	keys, err := store.List(ctx, "resume_*.json")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"resume_a.json", "resume_b.json"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
}

func TestListMissingDirIsEmpty(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "absent"))
	keys, err := store.List(context.Background(), "resume_*.json")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}
