package local

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"resume-booster/internal/shared/storage/object"
)

func TestPutOpenRoundTrip(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:8080")
	ctx := context.Background()

	if err := s.Put(ctx, "resumes/u1/r1.pdf", "application/pdf", strings.NewReader("hello")); err != nil {
		t.Fatalf("put: %v", err)
	}

	rc, err := s.Open(ctx, "resumes/u1/r1.pdf")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("content = %q", got)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:8080")
	ctx := context.Background()

	for _, content := range []string{"first", "second"} {
		if err := s.Put(ctx, "k", "text/plain", strings.NewReader(content)); err != nil {
			t.Fatalf("put %q: %v", content, err)
		}
	}

	rc, err := s.Open(ctx, "k")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "second" {
		t.Fatalf("content = %q", got)
	}
}

func TestOpenMissingReturnsNotFound(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:8080")

	_, err := s.Open(context.Background(), "missing/key")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveURL(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:8080/")

	url, err := s.ResolveURL(context.Background(), "resumes/u1/r1.pdf")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != "http://localhost:8080/files/resumes/u1/r1.pdf" {
		t.Fatalf("url = %q", url)
	}
}

func TestListReturnsSlashKeys(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:8080")
	ctx := context.Background()

	keys := []string{"resumes/u1/a.pdf", "resumes/u1/b.pdf", "resumes/u2/c.pdf"}
	for _, k := range keys {
		if err := s.Put(ctx, k, "application/pdf", strings.NewReader("x")); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}

	infos, err := s.List(ctx, "resumes/u1/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(infos))
	}
	for _, info := range infos {
		if !strings.HasPrefix(info.Key, "resumes/u1/") {
			t.Fatalf("unexpected key %q", info.Key)
		}
		if info.CreatedAt.IsZero() {
			t.Fatalf("zero CreatedAt for %q", info.Key)
		}
	}
}

func TestListMissingPrefixIsEmpty(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:8080")

	infos, err := s.List(context.Background(), "resumes/nobody/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 0 {
		t.Fatalf("expected empty listing, got %v", infos)
	}
}

func TestRejectsTraversalKeys(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:8080")
	ctx := context.Background()

	for _, key := range []string{"../escape", "/absolute", "a/../../b"} {
		if err := s.Put(ctx, key, "text/plain", strings.NewReader("x")); err == nil {
			t.Errorf("put %q: expected error", key)
		}
		if _, err := s.Open(ctx, key); err == nil {
			t.Errorf("open %q: expected error", key)
		}
	}
}
