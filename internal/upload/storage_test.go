package upload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tablescrub/internal/errors"
)

func TestStore_SavesWithUniqueName(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), 1024)
	ctx := context.Background()

	p1, err := s.Store(ctx, strings.NewReader("a,b\n1,2\n"), "data.csv")
	if err != nil {
		t.Fatal(err)
	}
	p2, err := s.Store(ctx, strings.NewReader("a,b\n3,4\n"), "data.csv")
	if err != nil {
		t.Fatal(err)
	}
	if p1 == p2 {
		t.Error("stored paths must be unique per upload")
	}
	for _, p := range []string{p1, p2} {
		base := filepath.Base(p)
		if !strings.HasPrefix(base, "data_") || !strings.HasSuffix(base, ".csv") {
			t.Errorf("unexpected stored name %q", base)
		}
	}
	content, err := os.ReadFile(p1)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "a,b\n1,2\n" {
		t.Errorf("stored content mismatch: %q", content)
	}
}

func TestStore_RejectsNonCSV(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), 1024)
	_, err := s.Store(context.Background(), strings.NewReader("x"), "data.txt")
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("code = %s, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestStore_RejectsOversizedUploads(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, 8)
	_, err := s.Store(context.Background(), strings.NewReader("0123456789"), "big.csv")
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("code = %s, want INVALID_INPUT", errors.GetCode(err))
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("rejected upload left files behind: %v", entries)
	}
}

func TestStore_SanitizesHostileFilenames(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), 1024)
	p, err := s.Store(context.Background(), strings.NewReader("a\n1\n"), "../../etc/pass wd$.csv")
	if err != nil {
		t.Fatal(err)
	}
	base := filepath.Base(p)
	if strings.ContainsAny(base, "/\\$ ") {
		t.Errorf("unsafe characters survived sanitization: %q", base)
	}
}

func TestOpenDeleteExists(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), 1024)
	ctx := context.Background()

	p, err := s.Store(ctx, strings.NewReader("a\n1\n"), "f.csv")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := s.Exists(ctx, p)
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
	rc, err := s.Open(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	rc.Close()
	if err := s.Delete(ctx, p); err != nil {
		t.Fatal(err)
	}
	if ok, _ := s.Exists(ctx, p); ok {
		t.Error("file still exists after Delete")
	}
	// deleting again is not an error
	if err := s.Delete(ctx, p); err != nil {
		t.Errorf("second delete errored: %v", err)
	}
}
