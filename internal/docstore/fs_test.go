package docstore

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*FSStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewFSStore(dir, slog.Default())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	return store, dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadTextDocument(t *testing.T) {
	store, dir := newTestStore(t)
	path := writeFile(t, dir, "acme_contract.txt", "Payment due in 30 days.")

	text, err := store.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if text != "Payment due in 30 days." {
		t.Errorf("unexpected content: %q", text)
	}
}

func TestReadMissingDocument(t *testing.T) {
	store, dir := newTestStore(t)

	_, err := store.Read(context.Background(), filepath.Join(dir, "nope.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReadBinaryDocument(t *testing.T) {
	store, dir := newTestStore(t)
	path := writeFile(t, dir, "acme_contract.pdf", "%PDF-1.4 binary bytes")

	_, err := store.Read(context.Background(), path)
	if !errors.Is(err, ErrBinary) {
		t.Errorf("expected ErrBinary for pdf, got %v", err)
	}
}

func TestReadEmptyDocument(t *testing.T) {
	store, dir := newTestStore(t)
	path := writeFile(t, dir, "empty.txt", "  \n\t")

	_, err := store.Read(context.Background(), path)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestFindByVendorCaseInsensitive(t *testing.T) {
	store, dir := newTestStore(t)
	want := writeFile(t, dir, "Acme_Corp_2025.txt", "terms")
	writeFile(t, dir, "globex_contract.txt", "terms")

	got, err := store.FindByVendor(context.Background(), "acme corp")
	if err != nil {
		t.Fatalf("FindByVendor: %v", err)
	}
	if got != "" {
		t.Errorf("space in vendor name should not match underscore filename, got %q", got)
	}

	got, err = store.FindByVendor(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("FindByVendor: %v", err)
	}
	if got != want {
		t.Errorf("FindByVendor = %q, want %q", got, want)
	}
}

func TestFindByVendorNoMatch(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, dir, "globex_contract.txt", "terms")

	got, err := store.FindByVendor(context.Background(), "initech")
	if err != nil {
		t.Fatalf("FindByVendor: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty path, got %q", got)
	}
}

func TestListSkipsDirectories(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, dir, "a.txt", "x")
	writeFile(t, dir, "b.txt", "y")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	docs, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Name != "a.txt" || docs[1].Name != "b.txt" {
		t.Errorf("unexpected order: %v", docs)
	}
}
