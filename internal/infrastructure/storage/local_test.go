package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveReaderAndDelete(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	relPath, err := store.SaveReader(strings.NewReader("invoice body"), "payment_docs", "invoice.PDF")
	if err != nil {
		t.Fatalf("SaveReader: %v", err)
	}
	if !strings.HasPrefix(relPath, "/storage/payment_docs/") {
		t.Fatalf("unexpected path %q", relPath)
	}
	if !strings.HasSuffix(relPath, ".pdf") {
		t.Fatalf("extension should be lowercased, got %q", relPath)
	}

	if err := store.Delete(relPath); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// Deleting again is a no-op.
	if err := store.Delete(relPath); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestSaveReaderWritesContents(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	relPath, err := store.SaveReader(strings.NewReader("front view bytes"), "vehicles/7", "front.jpg")
	if err != nil {
		t.Fatalf("SaveReader: %v", err)
	}

	onDisk := filepath.Join(root, strings.TrimPrefix(relPath, "/storage/"))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if string(data) != "front view bytes" {
		t.Fatalf("contents = %q", data)
	}
}

func TestDeleteRejectsTraversal(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	if err := store.Delete("/storage/../etc/passwd"); err == nil {
		t.Fatal("expected traversal rejection")
	}
	if err := store.Delete(""); err == nil {
		t.Fatal("expected empty path rejection")
	}
}
