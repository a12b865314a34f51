package io

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/verdantlab/schemaloom/pkg/loader"
)

func TestGetDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.json")
	content := []byte(`{"cubes": []}`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewIODocumentLoader()
	doc := loader.NewDocument(loader.NewDocumentParams{
		Kind:   loader.DocumentKindMetadata,
		Path:   path,
		Loader: l,
	})

	got, err := doc.GetBytes(context.Background())
	if err != nil {
		t.Fatalf("GetBytes() error = %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("GetBytes() = %q, want %q", got, content)
	}

	// Cached: the original file can disappear and reads still succeed.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	got, err = l.GetDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("GetDocument() after remove error = %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("cached GetDocument() = %q, want %q", got, content)
	}
}

func TestGetDocumentMissingFile(t *testing.T) {
	l := NewIODocumentLoader()
	doc := loader.NewDocument(loader.NewDocumentParams{
		Kind:   loader.DocumentKindMetadata,
		Path:   filepath.Join(t.TempDir(), "missing.json"),
		Loader: l,
	})

	if _, err := l.GetDocument(context.Background(), doc); err == nil {
		t.Error("GetDocument() expected an error for a missing file")
	}
}

func TestGetDocumentNoLoader(t *testing.T) {
	doc := loader.NewDocument(loader.NewDocumentParams{
		Kind: loader.DocumentKindMetadata,
		Path: "meta.json",
	})
	if _, err := doc.GetBytes(context.Background()); err == nil {
		t.Error("GetBytes() expected an error without a loader")
	}
}
