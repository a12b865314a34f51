package loader

import (
	"context"
	"fmt"
)

// DocumentKind identifies which schema document a file holds.
type DocumentKind string

const (
	DocumentKindMetadata  DocumentKind = "metadata"
	DocumentKindTaxonomy  DocumentKind = "taxonomy"
	DocumentKindViewsOnly DocumentKind = "views_only"
)

// Document represents a JSON source document for corpus generation. The
// actual bytes are retrieved via the associated DocumentLoader, so a
// document can live on the local filesystem or in object storage.
type Document struct {
	Kind   DocumentKind
	Path   string
	Loader DocumentLoader
}

// NewDocumentParams defines the input parameters for creating a Document.
type NewDocumentParams struct {
	Kind   DocumentKind
	Path   string
	Loader DocumentLoader
}

// NewDocument creates a Document bound to the given loader.
func NewDocument(params NewDocumentParams) Document {
	return Document{
		Kind:   params.Kind,
		Path:   params.Path,
		Loader: params.Loader,
	}
}

// GetBytes retrieves the raw document content using its Loader.
func (d *Document) GetBytes(ctx context.Context) ([]byte, error) {
	if d.Loader == nil {
		return nil, fmt.Errorf("document %s has no loader", d.Path)
	}
	return d.Loader.GetDocument(ctx, *d)
}

// DocumentLoader defines the interface for loading the contents of a
// Document. Implementations may load documents from disk, object storage,
// or other sources.
type DocumentLoader interface {
	GetDocument(ctx context.Context, doc Document) ([]byte, error)
}

// CacheKey generates a unique cache key for a Document based on its kind and path.
func CacheKey(doc Document) string {
	return fmt.Sprintf("%s:%s", doc.Kind, doc.Path)
}
