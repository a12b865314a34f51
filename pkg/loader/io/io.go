package io

import (
	"context"
	"os"
	"sync"

	"github.com/verdantlab/schemaloom/pkg/loader"

	"golang.org/x/sync/singleflight"
)

// IODocumentLoader loads documents directly from the local filesystem with caching.
type IODocumentLoader struct {
	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewIODocumentLoader creates a new filesystem-based document loader.
func NewIODocumentLoader() *IODocumentLoader {
	return &IODocumentLoader{
		cache: make(map[string][]byte),
	}
}

// GetDocument reads the document content from the filesystem. Results are cached.
func (l *IODocumentLoader) GetDocument(ctx context.Context, doc loader.Document) ([]byte, error) {
	key := loader.CacheKey(doc)

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[key]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		result, err := os.ReadFile(doc.Path)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = result
		l.cacheMu.Unlock()

		return result, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
