package gallery

import (
	"fmt"
	"image/png"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/tsawler/flatbed/model"
)

// Store is an in-memory, insertion-ordered collection of documents. All
// methods are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	docs  map[string]*model.Document
	order []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*model.Document)}
}

// Add puts doc into the store. A document without an ID is rejected; adding
// the same ID twice is an error, use Replace for updates.
func (s *Store) Add(doc *model.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("gallery: document has no id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[doc.ID]; ok {
		return fmt.Errorf("gallery: document %s already stored", doc.ID)
	}
	s.docs[doc.ID] = doc
	s.order = append(s.order, doc.ID)
	return nil
}

// Get returns the document with the given ID, or false when it is not
// stored.
func (s *Store) Get(id string) (*model.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	return doc, ok
}

// Replace swaps the stored document's content for doc while keeping its
// position. The ID must already be present.
func (s *Store) Replace(doc *model.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("gallery: document has no id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[doc.ID]; !ok {
		return fmt.Errorf("gallery: document %s not stored", doc.ID)
	}
	s.docs[doc.ID] = doc
	return nil
}

// Remove deletes the document with the given ID. Removing an unknown ID is
// a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return
	}
	delete(s.docs, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// List returns the stored documents in insertion order.
func (s *Store) List() []*model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Export writes every stored document to dir as <id>.png, creating the
// directory if needed.
func (s *Store) Export(fs afero.Fs, dir string) error {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("gallery: creating export directory: %w", err)
	}

	for _, doc := range s.List() {
		if doc.Image == nil {
			return fmt.Errorf("gallery: document %s has no raster", doc.ID)
		}

		path := filepath.Join(dir, doc.ID+".png")
		f, err := fs.Create(path)
		if err != nil {
			return fmt.Errorf("gallery: creating %s: %w", path, err)
		}
		if err := png.Encode(f, doc.Image); err != nil {
			f.Close()
			return fmt.Errorf("gallery: encoding %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("gallery: closing %s: %w", path, err)
		}
	}
	return nil
}
