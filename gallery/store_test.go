package gallery

import (
	"image"
	"testing"

	"github.com/spf13/afero"

	"github.com/tsawler/flatbed/model"
)

func newDoc(w, h int) *model.Document {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return model.NewDocument(img, model.RectCorners(float64(w), float64(h)))
}

func TestStoreAddGet(t *testing.T) {
	s := NewStore()
	doc := newDoc(10, 10)

	if err := s.Add(doc); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, ok := s.Get(doc.ID)
	if !ok {
		t.Fatalf("Get(%s) not found", doc.ID)
	}
	if got != doc {
		t.Error("Get() returned a different document")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStoreAddDuplicate(t *testing.T) {
	s := NewStore()
	doc := newDoc(10, 10)

	if err := s.Add(doc); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add(doc); err == nil {
		t.Error("Add() of a stored id succeeded, want error")
	}
}

func TestStoreAddRejectsMissingID(t *testing.T) {
	s := NewStore()
	if err := s.Add(&model.Document{}); err == nil {
		t.Error("Add() without an id succeeded, want error")
	}
}

func TestStoreListOrder(t *testing.T) {
	s := NewStore()
	first := newDoc(5, 5)
	second := newDoc(6, 6)
	third := newDoc(7, 7)

	for _, doc := range []*model.Document{first, second, third} {
		if err := s.Add(doc); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	s.Remove(second.ID)

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d documents, want 2", len(list))
	}
	if list[0] != first || list[1] != third {
		t.Error("List() order does not match insertion order")
	}
}

func TestStoreRemoveUnknown(t *testing.T) {
	s := NewStore()
	s.Remove("missing")
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStoreReplacePreservesIdentity(t *testing.T) {
	s := NewStore()
	doc := newDoc(10, 10)
	if err := s.Add(doc); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	recropped := &model.Document{ID: doc.ID, Image: image.NewRGBA(image.Rect(0, 0, 20, 20))}
	if err := s.Replace(recropped); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	got, _ := s.Get(doc.ID)
	if got.Bounds().Dx() != 20 {
		t.Errorf("replaced raster width = %d, want 20", got.Bounds().Dx())
	}
	if s.Len() != 1 {
		t.Errorf("Len() after Replace = %d, want 1", s.Len())
	}
}

func TestStoreReplaceUnknown(t *testing.T) {
	s := NewStore()
	if err := s.Replace(newDoc(10, 10)); err == nil {
		t.Error("Replace() of an unknown id succeeded, want error")
	}
}

func TestStoreExport(t *testing.T) {
	s := NewStore()
	first := newDoc(10, 10)
	second := newDoc(12, 8)
	for _, doc := range []*model.Document{first, second} {
		if err := s.Add(doc); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	fs := afero.NewMemMapFs()
	if err := s.Export(fs, "out"); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	for _, doc := range []*model.Document{first, second} {
		path := "out/" + doc.ID + ".png"
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			t.Fatalf("exported file %s: %v", path, err)
		}
		if len(data) == 0 {
			t.Errorf("exported file %s is empty", path)
		}
	}
}
