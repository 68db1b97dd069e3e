// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"slices"
	"testing"
)

func TestBuiltinBackends(t *testing.T) {
	names := Backends()
	for _, want := range []string{"image", "recording"} {
		if !slices.Contains(names, want) {
			t.Errorf("Backends() = %v, missing %q", names, want)
		}
	}

	s, err := New("image", 8, 6)
	if err != nil {
		t.Fatalf("New(image) error = %v", err)
	}
	defer s.Close()
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("New(image) = %T, want *ImageSurface", s)
	}

	rec, err := New("recording", 8, 6)
	if err != nil {
		t.Fatalf("New(recording) error = %v", err)
	}
	defer rec.Close()
	if rec.Width() != 8 || rec.Height() != 6 {
		t.Errorf("recording size = %dx%d, want 8x6", rec.Width(), rec.Height())
	}
}

func TestRegistryUnknownBackend(t *testing.T) {
	r := NewRegistry()
	_, err := r.New("missing", 1, 1)

	var nf *BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *BackendNotFoundError", err)
	}
	if nf.Name != "missing" {
		t.Errorf("Name = %q, want missing", nf.Name)
	}
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Register("x", func(w, h int) (Surface, error) {
		calls++
		return NewRecordingSurface(w, h), nil
	})
	r.Register("x", func(w, h int) (Surface, error) {
		return NewImageSurface(w, h), nil
	})

	s, err := r.New("x", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*ImageSurface); !ok || calls != 0 {
		t.Error("second Register did not replace the first")
	}
	if got := r.Backends(); !slices.Equal(got, []string{"x"}) {
		t.Errorf("Backends() = %v, want [x]", got)
	}
}
