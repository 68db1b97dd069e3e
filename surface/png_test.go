// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	s := NewImageSurface(7, 5)
	defer s.Close()
	s.Clear(red)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, s); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
		t.Errorf("decoded size = %v, want 7x5", b)
	}
	r, g, _, _ := img.At(3, 3).RGBA()
	if r>>8 != 255 || g != 0 {
		t.Errorf("decoded pixel not red")
	}
}

func TestEncodePNGClosed(t *testing.T) {
	s := NewImageSurface(2, 2)
	_ = s.Close()
	if err := EncodePNG(&bytes.Buffer{}, s); !errors.Is(err, ErrClosed) {
		t.Errorf("error = %v, want ErrClosed", err)
	}
}

func TestSavePNG(t *testing.T) {
	s := NewImageSurface(3, 3)
	defer s.Close()

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, s); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), s); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
