// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/png"
	"io"
	"os"
)

// EncodePNG writes the current contents of s to w as PNG.
func EncodePNG(w io.Writer, s Surface) error {
	img := s.Snapshot()
	if img == nil {
		return ErrClosed
	}
	return png.Encode(w, img)
}

// SavePNG saves the current contents of s to a PNG file.
func SavePNG(path string, s Surface) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return EncodePNG(f, s)
}
