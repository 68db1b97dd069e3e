// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image/color"
	"testing"
)

func TestRecordingSurfaceRecords(t *testing.T) {
	r := NewRecordingSurface(50, 40)

	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 10)

	r.Clear(color.White)
	r.Stroke(path, DefaultStrokeStyle().WithWidth(3))
	r.Fill(path, DefaultFillStyle())
	if err := r.Resize(20, 10); err != nil {
		t.Fatal(err)
	}

	cmds := r.Commands()
	want := []CommandType{CmdClear, CmdStroke, CmdFill, CmdResize}
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(cmds), len(want))
	}
	for i, c := range cmds {
		if c.Type != want[i] {
			t.Errorf("command %d = %v, want %v", i, c.Type, want[i])
		}
	}
	if cmds[1].Stroke.Width != 3 {
		t.Errorf("stroke width = %v, want 3", cmds[1].Stroke.Width)
	}
	if cmds[3].Width != 20 || cmds[3].Height != 10 {
		t.Errorf("resize = %dx%d, want 20x10", cmds[3].Width, cmds[3].Height)
	}
	if r.Width() != 20 || r.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", r.Width(), r.Height())
	}

	// Recorded paths are private copies.
	path.LineTo(99, 99)
	if n := len(cmds[1].Path.Points()); n != 2 {
		t.Errorf("recorded path has %d points, want 2", n)
	}
}

func TestRecordingSurfaceSkipsEmptyPaths(t *testing.T) {
	r := NewRecordingSurface(10, 10)
	r.Fill(nil, DefaultFillStyle())
	r.Stroke(NewPath(), DefaultStrokeStyle())
	if n := len(r.Commands()); n != 0 {
		t.Errorf("recorded %d commands for empty paths", n)
	}
}

func TestRecordingSurfaceForwards(t *testing.T) {
	target := NewImageSurface(10, 10)
	r := NewRecordingSurfaceFor(target)
	if r.Width() != 10 || r.Height() != 10 {
		t.Fatalf("size = %dx%d, want target size", r.Width(), r.Height())
	}

	r.Clear(red)
	if c := target.Snapshot().RGBAAt(2, 2); c != red {
		t.Errorf("target pixel = %v, want red", c)
	}
	if c := r.Snapshot().RGBAAt(2, 2); c != red {
		t.Errorf("snapshot pixel = %v, want red", c)
	}

	if err := r.Resize(4, 3); err != nil {
		t.Fatal(err)
	}
	if target.Width() != 4 || target.Height() != 3 {
		t.Errorf("target size = %dx%d, want 4x3", target.Width(), target.Height())
	}

	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if target.Snapshot() != nil {
		t.Error("Close did not close the target")
	}
}

func TestRecordingSurfaceResizeErrors(t *testing.T) {
	r := NewRecordingSurface(10, 10)
	if err := r.Resize(3, -3); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
	if len(r.Commands()) != 0 {
		t.Error("failed resize was recorded")
	}
	_ = r.Close()
	if err := r.Resize(3, 3); !errors.Is(err, ErrClosed) {
		t.Errorf("error = %v, want ErrClosed", err)
	}
}

func TestRecordingSurfaceCommandsOfAndReset(t *testing.T) {
	r := NewRecordingSurface(10, 10)
	path := NewPath()
	path.Rectangle(1, 1, 2, 2)
	r.Fill(path, DefaultFillStyle())
	r.Stroke(path, DefaultStrokeStyle())
	r.Fill(path, DefaultFillStyle())

	if n := len(r.CommandsOf(CmdFill)); n != 2 {
		t.Errorf("CommandsOf(Fill) = %d, want 2", n)
	}
	if n := len(r.CommandsOf(CmdClear)); n != 0 {
		t.Errorf("CommandsOf(Clear) = %d, want 0", n)
	}

	snap := r.Snapshot()
	if b := snap.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("snapshot bounds = %v", b)
	}

	r.Reset()
	if len(r.Commands()) != 0 {
		t.Error("Reset left commands")
	}
}

func TestCommandTypeString(t *testing.T) {
	if CmdStroke.String() != "Stroke" || CommandType(42).String() != "Unknown" {
		t.Error("CommandType.String mismatch")
	}
}
