// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
)

// CommandType identifies the surface call a Command captured.
type CommandType uint8

const (
	CmdResize CommandType = iota // Resize(width, height)
	CmdClear                     // Clear(color)
	CmdFill                      // Fill(path, style)
	CmdStroke                    // Stroke(path, style)
)

var commandTypeNames = [...]string{
	CmdResize: "Resize",
	CmdClear:  "Clear",
	CmdFill:   "Fill",
	CmdStroke: "Stroke",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded surface call. Only the fields relevant to Type
// are set; Path is a private clone of the caller's path.
type Command struct {
	Type   CommandType
	Width  int
	Height int
	Color  color.Color
	Path   *Path
	Fill   FillStyle
	Stroke StrokeStyle
}

// RecordingSurface captures every call as a Command.
//
// When created with NewRecordingSurfaceFor it also forwards each call to a
// target surface, so the pixels and the command log stay in step.
// RecordingSurface is not safe for concurrent use.
type RecordingSurface struct {
	width    int
	height   int
	target   Surface
	commands []Command
	closed   bool
}

// NewRecordingSurface creates a recorder without a target.
// Snapshot returns a transparent image of the recorded size.
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{width: max(width, 0), height: max(height, 0)}
}

// NewRecordingSurfaceFor creates a recorder that forwards to target.
func NewRecordingSurfaceFor(target Surface) *RecordingSurface {
	return &RecordingSurface{
		width:  target.Width(),
		height: target.Height(),
		target: target,
	}
}

// Width returns the surface width.
func (r *RecordingSurface) Width() int { return r.width }

// Height returns the surface height.
func (r *RecordingSurface) Height() int { return r.height }

// Resize records and forwards a resize.
func (r *RecordingSurface) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if r.closed {
		return ErrClosed
	}
	if r.target != nil {
		if err := r.target.Resize(width, height); err != nil {
			return err
		}
	}
	r.width, r.height = width, height
	r.commands = append(r.commands, Command{Type: CmdResize, Width: width, Height: height})
	return nil
}

// Clear records and forwards a clear.
func (r *RecordingSurface) Clear(c color.Color) {
	if r.closed {
		return
	}
	r.commands = append(r.commands, Command{Type: CmdClear, Color: c})
	if r.target != nil {
		r.target.Clear(c)
	}
}

// Fill records and forwards a fill.
func (r *RecordingSurface) Fill(path *Path, style FillStyle) {
	if r.closed || path == nil || path.IsEmpty() {
		return
	}
	r.commands = append(r.commands, Command{Type: CmdFill, Path: path.Clone(), Fill: style, Color: style.Color})
	if r.target != nil {
		r.target.Fill(path, style)
	}
}

// Stroke records and forwards a stroke.
func (r *RecordingSurface) Stroke(path *Path, style StrokeStyle) {
	if r.closed || path == nil || path.IsEmpty() {
		return
	}
	style.Dash = append([]float64(nil), style.Dash...)
	r.commands = append(r.commands, Command{Type: CmdStroke, Path: path.Clone(), Stroke: style, Color: style.Color})
	if r.target != nil {
		r.target.Stroke(path, style)
	}
}

// Snapshot returns the target's snapshot, or a transparent image of the
// current size when there is no target.
func (r *RecordingSurface) Snapshot() *image.RGBA {
	if r.closed {
		return nil
	}
	if r.target != nil {
		return r.target.Snapshot()
	}
	return image.NewRGBA(image.Rect(0, 0, r.width, r.height))
}

// Close closes the recorder and its target.
func (r *RecordingSurface) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.target != nil {
		return r.target.Close()
	}
	return nil
}

// Commands returns the recorded commands in call order.
// The slice must not be modified.
func (r *RecordingSurface) Commands() []Command {
	return r.commands
}

// CommandsOf returns the recorded commands of type t in call order.
func (r *RecordingSurface) CommandsOf(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded commands.
func (r *RecordingSurface) Reset() {
	r.commands = r.commands[:0]
}

var _ Surface = (*RecordingSurface)(nil)
