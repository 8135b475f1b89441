package rendering

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo               // Draw line to point (x, y)
	PathOpClose                // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its target point.
// Close carries the zero point.
type PathCommand struct {
	Op    PathOp
	Point Offset
}

// Path is a polygonal vector path made of straight segments.
//
// Build paths with MoveTo, LineTo and Close, then hand them to
// Surface.FillPath or Surface.StrokePath.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// RectPath returns a closed path tracing r clockwise from its top-left corner.
func RectPath(r Rect) *Path {
	p := NewPath()
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
	return p
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Point: Offset{X: x, Y: y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Point: Offset{X: x, Y: y}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Bounds returns the axis-aligned bounding box of every point in the path.
// An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	b := Rect{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
	for _, cmd := range p.Commands {
		if cmd.Op == PathOpClose {
			continue
		}
		b.Left = math.Min(b.Left, cmd.Point.X)
		b.Top = math.Min(b.Top, cmd.Point.Y)
		b.Right = math.Max(b.Right, cmd.Point.X)
		b.Bottom = math.Max(b.Bottom, cmd.Point.Y)
	}
	return b
}

// Subpaths splits the path into closed or open polylines. A subpath that
// ends with Close repeats its first point at the end.
func (p *Path) Subpaths() [][]Offset {
	if p.IsEmpty() {
		return nil
	}
	var (
		out     [][]Offset
		current []Offset
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, current)
		}
		current = nil
	}
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush()
			current = []Offset{cmd.Point}
		case PathOpLineTo:
			if len(current) == 0 {
				current = []Offset{{}}
			}
			current = append(current, cmd.Point)
		case PathOpClose:
			if len(current) > 0 {
				current = append(current, current[0])
			}
			flush()
		}
	}
	flush()
	return out
}
