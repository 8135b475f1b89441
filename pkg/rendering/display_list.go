package rendering

import "fmt"

// OpKind identifies a recorded surface call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillPath
	OpStrokePath
	OpText
)

// String returns a human-readable representation of the op kind.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillPath:
		return "fill_path"
	case OpStrokePath:
		return "stroke_path"
	case OpText:
		return "text"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded surface call. Only the fields relevant to Kind are set.
type Op struct {
	Kind        OpKind
	Color       Color
	Path        *Path
	StrokeWidth float64
	Text        string
	Position    Offset
	Font        Font
	Align       TextAlign
}

// String formats the op for logs and CLI output.
func (o Op) String() string {
	switch o.Kind {
	case OpClear:
		return fmt.Sprintf("clear color=#%08x", uint32(o.Color))
	case OpFillPath:
		b := o.Path.Bounds()
		return fmt.Sprintf("fill_path bounds=(%g,%g,%g,%g) color=#%08x", b.Left, b.Top, b.Right, b.Bottom, uint32(o.Color))
	case OpStrokePath:
		b := o.Path.Bounds()
		return fmt.Sprintf("stroke_path bounds=(%g,%g,%g,%g) width=%g color=#%08x", b.Left, b.Top, b.Right, b.Bottom, o.StrokeWidth, uint32(o.Color))
	case OpText:
		return fmt.Sprintf("text %q at=(%g,%g) align=%s color=#%08x", o.Text, o.Position.X, o.Position.Y, o.Align, uint32(o.Color))
	default:
		return o.Kind.String()
	}
}

func (o Op) execute(surface Surface) {
	switch o.Kind {
	case OpClear:
		surface.Clear(o.Color)
	case OpFillPath:
		surface.FillPath(o.Path, o.Color)
	case OpStrokePath:
		surface.StrokePath(o.Path, o.Color, o.StrokeWidth)
	case OpText:
		surface.DrawText(o.Text, o.Position, o.Font, o.Color, o.Align)
	}
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Surface implementation.
type DisplayList struct {
	ops  []Op
	size Size
}

// Paint replays the recorded operations onto the provided surface.
func (d *DisplayList) Paint(surface Surface) {
	for _, op := range d.ops {
		op.execute(surface)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []Op {
	out := make([]Op, len(d.ops))
	copy(out, d.ops)
	return out
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []Op
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Surface {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingSurface{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingSurface struct {
	recorder *PictureRecorder
	size     Size
}

func (s *recordingSurface) Clear(color Color) {
	s.recorder.append(Op{Kind: OpClear, Color: color})
}

func (s *recordingSurface) FillPath(path *Path, color Color) {
	s.recorder.append(Op{Kind: OpFillPath, Path: path, Color: color})
}

func (s *recordingSurface) StrokePath(path *Path, color Color, width float64) {
	s.recorder.append(Op{Kind: OpStrokePath, Path: path, Color: color, StrokeWidth: width})
}

func (s *recordingSurface) DrawText(text string, position Offset, font Font, color Color, align TextAlign) {
	s.recorder.append(Op{Kind: OpText, Text: text, Position: position, Font: font, Color: color, Align: align})
}

func (s *recordingSurface) Size() Size {
	return s.size
}
