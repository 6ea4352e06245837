// Package pptx writes single-slide PresentationML (.pptx) packages made of
// rectangles and text boxes.
package pptx

import (
	"math"
)

// EMU is an English Metric Unit: 914400 per inch, 36000 per mm, 12700 per point.
type EMU int64

func Mm(v float64) EMU { return EMU(math.Round(v * 36000)) }
func Pt(v float64) EMU { return EMU(math.Round(v * 12700)) }

// Color is an RGB hex triplet such as "1E73C8".
type Color string

type Align string

const (
	AlignLeft   Align = "l"
	AlignCenter Align = "ctr"
	AlignRight  Align = "r"
)

type Anchor string

const (
	AnchorTop    Anchor = "t"
	AnchorMiddle Anchor = "ctr"
	AnchorBottom Anchor = "b"
)

type Rect struct {
	X, Y, W, H EMU
}

// Bottom is the y coordinate of the lower edge.
func (r Rect) Bottom() EMU { return r.Y + r.H }

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d EMU) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

type Line struct {
	Color Color
	Width EMU
}

// Shadow is an outer drop shadow. Direction is in degrees, Opacity in 0..1.
type Shadow struct {
	Blur      EMU
	Distance  EMU
	Direction float64
	Color     Color
	Opacity   float64
}

type Font struct {
	Typeface string
	Size     float64 // points
	Bold     bool
	Color    Color
}

type Paragraph struct {
	Text        string
	Align       Align
	Font        Font
	LineSpacing float64 // 1.0 is single spacing
	SpaceBefore float64 // points
	SpaceAfter  float64 // points
}

type Insets struct {
	Left, Top, Right, Bottom EMU
}

// UniformInsets returns insets of d on all four sides.
func UniformInsets(d EMU) Insets {
	return Insets{Left: d, Top: d, Right: d, Bottom: d}
}

// DefaultInsets are PowerPoint's text frame margins (0.1" x 0.05").
var DefaultInsets = Insets{Left: 91440, Top: 45720, Right: 91440, Bottom: 45720}

type TextFrame struct {
	Paragraphs []Paragraph
	Anchor     Anchor
	Insets     Insets
	Wrap       bool
}

// Shape is a rectangle, optionally filled, outlined, shadowed and carrying
// text. TextBox marks a plain text box rather than an auto shape.
type Shape struct {
	Name    string
	TextBox bool
	Rect    Rect
	Fill    Color
	Line    *Line
	Shadow  *Shadow
	Text    *TextFrame
}

type Slide struct {
	Shapes []Shape
}

type Presentation struct {
	Width    EMU
	Height   EMU
	Title    string
	Creator  string
	Lang     string
	Typeface string // theme font
	Slide    Slide
}
