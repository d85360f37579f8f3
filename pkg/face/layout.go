package face

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"github.com/roffe/uidial/pkg/common"
	"github.com/roffe/uidial/pkg/scale"
)

// Offsets of the two centre texts from the dial centre. They are fixed and do
// not follow the dial size.
const (
	LabelOffset     float32 = -25
	ValueTextOffset float32 = 5
)

type VAlign int

const (
	// AlignTop places the top edge of the text at the anchor.
	AlignTop VAlign = iota
	// AlignMiddle centres the text vertically on the anchor.
	AlignMiddle
)

type Ellipse struct {
	Position    fyne.Position
	Size        fyne.Size
	FillColor   color.Color
	StrokeColor color.Color
	StrokeWidth float32
}

type Line struct {
	Position1, Position2 fyne.Position
	Color                color.Color
	Width                float32
}

// Text is always centred horizontally on Anchor.
type Text struct {
	Text   string
	Anchor fyne.Position
	VAlign VAlign
	Color  color.Color
	Font   Font
}

// Frame is one render pass, in z-order.
type Frame struct {
	Size         fyne.Size
	Face         Ellipse
	Ticks        []Line
	Label        Text
	ValueText    Text
	TickLabels   []Text
	Indicator    Line
	CenterDot    Ellipse
	HasCenterDot bool
}

// Empty reports whether there is no surface to draw on.
func (f Frame) Empty() bool {
	return f.Size.Width <= 0 || f.Size.Height <= 0
}

// Geometry is the polar frame of a dial laid out in a given size. The face is
// the largest square centred in that size.
type Geometry struct {
	Center fyne.Position
	Radius float32
	// Rect is the top left of the face bounds, inset by half the stroke width.
	Rect fyne.Position
}

func NewGeometry(size fyne.Size, strokeWidth float32) Geometry {
	side := fyne.Min(size.Width, size.Height)
	inset := strokeWidth * common.OneHalf
	origin := fyne.NewPos((size.Width-side)*common.OneHalf, (size.Height-side)*common.OneHalf)
	return Geometry{
		Center: fyne.NewPos(size.Width*common.OneHalf, size.Height*common.OneHalf),
		Radius: (side - strokeWidth) * common.OneHalf,
		Rect:   origin.AddXY(inset, inset),
	}
}

// Diameter is the side of the face bounds.
func (g Geometry) Diameter() fyne.Size {
	return fyne.NewSquareSize(g.Radius * 2)
}

// Point returns the position at angle (radians, already zero rotated) and
// radial fraction f of the face.
func (g Geometry) Point(angle, f float64) fyne.Position {
	sin, cos := common.Sincos32(angle)
	r := g.Radius * float32(f)
	return fyne.Position{
		X: g.Center.X + cos*r,
		Y: g.Center.Y + sin*r,
	}
}

// Spoke returns the radial segment at angle spanning from 1-length to the rim.
func (g Geometry) Spoke(angle, length float64) (fyne.Position, fyne.Position) {
	return g.Point(angle, 1-length), g.Point(angle, 1)
}

// TickRing returns the count+1 angles of one tick ring, evenly spaced over a
// full turn and rotated by zeroAngle. Rings with no ticks yield nothing.
func TickRing(t scale.Tick, zeroAngle float64) []float64 {
	if t.Count <= 0 {
		return nil
	}
	n := float64(t.Count)
	angles := make([]float64, 0, t.Count+1)
	for i := 0; i <= t.Count; i++ {
		angles = append(angles, float64(i)*math.Pi/(n/2)-zeroAngle)
	}
	return angles
}

// IndicatorColor picks the indicator colour for value.
func IndicatorColor(value float64) color.Color {
	if value == 0 {
		return IndicatorNeutral
	}
	return IndicatorActive
}

// Layout computes the full frame for st drawn with s in size.
func Layout(st State, s scale.Scale, size fyne.Size) Frame {
	f := Frame{Size: size}
	if f.Empty() {
		return f
	}
	g := NewGeometry(size, st.StrokeWidth)
	zero := scale.ZeroAngle(s)

	f.Face = Ellipse{
		Position:    g.Rect,
		Size:        g.Diameter(),
		FillColor:   st.FillColor,
		StrokeColor: st.StrokeColor,
		StrokeWidth: st.StrokeWidth,
	}

	for _, t := range s.Ticks() {
		for _, a := range TickRing(t, zero) {
			p1, p2 := g.Spoke(a, t.Length)
			f.Ticks = append(f.Ticks, Line{Position1: p1, Position2: p2, Color: st.StrokeColor, Width: st.StrokeWidth})
		}
	}

	f.Label = Text{
		Text:   st.Label,
		Anchor: g.Center.AddXY(0, LabelOffset),
		VAlign: AlignTop,
		Color:  st.LabelColor,
		Font:   st.LabelFont,
	}
	f.ValueText = Text{
		Text:   s.AngleText(st.Value),
		Anchor: g.Center.AddXY(0, ValueTextOffset),
		VAlign: AlignTop,
		Color:  st.LabelColor,
		Font:   st.LabelFont,
	}

	labels := s.TickLabels()
	f.TickLabels = make([]Text, 0, len(labels))
	for _, l := range labels {
		f.TickLabels = append(f.TickLabels, Text{
			Text:   l.Text,
			Anchor: g.Point(s.Angle(l.Value)-zero, l.Radius),
			VAlign: AlignMiddle,
			Color:  st.LabelColor,
			Font:   st.LabelFont,
		})
	}

	p1, p2 := g.Spoke(s.Angle(st.Value)-zero, 1)
	f.Indicator = Line{Position1: p1, Position2: p2, Color: IndicatorColor(st.Value), Width: st.StrokeWidth}

	if st.CenterSize > 0 {
		r := float32(st.CenterSize)
		f.HasCenterDot = true
		f.CenterDot = Ellipse{
			Position:  g.Center.SubtractXY(r, r),
			Size:      fyne.NewSize(r*2, r*2),
			FillColor: st.StrokeColor,
		}
	}
	return f
}
