package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"fyne.io/fyne/v2"
	"github.com/roffe/uidial/pkg/common"
	"github.com/roffe/uidial/pkg/face"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// surface is one draw pass onto dst. Coordinates are logical units and are
// multiplied by scale on the way to the rasterizer.
type surface struct {
	dst    draw.Image
	bounds image.Rectangle
	z      *vector.Rasterizer
	scale  float32
}

func (c *surface) begin() {
	c.z.Reset(c.bounds.Dx(), c.bounds.Dy())
}

func (c *surface) paint(col color.Color) {
	c.z.Draw(c.dst, c.bounds, image.NewUniform(col), image.Point{})
}

func (c *surface) pt(p fyne.Position) (float32, float32) {
	return p.X * c.scale, p.Y * c.scale
}

// ellipsePath adds a closed polygon approximating the ellipse centred on
// (cx,cy). reverse flips the winding so an inner path cuts a hole.
func (c *surface) ellipsePath(cx, cy, rx, ry float32, reverse bool) {
	step := common.TwoPi / common.ArcSegments
	for i := 0; i <= common.ArcSegments; i++ {
		a := float64(i) * step
		if reverse {
			a = -a
		}
		sin, cos := common.Sincos32(a)
		x, y := cx+cos*rx, cy+sin*ry
		if i == 0 {
			c.z.MoveTo(x, y)
			continue
		}
		c.z.LineTo(x, y)
	}
	c.z.ClosePath()
}

func ellipseBox(e face.Ellipse) (cx, cy, rx, ry float32) {
	rx = e.Size.Width * common.OneHalf
	ry = e.Size.Height * common.OneHalf
	return e.Position.X + rx, e.Position.Y + ry, rx, ry
}

func (c *surface) fillEllipse(e face.Ellipse) {
	if e.FillColor == nil {
		return
	}
	cx, cy, rx, ry := ellipseBox(e)
	if rx <= 0 || ry <= 0 {
		return
	}
	c.begin()
	c.ellipsePath(cx*c.scale, cy*c.scale, rx*c.scale, ry*c.scale, false)
	c.paint(e.FillColor)
}

func (c *surface) strokeEllipse(e face.Ellipse) {
	if e.StrokeColor == nil || e.StrokeWidth <= 0 {
		return
	}
	cx, cy, rx, ry := ellipseBox(e)
	hw := e.StrokeWidth * common.OneHalf
	s := c.scale
	c.begin()
	c.ellipsePath(cx*s, cy*s, (rx+hw)*s, (ry+hw)*s, false)
	if rx > hw && ry > hw {
		c.ellipsePath(cx*s, cy*s, (rx-hw)*s, (ry-hw)*s, true)
	}
	c.paint(e.StrokeColor)
}

// line strokes l as a quad with butt caps.
func (c *surface) line(l face.Line) {
	if l.Color == nil || l.Width <= 0 {
		return
	}
	x1, y1 := c.pt(l.Position1)
	x2, y2 := c.pt(l.Position2)
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	hw := l.Width * c.scale * common.OneHalf
	nx, ny := -dy/length*hw, dx/length*hw

	c.begin()
	c.z.MoveTo(x1+nx, y1+ny)
	c.z.LineTo(x2+nx, y2+ny)
	c.z.LineTo(x2-nx, y2-ny)
	c.z.LineTo(x1-nx, y1-ny)
	c.z.ClosePath()
	c.paint(l.Color)
}

// text draws t centred horizontally on its anchor.
func (c *surface) text(ff font.Face, t face.Text) {
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(t.Color),
		Face: ff,
	}
	m := ff.Metrics()
	width := d.MeasureString(t.Text)
	x, y := c.pt(t.Anchor)
	top := fixed.Int26_6(y * 64)
	if t.VAlign == face.AlignMiddle {
		top -= (m.Ascent + m.Descent) / 2
	}
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*64) - width/2 + fixed.I(c.bounds.Min.X),
		Y: top + m.Ascent + fixed.I(c.bounds.Min.Y),
	}
	d.DrawString(t.Text)
}
