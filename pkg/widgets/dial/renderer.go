package dial

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/roffe/uidial/pkg/face"
)

type DialRenderer struct {
	*Dial

	size fyne.Size

	face       *canvas.Circle
	ticks      []*canvas.Line
	label      *canvas.Text
	valueText  *canvas.Text
	tickLabels []*canvas.Text
	indicator  *canvas.Line
	center     *canvas.Circle

	objects []fyne.CanvasObject
}

func (r *DialRenderer) Layout(space fyne.Size) {
	if r.size == space {
		return
	}
	r.size = space
	r.apply()
}

func (r *DialRenderer) MinSize() fyne.Size { return r.minsize }

func (r *DialRenderer) Refresh() {
	r.apply()
	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

func (r *DialRenderer) Destroy() {}

func (r *DialRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil {
		r.rebuildObjects()
	}
	return r.objects
}

// apply lays out the current state. Without a surface to draw on every
// object is hidden and the pass is skipped.
func (r *DialRenderer) apply() {
	f := face.Layout(r.state, r.scale, r.size)
	if f.Empty() {
		for _, o := range r.Objects() {
			o.Hide()
		}
		return
	}
	if len(f.Ticks) != len(r.ticks) || len(f.TickLabels) != len(r.tickLabels) {
		r.resize(len(f.Ticks), len(f.TickLabels))
	}
	for _, o := range r.objects {
		o.Show()
	}

	applyEllipse(r.face, f.Face)

	for i, t := range f.Ticks {
		applyLine(r.ticks[i], t)
	}

	applyText(r.label, f.Label)
	applyText(r.valueText, f.ValueText)
	for i, t := range f.TickLabels {
		applyText(r.tickLabels[i], t)
	}

	applyLine(r.indicator, f.Indicator)

	if f.HasCenterDot {
		applyEllipse(r.center, f.CenterDot)
	} else {
		r.center.Hide()
	}
}

func (r *DialRenderer) resize(ticks, labels int) {
	r.ticks = r.ticks[:0]
	for i := 0; i < ticks; i++ {
		r.ticks = append(r.ticks, &canvas.Line{})
	}
	r.tickLabels = r.tickLabels[:0]
	for i := 0; i < labels; i++ {
		r.tickLabels = append(r.tickLabels, &canvas.Text{Alignment: fyne.TextAlignCenter})
	}
	r.rebuildObjects()
}

// rebuildObjects keeps the z-order of the face.
func (r *DialRenderer) rebuildObjects() {
	objs := make([]fyne.CanvasObject, 0, len(r.ticks)+len(r.tickLabels)+5)
	objs = append(objs, r.face)
	for _, t := range r.ticks {
		objs = append(objs, t)
	}
	objs = append(objs, r.label, r.valueText)
	for _, t := range r.tickLabels {
		objs = append(objs, t)
	}
	objs = append(objs, r.indicator, r.center)
	r.objects = objs
}

func applyEllipse(c *canvas.Circle, e face.Ellipse) {
	c.FillColor = e.FillColor
	c.StrokeColor = e.StrokeColor
	c.StrokeWidth = e.StrokeWidth
	c.Move(e.Position)
	c.Resize(e.Size)
}

func applyLine(l *canvas.Line, fl face.Line) {
	l.StrokeColor = fl.Color
	l.StrokeWidth = fl.Width
	l.Position1 = fl.Position1
	l.Position2 = fl.Position2
}

func applyText(t *canvas.Text, ft face.Text) {
	t.Text = ft.Text
	t.Color = ft.Color
	t.TextSize = ft.Font.Size
	t.TextStyle = ft.Font.Style
	box := fyne.MeasureText(ft.Text, ft.Font.Size, ft.Font.Style)
	pos := ft.Anchor.SubtractXY(box.Width/2, 0)
	if ft.VAlign == face.AlignMiddle {
		pos = pos.SubtractXY(0, box.Height/2)
	}
	t.Resize(box)
	t.Move(pos)
}
