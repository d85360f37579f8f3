package dial

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/uidial/pkg/face"
	"github.com/roffe/uidial/pkg/scale"
)

// Dial is a round gauge showing one value on a pluggable scale.
// Every setter requests a redraw.
type Dial struct {
	widget.BaseWidget

	scale   scale.Scale
	state   face.State
	minsize fyne.Size
}

func New(kind scale.Kind) *Dial {
	return NewWithScale(scale.New(kind))
}

func NewWithScale(s scale.Scale) *Dial {
	d := NewEmbedded(s)
	d.ExtendBaseWidget(d)
	return d
}

// NewEmbedded returns a Dial meant to be embedded in another widget. The outer
// widget must call ExtendBaseWidget on itself before use.
func NewEmbedded(s scale.Scale) *Dial {
	if s == nil {
		s = scale.Default{}
	}
	return &Dial{
		scale:   s,
		state:   face.DefaultState(),
		minsize: face.IntrinsicSize,
	}
}

func NewDecimal() *Dial { return New(scale.KindDecimal) }
func NewDegrees() *Dial { return New(scale.KindDegrees) }
func NewRadians() *Dial { return New(scale.KindRadians) }

func (d *Dial) Scale() scale.Scale { return d.scale }
func (d *Dial) State() face.State  { return d.state }
func (d *Dial) Label() string      { return d.state.Label }
func (d *Dial) Value() float64     { return d.state.Value }

// ValueText is the value as rendered by the active scale.
func (d *Dial) ValueText() string { return d.scale.AngleText(d.state.Value) }

func (d *Dial) SetScale(s scale.Scale) {
	if s == nil {
		s = scale.Default{}
	}
	d.scale = s
	d.Refresh()
}

func (d *Dial) SetState(st face.State) {
	d.state = st
	d.Refresh()
}

func (d *Dial) SetLabel(label string) {
	d.state.Label = label
	d.Refresh()
}

func (d *Dial) SetValue(value float64) {
	if value == d.state.Value {
		return
	}
	d.state.Value = value
	d.Refresh()
}

func (d *Dial) SetCenterSize(size float64) {
	d.state.CenterSize = size
	d.Refresh()
}

func (d *Dial) SetStrokeWidth(width float32) {
	d.state.StrokeWidth = width
	d.Refresh()
}

func (d *Dial) SetFillColor(c color.Color) {
	d.state.FillColor = c
	d.Refresh()
}

func (d *Dial) SetStrokeColor(c color.Color) {
	d.state.StrokeColor = c
	d.Refresh()
}

func (d *Dial) SetLabelColor(c color.Color) {
	d.state.LabelColor = c
	d.Refresh()
}

func (d *Dial) SetLabelFont(f face.Font) {
	d.state.LabelFont = f
	d.Refresh()
}

func (d *Dial) SetMinSize(size fyne.Size) {
	d.minsize = size
	d.Refresh()
}

func (d *Dial) CreateRenderer() fyne.WidgetRenderer {
	r := &DialRenderer{
		Dial:      d,
		face:      &canvas.Circle{},
		center:    &canvas.Circle{},
		label:     &canvas.Text{Alignment: fyne.TextAlignCenter},
		valueText: &canvas.Text{Alignment: fyne.TextAlignCenter},
		indicator: &canvas.Line{},
	}
	r.apply()
	return r
}
