package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/roffe/uidial/pkg/face"
	"github.com/roffe/uidial/pkg/scale"
)

type IGauge interface {
	fyne.Widget
	SetValue(float64)
	Value() float64
	SetLabel(string)
	Label() string
	ValueText() string
	SetFillColor(color.Color)
	SetStrokeColor(color.Color)
	SetLabelColor(color.Color)
	State() face.State
	Scale() scale.Scale
	GetConfig() DialConfig
}
