// Package face computes the drawing primitives of a round dial face from the
// dial state and its scale. It does not draw anything itself; widgets and
// offscreen renderers consume the resulting Frame.
package face

import (
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/roffe/uidial/pkg/colors"
)

// IntrinsicSize is the preferred size of a dial when nothing else is known.
var IntrinsicSize = fyne.NewSize(128, 128)

// Indicator colours. The neutral colour is used when the value is exactly 0,
// whatever the scale's zero reference is.
var (
	IndicatorNeutral color.Color = colors.SystemGreen
	IndicatorActive  color.Color = colors.SystemRed
)

type Font struct {
	Size  float32
	Style fyne.TextStyle
}

type State struct {
	Label       string
	Value       float64
	CenterSize  float64
	StrokeWidth float32
	FillColor   color.Color
	StrokeColor color.Color
	LabelColor  color.Color
	LabelFont   Font
}

func DefaultState() State {
	return State{
		Label:       "Label",
		Value:       0,
		CenterSize:  2,
		StrokeWidth: 1,
		FillColor:   colors.SystemBackground,
		StrokeColor: colors.SystemGray2,
		LabelColor:  colors.SecondaryLabel,
		LabelFont:   Font{Size: 12},
	}
}
