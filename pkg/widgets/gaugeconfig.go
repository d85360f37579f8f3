package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/roffe/uidial/pkg/face"
	"github.com/roffe/uidial/pkg/scale"
)

// DialConfig describes one dial on a dashboard. Zero values keep the dial defaults.
type DialConfig struct {
	Name        string
	Title       string
	Scale       scale.Kind
	Topic       string // bus topic the dial follows, empty for none
	Value       float64
	CenterSize  *float64
	StrokeWidth float32
	FontSize    float32
	FillColor   color.Color
	StrokeColor color.Color
	LabelColor  color.Color
	MinSize     fyne.Size
}

// ApplyTo returns st with the non-zero settings of c applied.
func (c DialConfig) ApplyTo(st face.State) face.State {
	if c.Title != "" {
		st.Label = c.Title
	}
	st.Value = c.Value
	if c.CenterSize != nil {
		st.CenterSize = *c.CenterSize
	}
	if c.StrokeWidth > 0 {
		st.StrokeWidth = c.StrokeWidth
	}
	if c.FontSize > 0 {
		st.LabelFont.Size = c.FontSize
	}
	if c.FillColor != nil {
		st.FillColor = c.FillColor
	}
	if c.StrokeColor != nil {
		st.StrokeColor = c.StrokeColor
	}
	if c.LabelColor != nil {
		st.LabelColor = c.LabelColor
	}
	return st
}
