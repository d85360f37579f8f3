// Package render draws dial faces into plain images, without a running UI.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"reflect"

	"fyne.io/fyne/v2"
	"github.com/roffe/uidial/pkg/face"
	"github.com/roffe/uidial/pkg/scale"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/vector"
)

type Option func(*Renderer)

// WithBackground clears the whole image with c before drawing the face.
func WithBackground(c color.Color) Option {
	return func(r *Renderer) {
		r.background = c
	}
}

// WithPixelScale renders at s pixels per logical unit.
func WithPixelScale(s float32) Option {
	return func(r *Renderer) {
		if s > 0 {
			r.pixelScale = s
		}
	}
}

type faceKey struct {
	style fyne.TextStyle
	size  float32
}

// Renderer rasterises dial frames. A Renderer caches font faces and is not
// safe for concurrent use.
type Renderer struct {
	background color.Color
	pixelScale float32

	fonts map[fyne.TextStyle]*opentype.Font
	faces map[faceKey]font.Face
	z     *vector.Rasterizer
}

func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		pixelScale: 1,
		fonts:      make(map[fyne.TextStyle]*opentype.Font),
		faces:      make(map[faceKey]font.Face),
		z:          vector.NewRasterizer(0, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	if _, err := r.font(fyne.TextStyle{}); err != nil {
		return nil, err
	}
	return r, nil
}

// Image lays out st with s at width x height logical units and draws it.
func (r *Renderer) Image(st face.State, s scale.Scale, width, height int) *image.RGBA {
	pw := int(float32(width) * r.pixelScale)
	ph := int(float32(height) * r.pixelScale)
	img := image.NewRGBA(image.Rect(0, 0, max(pw, 0), max(ph, 0)))
	r.Draw(img, face.Layout(st, s, fyne.NewSize(float32(width), float32(height))))
	return img
}

func (r *Renderer) WritePNG(w io.Writer, st face.State, s scale.Scale, width, height int) error {
	img := r.Image(st, s, width, height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Draw paints f onto dst in z-order. A nil destination (including a typed nil
// pointer) or an empty frame leaves dst untouched.
func (r *Renderer) Draw(dst draw.Image, f face.Frame) {
	if isNil(dst) || f.Empty() {
		return
	}
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	if r.background != nil {
		draw.Draw(dst, b, image.NewUniform(r.background), image.Point{}, draw.Src)
	}
	c := &surface{dst: dst, bounds: b, z: r.z, scale: r.pixelScale}

	c.fillEllipse(f.Face)
	c.strokeEllipse(f.Face)
	for _, l := range f.Ticks {
		c.line(l)
	}
	r.text(c, f.Label)
	r.text(c, f.ValueText)
	for _, t := range f.TickLabels {
		r.text(c, t)
	}
	c.line(f.Indicator)
	if f.HasCenterDot {
		c.fillEllipse(f.CenterDot)
	}
}

func isNil(dst draw.Image) bool {
	if dst == nil {
		return true
	}
	v := reflect.ValueOf(dst)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (r *Renderer) font(style fyne.TextStyle) (*opentype.Font, error) {
	key := fyne.TextStyle{Bold: style.Bold, Italic: style.Italic, Monospace: style.Monospace}
	if f, ok := r.fonts[key]; ok {
		return f, nil
	}
	var ttf []byte
	switch {
	case key.Monospace:
		ttf = gomono.TTF
	case key.Bold && key.Italic:
		ttf = gobolditalic.TTF
	case key.Bold:
		ttf = gobold.TTF
	case key.Italic:
		ttf = goitalic.TTF
	default:
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	r.fonts[key] = f
	return f, nil
}

func (r *Renderer) fontFace(fnt face.Font) (font.Face, error) {
	size := fnt.Size * r.pixelScale
	key := faceKey{style: fnt.Style, size: size}
	if ff, ok := r.faces[key]; ok {
		return ff, nil
	}
	f, err := r.font(fnt.Style)
	if err != nil {
		return nil, err
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %v: %w", size, err)
	}
	r.faces[key] = ff
	return ff, nil
}

// text skips labels that cannot be shaped.
func (r *Renderer) text(c *surface, t face.Text) {
	if t.Text == "" || t.Color == nil || t.Font.Size <= 0 {
		return
	}
	ff, err := r.fontFace(t.Font)
	if err != nil {
		return
	}
	c.text(ff, t)
}
