package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/roffe/uidial/pkg/colors"
	"github.com/roffe/uidial/pkg/face"
	"github.com/roffe/uidial/pkg/render"
	"github.com/roffe/uidial/pkg/scale"
)

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func newRenderer(t *testing.T, opts ...render.Option) *render.Renderer {
	t.Helper()
	r, err := render.New(opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return r
}

func TestImagePixels(t *testing.T) {
	r := newRenderer(t)
	st := face.DefaultState()
	st.StrokeWidth = 4

	tests := []struct {
		name  string
		kind  scale.Kind
		value float64
		at    image.Point
		want  color.RGBA
	}{
		{"outside face", scale.KindDefault, 0, image.Pt(0, 0), color.RGBA{}},
		{"face fill", scale.KindDefault, 0, image.Pt(40, 40), colors.SystemBackground},
		{"centre dot", scale.KindDefault, 0, image.Pt(63, 63), colors.SystemGray2},
		{"neutral indicator", scale.KindDefault, 0, image.Pt(100, 63), colors.SystemGreen},
		{"decimal zero points up", scale.KindDecimal, 0, image.Pt(63, 20), colors.SystemGreen},
		{"decimal 50 points down", scale.KindDecimal, 50, image.Pt(63, 100), colors.SystemRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := st
			st.Value = tt.value
			img := r.Image(st, scale.New(tt.kind), 128, 128)
			if got := rgba(img.At(tt.at.X, tt.at.Y)); got != tt.want {
				t.Errorf("pixel %v = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestBackground(t *testing.T) {
	bg := color.RGBA{10, 20, 30, 255}
	r := newRenderer(t, render.WithBackground(bg))
	img := r.Image(face.DefaultState(), scale.New(scale.KindDegrees), 64, 64)
	if got := rgba(img.At(0, 0)); got != bg {
		t.Errorf("corner = %v, want background %v", got, bg)
	}
}

func TestNoSurface(t *testing.T) {
	r := newRenderer(t)
	f := face.Layout(face.DefaultState(), scale.New(scale.KindDecimal), fyne.NewSize(64, 64))
	r.Draw(nil, f) // must not panic
	var typed *image.RGBA
	r.Draw(typed, f)
	var paletted *image.Paletted
	r.Draw(paletted, f)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	r.Draw(img, face.Layout(face.DefaultState(), scale.New(scale.KindDecimal), fyne.Size{}))
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("empty frame touched the image")
		}
	}
}

func TestWritePNG(t *testing.T) {
	r := newRenderer(t, render.WithPixelScale(2))
	var buf bytes.Buffer
	st := face.DefaultState()
	st.Label = "Heading"
	st.Value = 90
	if err := r.WritePNG(&buf, st, scale.New(scale.KindDegrees), 128, 128); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(256, 256) {
		t.Errorf("size = %v, want 256x256", got)
	}
	if got := rgba(img.At(128, 20)); got != colors.SystemRed {
		t.Errorf("indicator pixel = %v, want red", got)
	}
}

func TestTextStyles(t *testing.T) {
	r := newRenderer(t)
	for _, style := range []fyne.TextStyle{{}, {Bold: true}, {Italic: true}, {Bold: true, Italic: true}, {Monospace: true}} {
		st := face.DefaultState()
		st.LabelFont = face.Font{Size: 14, Style: style}
		st.LabelColor = colors.Label
		img := r.Image(st, scale.New(scale.KindDecimal), 128, 128)
		var dark int
		for y := 39; y < 55; y++ {
			for x := 40; x < 88; x++ {
				if c := rgba(img.At(x, y)); c.R < 128 && c.G < 128 && c.A == 255 {
					dark++
				}
			}
		}
		if dark == 0 {
			t.Errorf("style %+v: no label pixels drawn", style)
		}
	}
}

func TestNonSquareImage(t *testing.T) {
	r := newRenderer(t)
	img := r.Image(face.DefaultState(), scale.New(scale.KindDecimal), 200, 100)
	tests := []struct {
		at   image.Point
		want color.RGBA
	}{
		{image.Pt(20, 50), color.RGBA{}},
		{image.Pt(180, 50), color.RGBA{}},
		{image.Pt(58, 44), colors.SystemBackground},
	}
	for _, tt := range tests {
		if got := rgba(img.At(tt.at.X, tt.at.Y)); got != tt.want {
			t.Errorf("pixel %v = %v, want %v", tt.at, got, tt.want)
		}
	}
}
