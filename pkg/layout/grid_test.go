package layout_test

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/roffe/uidial/pkg/layout"
)

func TestGridLayout(t *testing.T) {
	g := layout.NewGrid(2, 2, 5)
	objs := []fyne.CanvasObject{
		canvas.NewRectangle(nil), canvas.NewRectangle(nil),
		canvas.NewRectangle(nil), canvas.NewRectangle(nil),
		canvas.NewRectangle(nil),
	}
	g.Layout(objs, fyne.NewSize(220, 220))

	want := []fyne.Position{{X: 5, Y: 5}, {X: 115, Y: 5}, {X: 5, Y: 115}, {X: 115, Y: 115}}
	for i, p := range want {
		if objs[i].Position() != p {
			t.Errorf("object %d at %v, want %v", i, objs[i].Position(), p)
		}
		if objs[i].Size() != fyne.NewSize(100, 100) {
			t.Errorf("object %d size %v", i, objs[i].Size())
		}
	}
	if objs[4].Size() != (fyne.Size{}) {
		t.Errorf("overflow object was laid out")
	}
}

func TestGridMinSize(t *testing.T) {
	r := canvas.NewRectangle(nil)
	r.SetMinSize(fyne.NewSize(128, 100))
	g := layout.NewGrid(2, 1, 2)
	if got := g.MinSize([]fyne.CanvasObject{r}); got != fyne.NewSize(264, 104) {
		t.Errorf("MinSize() = %v", got)
	}
}

func TestNewGridFor(t *testing.T) {
	tests := []struct{ n, cols, rows int }{
		{0, 1, 1}, {1, 1, 1}, {2, 2, 1}, {4, 2, 2}, {5, 3, 2}, {9, 3, 3},
	}
	for _, tt := range tests {
		g := layout.NewGridFor(tt.n, 0)
		if g.Cols != tt.cols || g.Rows != tt.rows {
			t.Errorf("NewGridFor(%d) = %dx%d, want %dx%d", tt.n, g.Cols, g.Rows, tt.cols, tt.rows)
		}
	}
}
