package layout

import (
	"fyne.io/fyne/v2"
)

// Grid lays out objects row by row in equally sized cells.
type Grid struct {
	Cols, Rows int
	Padding    float32
	lastSize   fyne.Size
	lastCount  int
}

func (g *Grid) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if size == g.lastSize && len(objects) == g.lastCount {
		return
	}
	g.lastSize = size
	g.lastCount = len(objects)

	padding2 := g.Padding * 2
	cellWidth := (size.Width - float32(g.Cols)*padding2) / float32(g.Cols)
	cellHeight := (size.Height - float32(g.Rows)*padding2) / float32(g.Rows)

	for i, obj := range objects[:min(len(objects), g.Rows*g.Cols)] {
		row := i / g.Cols
		col := i % g.Cols

		obj.Move(fyne.NewPos(
			float32(col)*(cellWidth+padding2)+g.Padding,
			float32(row)*(cellHeight+padding2)+g.Padding,
		))
		obj.Resize(fyne.Size{Width: cellWidth, Height: cellHeight})
	}
}

func (g *Grid) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var cell fyne.Size
	for _, o := range objects {
		cell = cell.Max(o.MinSize())
	}
	w := cell.Width + 2*g.Padding
	h := cell.Height + 2*g.Padding
	return fyne.Size{Width: w * float32(g.Cols), Height: h * float32(g.Rows)}
}

// NewGrid creates a new Grid layout with the specified number of columns and rows
func NewGrid(cols, rows int, padding float32) *Grid {
	return &Grid{
		Cols:    max(cols, 1),
		Rows:    max(rows, 1),
		Padding: padding,
	}
}

// NewGridFor picks the smallest near-square grid holding n objects.
func NewGridFor(n int, padding float32) *Grid {
	cols := 1
	for cols*cols < n {
		cols++
	}
	rows := max((n+cols-1)/cols, 1)
	return NewGrid(cols, rows, padding)
}
