package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/skratchdot/open-golang/open"
	sdialog "github.com/sqweek/dialog"

	"github.com/roffe/uidial/pkg/face"
	"github.com/roffe/uidial/pkg/render"
	"github.com/roffe/uidial/pkg/scale"
	"github.com/roffe/uidial/pkg/widgets"
)

func (c *controls) exportSelected() {
	g := c.selected
	if g == nil {
		return
	}
	st, sc := g.State(), g.Scale()
	size := g.Size()
	if size.Width <= 0 || size.Height <= 0 {
		size = g.MinSize()
	}
	go func() {
		filename, err := sdialog.File().Filter("PNG image", "png").Title("Export dial").Save()
		if err != nil {
			if errors.Is(err, sdialog.ErrCancelled) {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		if !strings.HasSuffix(strings.ToLower(filename), ".png") {
			filename += ".png"
		}
		if err := exportPNG(filename, g, st, sc, size); err != nil {
			fyne.Do(func() {
				dialog.ShowError(err, c.win)
			})
			return
		}
		if err := open.Run(filename); err != nil {
			fyne.LogError("Error opening "+filename, err)
		}
	}()
}

func exportPNG(filename string, g widgets.IGauge, st face.State, sc scale.Scale, size fyne.Size) error {
	r, err := render.New(render.WithPixelScale(2))
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("export %s: %w", g.GetConfig().Name, err)
	}
	if err := r.WritePNG(f, st, sc, int(size.Width), int(size.Height)); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", g.GetConfig().Name, err)
	}
	return f.Close()
}
