package main

import (
	"image/color"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"
	"github.com/lusingander/colorpicker"

	"github.com/roffe/uidial/pkg/colors"
	"github.com/roffe/uidial/pkg/widgets"
)

const (
	targetFill   = "Fill"
	targetStroke = "Stroke"
	targetLabel  = "Label"
)

var colorTargets = []string{targetFill, targetStroke, targetLabel}

func applyColor(g widgets.IGauge, target string, c color.Color) {
	switch target {
	case targetFill:
		g.SetFillColor(c)
	case targetStroke:
		g.SetStrokeColor(c)
	case targetLabel:
		g.SetLabelColor(c)
	}
}

func currentColor(g widgets.IGauge, target string) color.Color {
	st := g.State()
	switch target {
	case targetFill:
		return st.FillColor
	case targetStroke:
		return st.StrokeColor
	case targetLabel:
		return st.LabelColor
	}
	return nil
}

// matchColorNames returns the sorted palette names containing s.
func matchColorNames(s string) []string {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || strings.HasPrefix(s, "#") {
		return nil
	}
	var results []string
	for _, name := range colors.Names() {
		if strings.Contains(name, s) {
			results = append(results, name)
		}
	}
	sort.Strings(results)
	return results
}

func newColorNameEntry(onColor func(color.Color)) *xwidget.CompletionEntry {
	e := xwidget.NewCompletionEntry([]string{})
	e.PlaceHolder = "Colour name or #RRGGBB"
	e.OnChanged = func(s string) {
		results := matchColorNames(s)
		if len(results) == 0 {
			e.HideCompletion()
			return
		}
		e.SetOptions(results)
		e.ShowCompletion()
	}
	e.OnSubmitted = func(s string) {
		c, err := colors.Lookup(s)
		if err != nil {
			fyne.LogError("colour", err)
			return
		}
		onColor(c)
	}
	return e
}

func (c *controls) applySelectedColor(col color.Color) {
	if c.selected == nil {
		return
	}
	applyColor(c.selected, c.colorTarget.Selected, col)
}

func (c *controls) showColorPicker() {
	if c.selected == nil {
		return
	}
	g, target := c.selected, c.colorTarget.Selected
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	if cur := currentColor(g, target); cur != nil {
		picker.SetColor(cur)
	}
	picker.SetOnChanged(func(col color.Color) {
		applyColor(g, target, col)
	})

	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		widget.NewLabel(g.GetConfig().Name+" "+strings.ToLower(target)),
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), c.win.Canvas())
	modal.Show()
}

func (c *controls) copySelected() {
	if c.selected == nil {
		return
	}
	copyText(c.app, c.selected.ValueText())
}
