package main

import (
	"context"
	"log"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"

	"github.com/roffe/uidial/pkg/ebus"
	"github.com/roffe/uidial/pkg/widgets"
)

type controls struct {
	app    fyne.App
	win    fyne.Window
	bus    *ebus.Bus
	gauges []widgets.IGauge

	selected widgets.IGauge

	heading *widget.Slider
	label   *widget.Entry
	picker  *widget.Select
	sweep   *widget.Check
	export  *widget.Button

	colorTarget *widget.Select
	colorName   *xwidget.CompletionEntry
	pickColor   *widget.Button
	copyValue   *widget.Button

	cancelSweep context.CancelFunc
}

func newControls(a fyne.App, w fyne.Window, bus *ebus.Bus, gauges []widgets.IGauge) *controls {
	c := &controls{
		app:    a,
		win:    w,
		bus:    bus,
		gauges: gauges,
	}

	c.heading = widget.NewSlider(0, 360)
	c.heading.Step = 1
	c.heading.OnChanged = func(v float64) {
		c.publish(v)
		a.Preferences().SetFloat("heading", v)
	}

	c.label = widget.NewEntry()
	c.label.SetPlaceHolder("Label")
	c.label.OnChanged = c.setLabel

	names := make([]string, 0, len(gauges))
	for _, g := range gauges {
		names = append(names, g.GetConfig().Name)
	}
	c.picker = widget.NewSelect(names, c.pick)

	c.sweep = widget.NewCheck("Sweep", c.setSweep)
	c.export = widget.NewButton("Export PNG", c.exportSelected)

	c.colorTarget = widget.NewSelect(colorTargets, nil)
	c.colorTarget.SetSelected(targetFill)
	c.colorName = newColorNameEntry(c.applySelectedColor)
	c.pickColor = widget.NewButton("Pick...", c.showColorPicker)
	c.copyValue = widget.NewButton("Copy", c.copySelected)

	if len(names) > 0 {
		c.picker.SetSelected(names[0])
	}
	c.heading.SetValue(a.Preferences().FloatWithFallback("heading", 0))
	return c
}

func (c *controls) Layout() fyne.CanvasObject {
	return container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Heading"), c.sweep, c.heading),
		container.NewBorder(nil, nil, c.picker, c.export, c.label),
		container.NewBorder(nil, nil, c.colorTarget, container.NewHBox(c.pickColor, c.copyValue), c.colorName),
	)
}

func (c *controls) publish(v float64) {
	if err := c.bus.Publish(topicHeading, v); err != nil {
		log.Println("publish:", err)
	}
}

func (c *controls) pick(name string) {
	for _, g := range c.gauges {
		if g.GetConfig().Name == name {
			c.selected = g
			c.label.SetText(g.Label())
			return
		}
	}
}

func (c *controls) setLabel(text string) {
	if c.selected == nil {
		return
	}
	c.selected.SetLabel(text)
	c.app.Preferences().SetString("label."+c.selected.GetConfig().Name, text)
}

func (c *controls) setSweep(on bool) {
	if c.cancelSweep != nil {
		c.cancelSweep()
		c.cancelSweep = nil
	}
	if !on {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelSweep = cancel
	go c.runSweep(ctx, c.heading.Value)
}

// runSweep turns the heading one degree per tick until ctx is done.
func (c *controls) runSweep(ctx context.Context, start float64) {
	t := time.NewTicker(20 * time.Millisecond)
	defer t.Stop()
	v := start
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			v = math.Mod(v+1, 360)
			val := v
			fyne.Do(func() {
				c.heading.SetValue(val)
			})
		}
	}
}

func (c *controls) Close() {
	if c.cancelSweep != nil {
		c.cancelSweep()
	}
}
