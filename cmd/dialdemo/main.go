package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/roffe/uidial/pkg/ebus"
	"github.com/roffe/uidial/pkg/layout"
	"github.com/roffe/uidial/pkg/scale"
	"github.com/roffe/uidial/pkg/theme"
	"github.com/roffe/uidial/pkg/widgets"
	"github.com/roffe/uidial/pkg/widgets/gauge"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

const (
	topicHeading    = "heading"
	topicHeadingRad = "heading.rad"
	topicHeadingPct = "heading.pct"
)

var dashboard = []widgets.DialConfig{
	{Name: "default", Title: "Default", Scale: scale.KindDefault, Topic: topicHeadingRad},
	{Name: "decimal", Title: "Decimal", Scale: scale.KindDecimal, Topic: topicHeadingPct},
	{Name: "degrees", Title: "Degrees", Scale: scale.KindDegrees, Topic: topicHeading},
	{Name: "radians", Title: "Radians", Scale: scale.KindRadians, Topic: topicHeadingRad},
}

func main() {
	a := app.NewWithID("com.roffe.uidial")
	a.Settings().SetTheme(theme.DialTheme{})

	bus := ebus.Default()
	bus.RegisterAggregator(
		ebus.DegreesToRadians(topicHeading, topicHeadingRad),
		ebus.PercentOfTurn(topicHeading, topicHeadingPct),
	)

	var gauges []widgets.IGauge
	var cancels []func()
	objs := make([]fyne.CanvasObject, 0, len(dashboard))
	for _, cfg := range dashboard {
		if label := a.Preferences().String("label." + cfg.Name); label != "" {
			cfg.Title = label
		}
		g, cancel := gauge.New(bus, cfg)
		gauges = append(gauges, g)
		cancels = append(cancels, cancel...)
		objs = append(objs, g)
	}
	defer func() {
		for _, c := range cancels {
			c()
		}
	}()

	w := a.NewWindow("Dials")
	ctrl := newControls(a, w, bus, gauges)
	w.SetContent(container.NewBorder(nil, ctrl.Layout(), nil, nil,
		container.New(layout.NewGridFor(len(objs), 4), objs...),
	))
	w.Resize(fyne.NewSize(640, 720))
	w.SetOnClosed(ctrl.Close)
	w.ShowAndRun()
}
