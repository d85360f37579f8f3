package gauge

import (
	"fyne.io/fyne/v2"
	"github.com/roffe/uidial/pkg/ebus"
	"github.com/roffe/uidial/pkg/scale"
	"github.com/roffe/uidial/pkg/widgets"
	"github.com/roffe/uidial/pkg/widgets/dial"
)

// Gauge is a dial bound to its dashboard config.
type Gauge struct {
	*dial.Dial
	cfg widgets.DialConfig
}

func (g *Gauge) GetConfig() widgets.DialConfig { return g.cfg }

// New builds the dial described by cfg and subscribes it to cfg.Topic on bus.
// The returned funcs cancel the subscriptions.
func New(bus *ebus.Bus, cfg widgets.DialConfig) (widgets.IGauge, []func()) {
	d := dial.NewEmbedded(scale.New(cfg.Scale))
	g := &Gauge{Dial: d, cfg: cfg}
	g.ExtendBaseWidget(g)
	Apply(d, cfg)
	if cfg.Topic == "" || bus == nil {
		return g, nil
	}
	cancel := bus.SubscribeFunc(cfg.Topic, func(v float64) {
		fyne.Do(func() {
			d.SetValue(v)
		})
	})
	return g, []func(){cancel}
}

// Apply copies the non-zero settings of cfg onto d.
func Apply(d *dial.Dial, cfg widgets.DialConfig) {
	d.SetState(cfg.ApplyTo(d.State()))
	if cfg.MinSize.Width > 0 && cfg.MinSize.Height > 0 {
		d.SetMinSize(cfg.MinSize)
	}
}
