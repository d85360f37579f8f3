package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/roffe/uidial/pkg/config"
	"github.com/roffe/uidial/pkg/render"
	"github.com/roffe/uidial/pkg/scale"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

func main() {
	cfgFile := flag.String("config", "", "config file (yaml, toml or json)")
	jobs := flag.Int("j", 4, "dials rendered in parallel")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := run(context.Background(), cfg, *jobs); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, jobs int) error {
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	ok := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for _, d := range cfg.Dials {
		d := d // per-iteration copy; go.mod targets go 1.21 loop semantics
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			filename := filepath.Join(cfg.Output, d.Name+".png")
			if err := renderDial(cfg, d, filename); err != nil {
				fmt.Fprintf(os.Stderr, "%s %s: %v\n", fail("FAIL"), d.Name, err)
				return fmt.Errorf("%s: %w", d.Name, err)
			}
			fmt.Printf("%s %s\n", ok("OK"), filename)
			return nil
		})
	}
	return g.Wait()
}

func renderDial(cfg config.Config, d config.DialConfig, filename string) error {
	st, err := d.State()
	if err != nil {
		return err
	}
	w, err := d.Widget()
	if err != nil {
		return err
	}
	opts := []render.Option{render.WithPixelScale(cfg.PixelScale)}
	if bg := cfg.BackgroundColor(); bg != nil {
		opts = append(opts, render.WithBackground(bg))
	}
	// one renderer per dial, font faces are not shared between goroutines
	r, err := render.New(opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := r.WritePNG(f, st, scale.New(w.Scale), cfg.Width, cfg.Height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
