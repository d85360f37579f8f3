package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/roffe/uidial/pkg/colors"
	"github.com/roffe/uidial/pkg/face"
	"github.com/roffe/uidial/pkg/scale"
	"github.com/roffe/uidial/pkg/widgets"
	"github.com/spf13/viper"
)

// Config holds the settings of the render tool.
type Config struct {
	Output     string
	Width      int
	Height     int
	PixelScale float32 `mapstructure:"pixel_scale"`
	Background string
	Dials      []DialConfig
}

// DialConfig is one dial as written in the config file.
type DialConfig struct {
	Name        string
	Scale       string
	Label       string
	Value       float64
	CenterSize  *float64 `mapstructure:"center_size"`
	StrokeWidth float32  `mapstructure:"stroke_width"`
	FillColor   string   `mapstructure:"fill_color"`
	StrokeColor string   `mapstructure:"stroke_color"`
	LabelColor  string   `mapstructure:"label_color"`
	FontSize    float32  `mapstructure:"font_size"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("output", ".")
	v.SetDefault("width", int(face.IntrinsicSize.Width))
	v.SetDefault("height", int(face.IntrinsicSize.Height))
	v.SetDefault("pixel_scale", 1.0)
	v.SetDefault("background", "")
	v.SetDefault("dials", []map[string]any{
		{"name": "decimal", "scale": "decimal", "label": "Decimal"},
		{"name": "degrees", "scale": "degrees", "label": "Degrees"},
		{"name": "radians", "scale": "radians", "label": "Radians"},
	})
}

// Load reads configuration from path (or UIDIAL_CONFIG, or
// uidial.* in ~/.config/uidial or the working directory) and the environment. Env var overrides use prefix UIDIAL_.
func Load(path string) (Config, error) {
	v := viper.New()
	defaults(v)

	if path == "" {
		path = os.Getenv("UIDIAL_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "uidial"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("uidial")
	}

	v.SetEnvPrefix("UIDIAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.PixelScale <= 0 {
		return fmt.Errorf("invalid pixel scale %v", c.PixelScale)
	}
	if c.Background != "" {
		if _, err := colors.Lookup(c.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	if len(c.Dials) == 0 {
		return errors.New("no dials configured")
	}
	seen := make(map[string]bool, len(c.Dials))
	for i, d := range c.Dials {
		if d.Name == "" {
			return fmt.Errorf("dial %d: missing name", i)
		}
		if strings.ContainsAny(d.Name, `/\`) || d.Name == "." || d.Name == ".." {
			return fmt.Errorf("dial %q: name must be a plain file name", d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("dial %q: duplicate name", d.Name)
		}
		seen[d.Name] = true
		if _, err := d.Widget(); err != nil {
			return fmt.Errorf("dial %q: %w", d.Name, err)
		}
	}
	return nil
}

// BackgroundColor is nil when no background is configured.
func (c Config) BackgroundColor() color.Color {
	if c.Background == "" {
		return nil
	}
	col, err := colors.Lookup(c.Background)
	if err != nil {
		return nil
	}
	return col
}

// Widget converts the file form into a dashboard dial config.
func (d DialConfig) Widget() (widgets.DialConfig, error) {
	kind := scale.KindDefault
	if d.Scale != "" {
		k, err := scale.ParseKind(d.Scale)
		if err != nil {
			return widgets.DialConfig{}, err
		}
		kind = k
	}
	w := widgets.DialConfig{
		Name:        d.Name,
		Title:       d.Label,
		Scale:       kind,
		Value:       d.Value,
		CenterSize:  d.CenterSize,
		StrokeWidth: d.StrokeWidth,
		FontSize:    d.FontSize,
	}
	for _, c := range []struct {
		name string
		dst  *color.Color
	}{
		{d.FillColor, &w.FillColor},
		{d.StrokeColor, &w.StrokeColor},
		{d.LabelColor, &w.LabelColor},
	} {
		if c.name == "" {
			continue
		}
		col, err := colors.Lookup(c.name)
		if err != nil {
			return widgets.DialConfig{}, err
		}
		*c.dst = col
	}
	return w, nil
}

// State builds the face state for this dial on top of the defaults.
func (d DialConfig) State() (face.State, error) {
	w, err := d.Widget()
	if err != nil {
		return face.State{}, err
	}
	return w.ApplyTo(face.DefaultState()), nil
}
