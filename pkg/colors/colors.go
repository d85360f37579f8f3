package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrUnknownColor = errors.New("unknown color")

// System palette, light appearance.
var (
	SystemBackground = color.RGBA{255, 255, 255, 255}
	SystemGray2      = color.RGBA{174, 174, 178, 255}
	SecondaryLabel   = color.RGBA{60, 60, 67, 153}
	SystemGreen      = color.RGBA{52, 199, 89, 255}
	SystemRed        = color.RGBA{255, 59, 48, 255}
	SystemBlue       = color.RGBA{0, 122, 255, 255}
	SystemOrange     = color.RGBA{255, 149, 0, 255}
	Label            = color.RGBA{0, 0, 0, 255}
)

var colorMap = map[string]color.RGBA{
	"systembackground": SystemBackground,
	"systemgray2":      SystemGray2,
	"secondarylabel":   SecondaryLabel,
	"systemgreen":      SystemGreen,
	"systemred":        SystemRed,
	"systemblue":       SystemBlue,
	"systemorange":     SystemOrange,
	"label":            Label,
	"black":            {0, 0, 0, 255},
	"white":            {255, 255, 255, 255},
	"transparent":      {0, 0, 0, 0},
}

// Lookup resolves a palette name (case insensitive) or a #RRGGBB / #RRGGBBAA hex string.
func Lookup(name string) (color.RGBA, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if c, ok := colorMap[n]; ok {
		return c, nil
	}
	if strings.HasPrefix(n, "#") {
		return parseHex(n[1:])
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

func Names() []string {
	names := make([]string, 0, len(colorMap))
	for n := range colorMap {
		names = append(names, n)
	}
	return names
}

// Hex formats c as #RRGGBBAA.
func Hex(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}

func parseHex(s string) (color.RGBA, error) {
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: bad hex length %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %v", ErrUnknownColor, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, nil
}
