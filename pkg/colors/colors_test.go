package colors_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/roffe/uidial/pkg/colors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "palette", in: "systemGreen", want: colors.SystemGreen},
		{name: "palette spaced", in: " SystemRed ", want: colors.SystemRed},
		{name: "hex rgb", in: "#102030", want: color.RGBA{0x10, 0x20, 0x30, 0xFF}},
		{name: "hex rgba", in: "#10203040", want: color.RGBA{0x10, 0x20, 0x30, 0x40}},
		{name: "bad hex", in: "#12345", wantErr: true},
		{name: "not hex", in: "#gggggg", wantErr: true},
		{name: "unknown", in: "mauve", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colors.Lookup(tt.in)
			if err != nil {
				if !tt.wantErr {
					t.Errorf("Lookup(%q) failed: %v", tt.in, err)
				}
				if !errors.Is(err, colors.ErrUnknownColor) {
					t.Errorf("Lookup(%q) err = %v, want ErrUnknownColor", tt.in, err)
				}
				return
			}
			if tt.wantErr {
				t.Fatalf("Lookup(%q) succeeded unexpectedly", tt.in)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := colors.Hex(color.RGBA{0x10, 0x20, 0x30, 0xFF}); got != "#102030ff" {
		t.Errorf("Hex() = %q", got)
	}
	c, err := colors.Lookup(colors.Hex(colors.SecondaryLabel))
	if err != nil || c != colors.SecondaryLabel {
		t.Errorf("Hex round trip = %v %v", c, err)
	}
}
