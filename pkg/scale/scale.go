package scale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultLabelRadius is the radial fraction used for tick labels that do not set one.
	DefaultLabelRadius = 0.6
)

var ErrUnknownKind = errors.New("unknown scale kind")

// Tick describes one ring of evenly spaced marks. Length is the fractional
// inset from the rim and should be in (0,1).
type Tick struct {
	Count  int
	Length float64
}

// TickLabel is a text anchored at the angular position of Value.
type TickLabel struct {
	Value  float64
	Text   string
	Radius float64
}

func NewTickLabel(value float64, text string) TickLabel {
	return TickLabel{Value: value, Text: text, Radius: DefaultLabelRadius}
}

// Scale maps a domain value to a rendering angle and text, and provides the
// static tick layout for that domain.
type Scale interface {
	Kind() Kind
	// AbsZeroValue is the domain value that is rotated onto the canonical
	// on-screen zero angle.
	AbsZeroValue() float64
	Ticks() []Tick
	TickLabels() []TickLabel
	// Angle returns the angle in radians for v, before zero rotation.
	Angle(v float64) float64
	AngleText(v float64) string
}

// ZeroAngle is the rendering angle of the scale's zero reference.
func ZeroAngle(s Scale) float64 {
	return s.Angle(s.AbsZeroValue())
}

type Kind int

const (
	KindDefault Kind = iota
	KindDecimal
	KindDegrees
	KindRadians
)

var kindNames = [...]string{
	KindDefault: "default",
	KindDecimal: "decimal",
	KindDegrees: "degrees",
	KindRadians: "radians",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func Kinds() []Kind {
	return []Kind{KindDefault, KindDecimal, KindDegrees, KindRadians}
}

func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, kn := range kindNames {
		if kn == n {
			return Kind(i), nil
		}
	}
	return KindDefault, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New returns the scale for kind. Unknown kinds get the Default scale.
func New(kind Kind) Scale {
	switch kind {
	case KindDecimal:
		return Decimal{}
	case KindDegrees:
		return Degrees{}
	case KindRadians:
		return Radians{}
	default:
		return Default{}
	}
}

// truncText formats the integer part of v, truncated toward zero.
func truncText(v float64) string {
	t := math.Trunc(v)
	if t == 0 {
		t = 0 // drop negative zero
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}
