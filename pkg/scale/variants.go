package scale

import (
	"math"
	"strconv"

	"github.com/roffe/uidial/pkg/common"
)

// Default treats the value itself as radians, counterclockwise positive.
type Default struct{}

func (Default) Kind() Kind            { return KindDefault }
func (Default) AbsZeroValue() float64 { return 0 }

func (Default) Ticks() []Tick {
	return []Tick{
		{Count: 4, Length: 0.2},
	}
}

func (Default) TickLabels() []TickLabel {
	return []TickLabel{
		NewTickLabel(0, "0"),
	}
}

func (Default) Angle(v float64) float64 { return -v }

func (Default) AngleText(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Decimal covers 0-100, rotated so 25 sits at the unrotated zero angle.
type Decimal struct{}

func (Decimal) Kind() Kind            { return KindDecimal }
func (Decimal) AbsZeroValue() float64 { return 25 }

func (Decimal) Ticks() []Tick {
	return []Tick{
		{Count: 10, Length: 0.2},
		{Count: 20, Length: 0.15},
		{Count: 100, Length: 0.1},
	}
}

func (Decimal) TickLabels() []TickLabel {
	labels := make([]TickLabel, 0, 10)
	for i := 0; i < 10; i++ {
		labels = append(labels, NewTickLabel(float64(i*10), strconv.Itoa(i*10)))
	}
	return labels
}

func (Decimal) Angle(v float64) float64 { return v * common.TwoPi / 100 }

func (Decimal) AngleText(v float64) string { return truncText(v) }

// Degrees covers 0-360, clockwise.
type Degrees struct{}

func (Degrees) Kind() Kind            { return KindDegrees }
func (Degrees) AbsZeroValue() float64 { return 0 }

func (Degrees) Ticks() []Tick {
	return []Tick{
		{Count: 4, Length: 0.2},
		{Count: 36, Length: 0.15},
		{Count: 36 * 2, Length: 0.1},
	}
}

func (Degrees) TickLabels() []TickLabel {
	return []TickLabel{
		NewTickLabel(0, "0°"),
		NewTickLabel(90, "90°"),
		NewTickLabel(180, "180°"),
		NewTickLabel(270, "270°"),
	}
}

func (Degrees) Angle(v float64) float64 { return -v * common.TwoPi / 360 }

func (Degrees) AngleText(v float64) string { return truncText(v) + "°" }

// Radians covers 0-2π. Angle and text come from Default; only the layout differs.
type Radians struct {
	Default
}

func (Radians) Kind() Kind { return KindRadians }

func (Radians) Ticks() []Tick {
	return []Tick{
		{Count: 4, Length: 0.2}, // 90°
		{Count: 8, Length: 0.15},
		{Count: 12, Length: 0.1},
	}
}

func (Radians) TickLabels() []TickLabel {
	return []TickLabel{
		NewTickLabel(0, "0"),
		NewTickLabel(math.Pi/2, "π/2"),
		NewTickLabel(math.Pi, "π"),
		NewTickLabel(3*math.Pi/2, "3π/2"),
	}
}
