package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/roffe/uidial/pkg/colors"
)

// DialTheme is the light look the dials are designed for.
type DialTheme struct{}

var _ fyne.Theme = DialTheme{}

func (m DialTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 242, G: 242, B: 247, A: 255}
	case theme.ColorNameForeground:
		return colors.Label
	case theme.ColorNameSuccess:
		return colors.SystemGreen
	case theme.ColorNameError:
		return colors.SystemRed
	case theme.ColorNamePrimary:
		return colors.SystemBlue
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (m DialTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m DialTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m DialTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameText:
		return 14
	case theme.SizeNameCaptionText:
		return 11
	default:
		return theme.DefaultTheme().Size(name)
	}
}
