package core

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorTabOff   lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"

	colorBlue   lipgloss.Color = "#89b4fa"
	colorGreen  lipgloss.Color = "#a6e3a1"
	colorYellow lipgloss.Color = "#f9e2af"
	colorPurple lipgloss.Color = "#cba6f7"
	colorPeach  lipgloss.Color = "#fab387"
)

// TransportColor maps a catalog color tag to a palette color.
func TransportColor(tag string) lipgloss.Color {
	switch tag {
	case "blue":
		return colorBlue
	case "green":
		return colorGreen
	case "yellow":
		return colorYellow
	case "purple":
		return colorPurple
	default:
		return colorText
	}
}

// Palette accessors for packages that render panels and sheets.
func AccentColor() lipgloss.Color  { return colorAccent }
func MutedColor() lipgloss.Color   { return colorMuted }
func SuccessColor() lipgloss.Color { return colorSuccess }
func VIPColor() lipgloss.Color     { return colorPeach }

// TransportGlyph maps a catalog icon name to a single-cell glyph.
func TransportGlyph(icon string) string {
	switch icon {
	case "Bus":
		return "▣"
	case "Car":
		return "◆"
	case "Users":
		return "⚇"
	default:
		return "●"
	}
}
