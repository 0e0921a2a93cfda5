package render

import "github.com/charmbracelet/lipgloss"

// Palette used by Draw. Colors adapt to light and dark terminal backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted     lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	colorHighlightBorder lipgloss.TerminalColor = ac("98", "141")  // purple
	colorHighlightBg     lipgloss.TerminalColor = ac("189", "236") // purple tint
	colorNormalBorder    lipgloss.TerminalColor = ac("27", "62")   // blue
	colorSelectedBorder  lipgloss.TerminalColor = ac("232", "255")

	colorPillBg     lipgloss.TerminalColor = ac("54", "54")
	colorPillFg     lipgloss.TerminalColor = ac("255", "255")
	colorButtonBg   lipgloss.TerminalColor = ac("98", "98")
	colorConnector  lipgloss.TerminalColor = ac("141", "141")
	colorActionBg   lipgloss.TerminalColor = ac("254", "235")
	colorActionFg   lipgloss.TerminalColor = ac("241", "250")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")

	colorEdit       lipgloss.TerminalColor = ac("136", "221") // yellow
	colorEditTask   lipgloss.TerminalColor = ac("28", "78")   // green
	colorDelete     lipgloss.TerminalColor = ac("160", "203") // red
	colorSideOn     lipgloss.TerminalColor = ac("28", "78")
	colorSideBg     lipgloss.TerminalColor = ac("194", "22")
	colorSideBorder lipgloss.TerminalColor = ac("114", "71")
	colorInputBg    lipgloss.TerminalColor = ac("254", "234")
)
