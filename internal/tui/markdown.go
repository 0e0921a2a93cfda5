package tui

import (
	"os"
	"strings"

	"flowedit/internal/docs"

	"github.com/charmbracelet/lipgloss"
)

func renderMarkdown(md string, width int) string {
	return docs.Render(md, width, markdownStyle())
}

func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("FLOWEDIT_TUI_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	// Follow the TUI theme so markdown stays readable when the theme is forced.
	if v := themeOverride(); v != "" {
		return v
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
