package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	// TitleRow selects a card's title rather than one of its actions.
	TitleRow = -1

	cardW      = 46
	sidePanelW = 26
	sideLinkW  = 6
	minDrawW   = cardW + 4
)

// Selection addresses one row of one card by card position.
type Selection struct {
	Card int
	Row  int
}

type DrawOptions struct {
	// Width centers the drawing; values below the card width are ignored.
	Width int

	// Selected is highlighted when set.
	Selected *Selection

	// Input replaces the text of the row being edited when set. Callers pass
	// the rendered view of their text input here.
	Input string
}

// Drawing is a rendered chain plus the line each card starts on.
type Drawing struct {
	Text    string
	CardTop []int
}

// RowLine returns the line of sel within d, or -1.
func (d Drawing) RowLine(sel Selection) int {
	if sel.Card < 0 || sel.Card >= len(d.CardTop) {
		return -1
	}
	// Top border, then the title, a blank line and the actions.
	line := d.CardTop[sel.Card] + 1
	if sel.Row != TitleRow {
		line += 2 + sel.Row
	}
	return line
}

// Draw renders v as a vertical chain of cards.
func Draw(v View, opts DrawOptions) string {
	return Layout(v, opts).Text
}

func Layout(v View, opts DrawOptions) Drawing {
	w := opts.Width
	if w < minDrawW {
		w = minDrawW
	}

	var blocks []string
	blocks = append(blocks,
		lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(v.Heading),
		"",
		renderPill(v.StartPill),
		renderConnector(1),
	)

	d := Drawing{CardTop: make([]int, len(v.Cards))}
	line := lineCount(blocks)
	for i := range v.Cards {
		c := v.Cards[i]
		row := renderCardRow(i, c, opts)
		// Side panels are never taller than a card, so the card starts the row.
		d.CardTop[i] = line
		blocks = append(blocks, row)
		line += strings.Count(row, "\n") + 1
		if c.ConnectorBelow {
			blocks = append(blocks, renderConnector(2))
			line += 2
		}
	}

	blocks = append(blocks,
		renderConnector(1),
		renderButton("+ "+v.AddLabel),
		renderConnector(1),
		renderPill(v.EndPill),
	)

	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, placeCenter(w, b))
	}
	d.Text = strings.Join(out, "\n")
	return d
}

// placeCenter centers each line of s within w cells. Wider lines are cut to w.
func placeCenter(w int, s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if xansi.StringWidth(ln) > w {
			ln = xansi.Truncate(ln, w, "")
		}
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Center, ln)
	}
	return strings.Join(lines, "\n")
}

func lineCount(blocks []string) int {
	n := 0
	for _, b := range blocks {
		n += strings.Count(b, "\n") + 1
	}
	return n
}

func renderPill(label string) string {
	return lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(colorPillFg).
		Background(colorPillBg).
		Render(label)
}

func renderButton(label string) string {
	return lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(colorPillFg).
		Background(colorButtonBg).
		Render(label)
}

func renderConnector(h int) string {
	st := lipgloss.NewStyle().Foreground(colorConnector)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = st.Render("┊")
	}
	return strings.Join(lines, "\n")
}

func renderCardRow(i int, c Card, opts DrawOptions) string {
	card := renderCard(i, c, opts)
	if c.Side == nil {
		return card
	}
	link := lipgloss.NewStyle().Foreground(colorSideOn).Render(strings.Repeat("┄", sideLinkW))
	return lipgloss.JoinHorizontal(lipgloss.Center, card, link, renderSidePanel(*c.Side))
}

func renderCard(i int, c Card, opts DrawOptions) string {
	border := colorNormalBorder
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(cardW - 2).
		Padding(0, 1)
	if c.Accent == AccentHighlight {
		border = colorHighlightBorder
		st = st.Background(colorHighlightBg)
	}
	if opts.Selected != nil && opts.Selected.Card == i {
		border = colorSelectedBorder
	}
	st = st.BorderForeground(border)

	innerW := cardW - 4
	rows := []string{renderCardHeader(i, c, opts, innerW), ""}
	for _, a := range c.Actions {
		rows = append(rows, renderActionRow(i, a, opts, innerW))
	}
	return st.Render(strings.Join(rows, "\n"))
}

func renderCardHeader(i int, c Card, opts DrawOptions, innerW int) string {
	icons := []string{lipgloss.NewStyle().Foreground(colorEdit).Render("✎")}
	if c.Deletable {
		icons = append(icons, lipgloss.NewStyle().Foreground(colorDelete).Render("✖"))
	}
	arrow := lipgloss.NewStyle().Foreground(colorMuted)
	if c.SideOn {
		arrow = arrow.Foreground(colorSideOn)
	}
	icons = append(icons, arrow.Render("→"))
	affordances := strings.Join(icons, " ")

	titleW := innerW - lipgloss.Width(affordances) - 1
	var title string
	if c.EditingTitle && opts.Input != "" {
		title = renderInput(opts.Input, titleW)
	} else {
		title = lipgloss.NewStyle().Bold(true).Render(xansi.Truncate(c.Title, titleW, "…"))
	}
	if isSelected(opts, i, TitleRow) && !c.EditingTitle {
		title = lipgloss.NewStyle().Background(colorSelectedBg).Render(title)
	}
	gap := innerW - lipgloss.Width(title) - lipgloss.Width(affordances)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + affordances
}

func renderActionRow(card int, a ActionRow, opts DrawOptions, innerW int) string {
	bg := colorActionBg
	if isSelected(opts, card, a.Index) && !a.Editing {
		bg = colorSelectedBg
	}
	icon := lipgloss.NewStyle().Foreground(colorEditTask).Background(bg).Render("✎")
	labelW := innerW - 6
	var label string
	if a.Editing && opts.Input != "" {
		label = renderInput(opts.Input, labelW)
	} else {
		label = xansi.Truncate(a.Label, labelW, "…")
	}
	row := lipgloss.NewStyle().
		Foreground(colorActionFg).
		Background(bg).
		Width(innerW - 2).
		Padding(0, 1)
	gap := innerW - 4 - lipgloss.Width(label) - 1
	if gap < 1 {
		gap = 1
	}
	return row.Render(label + strings.Repeat(" ", gap) + icon)
}

func renderInput(view string, w int) string {
	view = strings.ReplaceAll(view, "\n", " ")
	view = strings.ReplaceAll(view, "\r", " ")
	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		view,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > w {
		line = xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}

func renderSidePanel(p SidePanel) string {
	title := lipgloss.NewStyle().Bold(true).Render(p.Title)
	channel := lipgloss.NewStyle().
		Padding(0, 1).
		Width(sidePanelW - 6).
		Background(colorActionBg).
		Render(p.Channel)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSideBorder).
		Background(colorSideBg).
		Width(sidePanelW - 2).
		Padding(0, 1).
		Render(title + "\n" + channel)
}

func isSelected(opts DrawOptions, card, row int) bool {
	return opts.Selected != nil && opts.Selected.Card == card && opts.Selected.Row == row
}
