package render

import (
	"strings"
	"testing"

	"flowedit/internal/editor"
	"flowedit/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestBuild_SeedCards(t *testing.T) {
	v := Build(store.Seed(), editor.Cursor{})
	if len(v.Cards) != 5 {
		t.Fatalf("expected 5 cards; got %d", len(v.Cards))
	}

	for i, c := range v.Cards {
		if got, want := c.Deletable, c.NodeID != 1; got != want {
			t.Fatalf("card %d: deletable=%v; want %v", c.NodeID, got, want)
		}
		if got, want := c.ConnectorBelow, i < len(v.Cards)-1; got != want {
			t.Fatalf("card %d: connectorBelow=%v; want %v", c.NodeID, got, want)
		}
		if got, want := c.Side != nil, c.SideOn; got != want {
			t.Fatalf("card %d: side panel=%v; flag=%v", c.NodeID, got, want)
		}
	}

	if v.Cards[0].Accent != AccentHighlight || v.Cards[4].Accent != AccentHighlight {
		t.Fatalf("expected start and last cards highlighted")
	}
	for _, c := range v.Cards[1:4] {
		if c.Accent != AccentNormal {
			t.Fatalf("card %d: expected normal accent", c.NodeID)
		}
	}
	if v.Cards[1].Side == nil || v.Cards[1].Side.Title != "Reminder Message" || v.Cards[1].Side.Channel != "WhatsApp" {
		t.Fatalf("expected reminder side panel on node 2; got %#v", v.Cards[1].Side)
	}
}

func TestBuild_LastAccentFollowsAppend(t *testing.T) {
	v := Build(store.Append(store.Seed()), editor.Cursor{})
	if v.Cards[4].Accent != AccentNormal {
		t.Fatalf("expected node 5 to lose highlight once it is no longer last")
	}
	if !v.Cards[4].ConnectorBelow {
		t.Fatalf("expected connector below node 5")
	}
	if v.Cards[5].Accent != AccentHighlight || v.Cards[5].ConnectorBelow {
		t.Fatalf("expected appended node to be last")
	}
}

func TestBuild_EditingFlags(t *testing.T) {
	c := editor.BeginEditTask(editor.BeginEditTitle(editor.Cursor{}, 2), 3, 1)
	v := Build(store.Seed(), c)

	for _, card := range v.Cards {
		if card.EditingTitle != (card.NodeID == 2) {
			t.Fatalf("card %d: editingTitle=%v", card.NodeID, card.EditingTitle)
		}
		for _, a := range card.Actions {
			want := card.NodeID == 3 && a.Index == 1
			if a.Editing != want {
				t.Fatalf("card %d action %d: editing=%v", card.NodeID, a.Index, a.Editing)
			}
		}
	}
}

func TestDraw_ContainsChainChrome(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := Draw(Build(store.Seed(), editor.Cursor{}), DrawOptions{Width: 120})
	for _, want := range []string{
		"Workflow Editor",
		"Start",
		"Welcome to Tesla",
		"Compliance and Acknowledgment",
		"Reminder Message",
		"WhatsApp",
		"Add Another",
		"Ends",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected drawing to contain %q\n%s", want, out)
		}
	}
	if strings.Index(out, "Welcome to Tesla") > strings.Index(out, "Company Assets") {
		t.Fatalf("expected cards in store order")
	}
	if got := strings.Count(out, "Reminder Message"); got != 1 {
		t.Fatalf("expected exactly one side panel; got %d", got)
	}
}

func TestDraw_EditingRowShowsInput(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	c := editor.BeginEditTitle(editor.Cursor{}, 3)
	out := Draw(Build(store.Seed(), c), DrawOptions{Width: 120, Input: "> KYC draft"})
	if !strings.Contains(out, "> KYC draft") {
		t.Fatalf("expected input view in drawing\n%s", out)
	}
	if !strings.Contains(out, "Archive Verification") {
		t.Fatalf("expected actions of the edited node to remain visible")
	}
}

func TestDraw_LinesFitWidth(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	const w = 90
	out := Draw(Build(store.Seed(), editor.Cursor{}), DrawOptions{Width: w})
	for i, line := range strings.Split(out, "\n") {
		if lipgloss.Width(line) > w {
			t.Fatalf("line %d exceeds width %d: %q", i, w, line)
		}
	}
}

func TestLayout_RowLinePointsAtRow(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	d := Layout(Build(store.Seed(), editor.Cursor{}), DrawOptions{Width: 120})
	lines := strings.Split(d.Text, "\n")

	tests := []struct {
		sel  Selection
		want string
	}{
		{Selection{Card: 0, Row: TitleRow}, "Welcome to Tesla"},
		{Selection{Card: 0, Row: 2}, "Brochure"},
		{Selection{Card: 1, Row: 0}, "Data Collection"},
		{Selection{Card: 2, Row: 2}, "Compliance and Acknowledgment"},
		{Selection{Card: 4, Row: TitleRow}, "Company Assets"},
	}
	for _, tt := range tests {
		n := d.RowLine(tt.sel)
		if n < 0 || n >= len(lines) {
			t.Fatalf("%+v: line %d out of range", tt.sel, n)
		}
		if !strings.Contains(lines[n], tt.want) {
			t.Fatalf("%+v: expected line %d to contain %q; got %q", tt.sel, n, tt.want, lines[n])
		}
	}
	if got := d.RowLine(Selection{Card: 9}); got != -1 {
		t.Fatalf("expected -1 for unknown card; got %d", got)
	}
}

func TestPlaceCenter(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	got := placeCenter(10, "ab\nabcd")
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	for i, ln := range lines {
		if lipgloss.Width(ln) != 10 {
			t.Fatalf("line %d width=%d, want 10: %q", i, lipgloss.Width(ln), ln)
		}
	}
	if !strings.HasPrefix(lines[0], "    ab") {
		t.Fatalf("expected centered line, got %q", lines[0])
	}

	if w := lipgloss.Width(placeCenter(4, "abcdefgh")); w != 4 {
		t.Fatalf("wide line width=%d, want 4", w)
	}
}
