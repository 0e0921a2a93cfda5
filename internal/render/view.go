// Package render maps a node store and an editing cursor to a visual tree and
// draws that tree for terminals.
package render

import (
	"flowedit/internal/editor"
	"flowedit/internal/model"
	"flowedit/internal/store"
)

const (
	Heading      = "Workflow Editor"
	StartLabel   = "Start"
	EndLabel     = "Ends"
	AddNodeLabel = "Add Another"
)

// Accent is the card color family. It is cosmetic only.
type Accent int

const (
	AccentNormal Accent = iota
	AccentHighlight
)

type ActionRow struct {
	Index   int
	Label   string
	Editing bool
}

type SidePanel struct {
	Title   string
	Channel string
}

type Card struct {
	NodeID   int
	Title    string
	Position model.Position
	Accent   Accent

	EditingTitle bool

	// Deletable is false for the node the store refuses to remove.
	Deletable bool
	SideOn    bool

	Actions []ActionRow
	Side    *SidePanel

	// ConnectorBelow is set on every card except the last.
	ConnectorBelow bool
}

type View struct {
	Heading   string
	StartPill string
	Cards     []Card
	AddLabel  string
	EndPill   string
}

// Build computes the visual tree for s and c. It has no side effects.
func Build(s store.Store, c editor.Cursor) View {
	nodes := s.Nodes()
	v := View{
		Heading:   Heading,
		StartPill: StartLabel,
		AddLabel:  AddNodeLabel,
		EndPill:   EndLabel,
		Cards:     make([]Card, 0, len(nodes)),
	}

	lastID := 0
	if len(nodes) > 0 {
		lastID = nodes[len(nodes)-1].ID
	}

	for i, n := range nodes {
		card := Card{
			NodeID:         n.ID,
			Title:          n.Title,
			Position:       n.Position,
			Accent:         AccentNormal,
			EditingTitle:   c.EditingTitle(n.ID),
			Deletable:      n.ID != store.StartNodeID,
			SideOn:         n.HasSideAnnotation,
			ConnectorBelow: i < len(nodes)-1,
		}
		if n.IsStart() || n.ID == lastID {
			card.Accent = AccentHighlight
		}
		for ai, a := range n.Actions {
			card.Actions = append(card.Actions, ActionRow{
				Index:   ai,
				Label:   a,
				Editing: c.EditingTaskAt(n.ID, ai),
			})
		}
		if n.HasSideAnnotation {
			card.Side = &SidePanel{
				Title:   model.ReminderAnnotation.Title,
				Channel: model.ReminderAnnotation.Channel,
			}
		}
		v.Cards = append(v.Cards, card)
	}
	return v
}
