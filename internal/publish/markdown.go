package publish

import (
	"bytes"
	"fmt"
	"strings"

	"flowedit/internal/model"
	"flowedit/internal/store"
)

type RenderOptions struct {
	// Title is the document heading; empty uses "Workflow".
	Title string
	// IncludeMeta adds id, kind and position lines under each node.
	IncludeMeta bool
}

// RenderChainMarkdown renders the chain as a markdown document, one section
// per node in chain order.
func RenderChainMarkdown(s store.Store, opt RenderOptions) string {
	var buf bytes.Buffer
	writeLn := func(str string) {
		buf.WriteString(str)
		buf.WriteString("\n")
	}

	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = "Workflow"
	}
	writeLn("# " + title)
	writeLn("")

	nodes := s.Nodes()
	writeLn(fmt.Sprintf("Start → %d steps → Ends", len(nodes)))
	writeLn("")

	for i, n := range nodes {
		writeLn(fmt.Sprintf("## %d. %s", i+1, displayTitle(n)))
		writeLn("")
		if opt.IncludeMeta {
			writeLn(fmt.Sprintf("- ID: %d", n.ID))
			writeLn("- Kind: " + string(n.Kind))
			writeLn(fmt.Sprintf("- Position: %d,%d", n.Position.X, n.Position.Y))
			writeLn("")
		}
		for _, a := range n.Actions {
			writeLn("- [ ] " + a)
		}
		if n.HasSideAnnotation {
			writeLn("")
			writeLn(fmt.Sprintf("> **%s** via %s", model.ReminderAnnotation.Title, model.ReminderAnnotation.Channel))
		}
		writeLn("")
	}
	return strings.TrimRight(buf.String(), "\n") + "\n"
}

func displayTitle(n model.WorkflowNode) string {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Sprintf("(untitled node %d)", n.ID)
	}
	return strings.TrimSpace(n.Title)
}
