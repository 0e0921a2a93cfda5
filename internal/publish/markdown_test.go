package publish

import (
	"strings"
	"testing"

	"flowedit/internal/store"
)

func TestRenderChainMarkdown_Seed(t *testing.T) {
	md := RenderChainMarkdown(store.Seed(), RenderOptions{})

	if !strings.HasPrefix(md, "# Workflow\n") {
		t.Fatalf("expected default heading; got:\n%s", md)
	}
	for _, want := range []string{
		"Start → 5 steps → Ends",
		"## 1. Welcome to Tesla",
		"- [ ] Brochure",
		"## 2. Personal Details",
		"> **Reminder Message** via WhatsApp",
		"## 5. Company Assets",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected markdown to contain %q:\n%s", want, md)
		}
	}
	if strings.Count(md, "Reminder Message") != 1 {
		t.Fatalf("expected one reminder")
	}
	if strings.Contains(md, "- ID:") {
		t.Fatalf("meta must be opt-in")
	}
}

func TestRenderChainMarkdown_MetaAndUntitled(t *testing.T) {
	s := store.RenameNode(store.Append(store.Seed()), 6, "")
	md := RenderChainMarkdown(s, RenderOptions{Title: "Onboarding", IncludeMeta: true})

	for _, want := range []string{
		"# Onboarding",
		"## 6. (untitled node 6)",
		"- ID: 6",
		"- Kind: step",
		"- Position: 300,1050",
		"- [ ] Task 2",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected markdown to contain %q:\n%s", want, md)
		}
	}
	if !strings.HasSuffix(md, "- [ ] Task 2\n") {
		t.Fatalf("expected single trailing newline; got %q", md[len(md)-20:])
	}
}
