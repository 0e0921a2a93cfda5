package format

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"flowedit/internal/model"
	"flowedit/internal/store"

	"gopkg.in/yaml.v3"
)

func TestWriteEDN_Compact(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"id": 6, "title": "Node 6", "actions": []string{"Task 1", "Task 2"}, "on": false, "x": nil}
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := `{:actions ["Task 1" "Task 2"] :id 6 :on false :title "Node 6" :x nil}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []int{1}, "b": map[string]any{}}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "{\n  :a [\n    1\n  ]\n  :b {}\n}\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestWrite_Formats(t *testing.T) {
	nodes := store.Seed().Nodes()[:1]

	var js bytes.Buffer
	if err := Write(&js, nodes, "json", false); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(js.String(), `"title":"Welcome to Tesla"`) {
		t.Fatalf("unexpected json: %s", js.String())
	}

	var edn bytes.Buffer
	if err := Write(&edn, nodes, "edn", false); err != nil {
		t.Fatalf("edn: %v", err)
	}
	if !strings.Contains(edn.String(), `:kind "start"`) || !strings.Contains(edn.String(), ":id 1") {
		t.Fatalf("unexpected edn: %s", edn.String())
	}

	var yml bytes.Buffer
	if err := Write(&yml, nodes, "yaml", false); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var decoded []model.WorkflowNode
	if err := yaml.Unmarshal(yml.Bytes(), &decoded); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, yml.String())
	}
	if !reflect.DeepEqual(decoded, nodes) {
		t.Fatalf("yaml round trip mismatch:\n got %#v\nwant %#v\n%s", decoded, nodes, yml.String())
	}
	if !strings.Contains(yml.String(), "title: Welcome to Tesla") {
		t.Fatalf("unexpected yaml: %s", yml.String())
	}

	if err := Write(&bytes.Buffer{}, nodes, "xml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
