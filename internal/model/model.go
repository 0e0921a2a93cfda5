package model

type NodeKind string

const (
	NodeKindStart NodeKind = "start"
	NodeKindStep  NodeKind = "step"
)

// Position is a display offset. It carries no meaning beyond layout.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type WorkflowNode struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Kind     NodeKind `json:"kind" yaml:"kind"`
	Actions  []string `json:"actions" yaml:"actions"`
	Position Position `json:"position" yaml:"position"`

	HasSideAnnotation bool `json:"hasSideAnnotation" yaml:"hasSideAnnotation"`
}

// Clone returns a copy that shares no slices with n.
func (n WorkflowNode) Clone() WorkflowNode {
	out := n
	if n.Actions != nil {
		out.Actions = append([]string(nil), n.Actions...)
	}
	return out
}

func (n WorkflowNode) IsStart() bool { return n.Kind == NodeKindStart }

// SideAnnotation is the fixed side panel attached to a node when
// HasSideAnnotation is set.
type SideAnnotation struct {
	Title   string `json:"title" yaml:"title"`
	Channel string `json:"channel" yaml:"channel"`
}

var ReminderAnnotation = SideAnnotation{
	Title:   "Reminder Message",
	Channel: "WhatsApp",
}

// TaskRef addresses one action label within a node.
type TaskRef struct {
	NodeID int `json:"nodeId" yaml:"nodeId"`
	Index  int `json:"index" yaml:"index"`
}
