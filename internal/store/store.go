package store

import (
	"fmt"

	"flowedit/internal/model"
)

const (
	// StartNodeID is the id Remove refuses to delete. The guard is an identity
	// check on this literal, not a check on NodeKindStart.
	StartNodeID = 1

	// NodeSpacingY is the vertical distance between consecutive appended nodes.
	NodeSpacingY = 200
)

var defaultActions = []string{"Task 1", "Task 2"}

// Store is an ordered, immutable chain of workflow nodes.
// Mutations return a new Store; the receiver is never modified.
type Store struct {
	nodes []model.WorkflowNode
}

// Result is returned by the mutation variants that report whether anything changed.
type Result struct {
	Store   Store
	Changed bool
}

func unchanged(s Store) Result { return Result{Store: s} }

// New builds a store from nodes. The nodes are copied.
func New(nodes []model.WorkflowNode) Store {
	return Store{nodes: cloneNodes(nodes)}
}

// Nodes returns a copy of the chain in order.
func (s Store) Nodes() []model.WorkflowNode { return cloneNodes(s.nodes) }

func (s Store) Len() int { return len(s.nodes) }

func (s Store) Find(id int) (model.WorkflowNode, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return model.WorkflowNode{}, false
	}
	return s.nodes[i].Clone(), true
}

// IndexOf returns the position of the first node with id, or -1.
func (s Store) IndexOf(id int) int {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s Store) At(i int) (model.WorkflowNode, bool) {
	if i < 0 || i >= len(s.nodes) {
		return model.WorkflowNode{}, false
	}
	return s.nodes[i].Clone(), true
}

func (s Store) Last() (model.WorkflowNode, bool) {
	return s.At(len(s.nodes) - 1)
}

// Append adds a default step node to the end of the chain.
func Append(s Store) Store { return AppendResult(s).Store }

func AppendResult(s Store) Result {
	id := len(s.nodes) + 1
	n := model.WorkflowNode{
		ID:      id,
		Title:   fmt.Sprintf("Node %d", id),
		Kind:    model.NodeKindStep,
		Actions: append([]string(nil), defaultActions...),
	}
	if last, ok := s.Last(); ok {
		n.Position = model.Position{X: last.Position.X, Y: last.Position.Y + NodeSpacingY}
	}
	next := make([]model.WorkflowNode, 0, len(s.nodes)+1)
	next = append(next, cloneNodes(s.nodes)...)
	next = append(next, n)
	return Result{Store: Store{nodes: next}, Changed: true}
}

// Remove deletes every node with id. Removing StartNodeID or an unknown id
// returns s unchanged.
func Remove(s Store, id int) Store { return RemoveResult(s, id).Store }

func RemoveResult(s Store, id int) Result {
	if id == StartNodeID || s.IndexOf(id) < 0 {
		return unchanged(s)
	}
	next := make([]model.WorkflowNode, 0, len(s.nodes))
	for _, n := range s.nodes {
		if n.ID == id {
			continue
		}
		next = append(next, n.Clone())
	}
	return Result{Store: Store{nodes: next}, Changed: true}
}

// RenameNode replaces the title of the node with id. Empty titles are accepted.
func RenameNode(s Store, id int, title string) Store { return RenameNodeResult(s, id, title).Store }

func RenameNodeResult(s Store, id int, title string) Result {
	return update(s, id, func(n *model.WorkflowNode) bool {
		if n.Title == title {
			return false
		}
		n.Title = title
		return true
	})
}

// RenameAction replaces one action label. Unknown node ids and out of range
// indexes are ignored.
func RenameAction(s Store, nodeID, index int, label string) Store {
	return RenameActionResult(s, nodeID, index, label).Store
}

func RenameActionResult(s Store, nodeID, index int, label string) Result {
	return update(s, nodeID, func(n *model.WorkflowNode) bool {
		if index < 0 || index >= len(n.Actions) {
			return false
		}
		if n.Actions[index] == label {
			return false
		}
		n.Actions[index] = label
		return true
	})
}

func ToggleSideAnnotation(s Store, id int) Store { return ToggleSideAnnotationResult(s, id).Store }

func ToggleSideAnnotationResult(s Store, id int) Result {
	return update(s, id, func(n *model.WorkflowNode) bool {
		n.HasSideAnnotation = !n.HasSideAnnotation
		return true
	})
}

// update applies fn to a copy of every node matching id.
// If fn reports no change for all of them, s is returned as is.
func update(s Store, id int, fn func(n *model.WorkflowNode) bool) Result {
	if s.IndexOf(id) < 0 {
		return unchanged(s)
	}
	next := cloneNodes(s.nodes)
	changed := false
	for i := range next {
		if next[i].ID != id {
			continue
		}
		if fn(&next[i]) {
			changed = true
		}
	}
	if !changed {
		return unchanged(s)
	}
	return Result{Store: Store{nodes: next}, Changed: true}
}

func cloneNodes(in []model.WorkflowNode) []model.WorkflowNode {
	if in == nil {
		return nil
	}
	out := make([]model.WorkflowNode, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
