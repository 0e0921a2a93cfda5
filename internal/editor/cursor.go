// Package editor holds the transient editing state of a workflow chain and the
// session that ties it to the node store.
package editor

import (
	"flowedit/internal/model"
	"flowedit/internal/store"
)

// Cursor tracks at most one title and at most one action label being edited.
// The two are independent: starting one never clears the other.
type Cursor struct {
	EditingNodeID *int           `json:"editingNodeId,omitempty"`
	EditingTask   *model.TaskRef `json:"editingTask,omitempty"`
}

func BeginEditTitle(c Cursor, nodeID int) Cursor {
	id := nodeID
	c.EditingNodeID = &id
	return c
}

func BeginEditTask(c Cursor, nodeID, index int) Cursor {
	c.EditingTask = &model.TaskRef{NodeID: nodeID, Index: index}
	return c
}

func ClearTitle(c Cursor) Cursor {
	c.EditingNodeID = nil
	return c
}

func ClearTask(c Cursor) Cursor {
	c.EditingTask = nil
	return c
}

func (c Cursor) EditingTitle(nodeID int) bool {
	return c.EditingNodeID != nil && *c.EditingNodeID == nodeID
}

func (c Cursor) EditingTaskAt(nodeID, index int) bool {
	return c.EditingTask != nil && c.EditingTask.NodeID == nodeID && c.EditingTask.Index == index
}

func (c Cursor) Idle() bool { return c.EditingNodeID == nil && c.EditingTask == nil }

// Prune drops references to nodes (or action indexes) that no longer exist in s.
func Prune(c Cursor, s store.Store) Cursor {
	if c.EditingNodeID != nil {
		if _, ok := s.Find(*c.EditingNodeID); !ok {
			c.EditingNodeID = nil
		}
	}
	if c.EditingTask != nil {
		n, ok := s.Find(c.EditingTask.NodeID)
		if !ok || c.EditingTask.Index < 0 || c.EditingTask.Index >= len(n.Actions) {
			c.EditingTask = nil
		}
	}
	return c
}
