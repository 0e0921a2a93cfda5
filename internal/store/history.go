package store

const DefaultHistoryDepth = 100

// History is a bounded undo/redo stack of store snapshots.
// Stores are immutable, so snapshots are kept without copying.
type History struct {
	depth int
	undo  []Store
	redo  []Store
}

func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Push records prev as the state to return to on Undo and clears the redo stack.
func (h *History) Push(prev Store) {
	h.undo = append(h.undo, prev)
	if len(h.undo) > h.depth {
		h.undo = h.undo[len(h.undo)-h.depth:]
	}
	h.redo = nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo returns the previous snapshot, recording cur for Redo.
func (h *History) Undo(cur Store) (Store, bool) {
	if len(h.undo) == 0 {
		return cur, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cur)
	return prev, true
}

func (h *History) Redo(cur Store) (Store, bool) {
	if len(h.redo) == 0 {
		return cur, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cur)
	return next, true
}
