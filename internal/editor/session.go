package editor

import (
	"log/slog"

	"flowedit/internal/store"
)

// Session owns the node store, the editing cursor and the undo history of one
// editor. All user-triggered changes go through it.
type Session struct {
	store   store.Store
	cursor  Cursor
	history *store.History
	logger  *slog.Logger
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithHistoryDepth(depth int) Option {
	return func(s *Session) { s.history = store.NewHistory(depth) }
}

func NewSession(st store.Store, opts ...Option) *Session {
	s := &Session{
		store:   st,
		history: store.NewHistory(store.DefaultHistoryDepth),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Store() store.Store { return s.store }
func (s *Session) Cursor() Cursor     { return s.cursor }
func (s *Session) CanUndo() bool      { return s.history.CanUndo() }
func (s *Session) CanRedo() bool      { return s.history.CanRedo() }

// BeginEditTitle starts editing the title of nodeID. Unknown ids are ignored.
func (s *Session) BeginEditTitle(nodeID int) bool {
	if _, ok := s.store.Find(nodeID); !ok {
		return false
	}
	s.cursor = BeginEditTitle(s.cursor, nodeID)
	s.logger.Debug("begin edit title", "node_id", nodeID)
	return true
}

// BeginEditTask starts editing one action label. Unknown nodes and out of
// range indexes are ignored.
func (s *Session) BeginEditTask(nodeID, index int) bool {
	n, ok := s.store.Find(nodeID)
	if !ok || index < 0 || index >= len(n.Actions) {
		return false
	}
	s.cursor = BeginEditTask(s.cursor, nodeID, index)
	s.logger.Debug("begin edit task", "node_id", nodeID, "index", index)
	return true
}

// CommitTitle renames nodeID if its title is currently being edited and ends
// the edit. A commit for an edit that is not open does nothing, so a blur
// following a confirm key never applies the value twice.
func (s *Session) CommitTitle(nodeID int, value string) bool {
	if !s.cursor.EditingTitle(nodeID) {
		return false
	}
	s.cursor = ClearTitle(s.cursor)
	changed := s.apply(store.RenameNodeResult(s.store, nodeID, value))
	s.logger.Debug("commit title", "node_id", nodeID, "changed", changed)
	return changed
}

func (s *Session) CommitTask(nodeID, index int, value string) bool {
	if !s.cursor.EditingTaskAt(nodeID, index) {
		return false
	}
	s.cursor = ClearTask(s.cursor)
	changed := s.apply(store.RenameActionResult(s.store, nodeID, index, value))
	s.logger.Debug("commit task", "node_id", nodeID, "index", index, "changed", changed)
	return changed
}

func (s *Session) Append() bool {
	changed := s.apply(store.AppendResult(s.store))
	if last, ok := s.store.Last(); ok {
		s.logger.Debug("append node", "node_id", last.ID)
	}
	return changed
}

func (s *Session) Remove(nodeID int) bool {
	changed := s.apply(store.RemoveResult(s.store, nodeID))
	s.logger.Debug("remove node", "node_id", nodeID, "changed", changed)
	return changed
}

func (s *Session) ToggleSideAnnotation(nodeID int) bool {
	changed := s.apply(store.ToggleSideAnnotationResult(s.store, nodeID))
	s.logger.Debug("toggle side annotation", "node_id", nodeID, "changed", changed)
	return changed
}

func (s *Session) Undo() bool {
	prev, ok := s.history.Undo(s.store)
	if !ok {
		return false
	}
	s.store = prev
	s.cursor = Prune(s.cursor, s.store)
	s.logger.Debug("undo", "nodes", s.store.Len())
	return true
}

func (s *Session) Redo() bool {
	next, ok := s.history.Redo(s.store)
	if !ok {
		return false
	}
	s.store = next
	s.cursor = Prune(s.cursor, s.store)
	s.logger.Debug("redo", "nodes", s.store.Len())
	return true
}

func (s *Session) apply(res store.Result) bool {
	if !res.Changed {
		return false
	}
	s.history.Push(s.store)
	s.store = res.Store
	s.cursor = Prune(s.cursor, s.store)
	return true
}
