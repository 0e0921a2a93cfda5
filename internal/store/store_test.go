package store

import (
	"testing"

	"flowedit/internal/model"

	"github.com/stretchr/testify/require"
)

func TestSeed_FiveNodesStartFirst(t *testing.T) {
	s := Seed()
	require.Equal(t, 5, s.Len())

	for i, n := range s.Nodes() {
		require.Equal(t, i+1, n.ID)
		require.Equal(t, 300, n.Position.X)
		if i == 0 {
			require.Equal(t, model.NodeKindStart, n.Kind)
		} else {
			require.Equal(t, model.NodeKindStep, n.Kind)
		}
	}
	last, ok := s.Last()
	require.True(t, ok)
	require.Equal(t, 850, last.Position.Y)
}

func TestAppend_DefaultNode(t *testing.T) {
	s := Append(Seed())
	require.Equal(t, 6, s.Len())

	n, ok := s.Find(6)
	require.True(t, ok)
	require.Equal(t, "Node 6", n.Title)
	require.Equal(t, model.NodeKindStep, n.Kind)
	require.Equal(t, []string{"Task 1", "Task 2"}, n.Actions)
	require.Equal(t, model.Position{X: 300, Y: 1050}, n.Position)
	require.False(t, n.HasSideAnnotation)
}

func TestAppend_AlwaysGrowsByOneAndSpacesBy200(t *testing.T) {
	s := Seed()
	for i := 0; i < 10; i++ {
		prev, _ := s.Last()
		next := Append(s)
		require.Equal(t, s.Len()+1, next.Len())
		got, _ := next.Last()
		require.Equal(t, prev.Position.Y+NodeSpacingY, got.Position.Y)
		require.Equal(t, prev.Position.X, got.Position.X)
		s = next
	}
}

func TestAppend_DoesNotAliasInput(t *testing.T) {
	s := Seed()
	before := s.Nodes()
	next := Append(s)
	next = RenameAction(next, 1, 0, "changed")

	require.Equal(t, before, s.Nodes())
	n, _ := next.Find(1)
	require.Equal(t, "changed", n.Actions[0])
}

func TestRemove_StartNodeIsRejected(t *testing.T) {
	s := Seed()
	res := RemoveResult(s, StartNodeID)
	require.False(t, res.Changed)
	require.Equal(t, s, res.Store)
	require.Equal(t, Seed(), Remove(s, 1))
}

// The guard is on the literal id, not on the start kind: a step node that
// happens to carry id 1 is protected too, and a start node with another id is not.
func TestRemove_GuardIsIdentityBased(t *testing.T) {
	s := New([]model.WorkflowNode{
		{ID: 7, Title: "Start", Kind: model.NodeKindStart},
		{ID: 1, Title: "Step", Kind: model.NodeKindStep},
	})
	require.Equal(t, s, Remove(s, 1))

	got := Remove(s, 7)
	require.Equal(t, 1, got.Len())
	n, _ := got.At(0)
	require.Equal(t, 1, n.ID)
}

func TestRemove_RemovesExactlyTheMatchingNode(t *testing.T) {
	s := Seed()
	for id := 2; id <= 5; id++ {
		got := Remove(s, id)
		require.Equal(t, s.Len()-1, got.Len(), "id=%d", id)
		_, ok := got.Find(id)
		require.False(t, ok)

		var want []model.WorkflowNode
		for _, n := range s.Nodes() {
			if n.ID != id {
				want = append(want, n)
			}
		}
		require.Equal(t, want, got.Nodes())
	}
}

func TestMutations_UnknownIDIsNoOp(t *testing.T) {
	s := Seed()
	require.Equal(t, s, Remove(s, 42))
	require.Equal(t, s, RenameNode(s, 42, "x"))
	require.Equal(t, s, RenameAction(s, 42, 0, "x"))
	require.Equal(t, s, ToggleSideAnnotation(s, 42))

	require.False(t, RemoveResult(s, 42).Changed)
	require.False(t, RenameNodeResult(s, 42, "x").Changed)
	require.False(t, RenameActionResult(s, 42, 0, "x").Changed)
	require.False(t, ToggleSideAnnotationResult(s, 42).Changed)
}

func TestRenameNode_OnlyTitleChanges(t *testing.T) {
	s := Seed()
	got := RenameNode(s, 3, "KYC")

	before := s.Nodes()
	after := got.Nodes()
	require.Len(t, after, len(before))
	for i := range before {
		want := before[i]
		if want.ID == 3 {
			want.Title = "KYC"
		}
		require.Equal(t, want, after[i])
	}

	n, _ := got.Find(3)
	require.Equal(t, []string{"Archive Verification", "Offer Letter", "Compliance and Acknowledgment"}, n.Actions)
}

func TestRenameNode_EmptyTitleAccepted(t *testing.T) {
	got := RenameNode(Seed(), 2, "")
	n, _ := got.Find(2)
	require.Equal(t, "", n.Title)
}

func TestRenameAction_OnlyThatActionChanges(t *testing.T) {
	s := Seed()
	got := RenameAction(s, 3, 1, "Contract")

	before := s.Nodes()
	after := got.Nodes()
	for i := range before {
		want := before[i].Clone()
		if want.ID == 3 {
			want.Actions[1] = "Contract"
		}
		require.Equal(t, want, after[i])
	}
}

func TestRenameAction_OutOfRangeIsNoOp(t *testing.T) {
	s := Seed()
	for _, idx := range []int{-1, 3, 100} {
		res := RenameActionResult(s, 3, idx, "x")
		require.False(t, res.Changed, "idx=%d", idx)
		require.Equal(t, s, res.Store)
	}
}

func TestToggleSideAnnotation_Involution(t *testing.T) {
	s := Seed()
	for id := 1; id <= 5; id++ {
		once := ToggleSideAnnotation(s, id)
		orig, _ := s.Find(id)
		flipped, _ := once.Find(id)
		require.NotEqual(t, orig.HasSideAnnotation, flipped.HasSideAnnotation)
		require.Equal(t, s, ToggleSideAnnotation(once, id))
	}
}

// Ids are len+1 at creation, so appending after a deletion can reuse an id
// that is still live.
func TestAppend_AfterRemoveCanDuplicateID(t *testing.T) {
	s := Append(Remove(Seed(), 3))
	require.Equal(t, 5, s.Len())

	count := 0
	for _, n := range s.Nodes() {
		if n.ID == 5 {
			count++
		}
	}
	require.Equal(t, 2, count)

	// Both nodes with the shared id are addressed by mutations.
	s = RenameNode(s, 5, "Shared")
	for _, n := range s.Nodes() {
		if n.ID == 5 {
			require.Equal(t, "Shared", n.Title)
		}
	}
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory(0)
	s0 := Seed()
	s1 := Append(s0)
	h.Push(s0)
	s2 := RenameNode(s1, 6, "Six")
	h.Push(s1)

	got, ok := h.Undo(s2)
	require.True(t, ok)
	require.Equal(t, s1, got)
	got, ok = h.Undo(got)
	require.True(t, ok)
	require.Equal(t, s0, got)
	_, ok = h.Undo(got)
	require.False(t, ok)

	got, ok = h.Redo(got)
	require.True(t, ok)
	require.Equal(t, s1, got)

	// A new change clears the redo stack.
	h.Push(got)
	require.False(t, h.CanRedo())
}

func TestHistory_Bounded(t *testing.T) {
	h := NewHistory(2)
	s := Seed()
	for i := 0; i < 5; i++ {
		h.Push(s)
		s = Append(s)
	}
	n := 0
	for h.CanUndo() {
		s, _ = h.Undo(s)
		n++
	}
	require.Equal(t, 2, n)
	require.Equal(t, 8, s.Len())
}
