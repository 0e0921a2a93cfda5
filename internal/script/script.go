// Package script parses and applies the textual node operations accepted by
// `flowedit apply` and `flowedit render`.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"flowedit/internal/store"
)

type OpKind string

const (
	OpAdd          OpKind = "add"
	OpRemove       OpKind = "remove"
	OpRename       OpKind = "rename"
	OpRenameAction OpKind = "rename-action"
	OpToggle       OpKind = "toggle"
)

var (
	ErrUnknownOp   = errors.New("unknown operation")
	ErrMissingArgs = errors.New("missing arguments")
	ErrBadNumber   = errors.New("expected an integer")
)

// Op is one parsed operation. Fields not used by Kind are zero.
type Op struct {
	Kind   OpKind `json:"op" yaml:"op"`
	NodeID int    `json:"nodeId,omitempty" yaml:"nodeId,omitempty"`
	Index  int    `json:"index,omitempty" yaml:"index,omitempty"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
}

type OpError struct {
	Input string
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("invalid operation %q: %v", e.Input, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Parse parses a single operation such as `rename 3 "KYC"`.
func Parse(s string) (Op, error) {
	words := splitWords(s)
	if len(words) == 0 {
		return Op{}, &OpError{Input: s, Err: ErrMissingArgs}
	}
	fail := func(err error) (Op, error) { return Op{}, &OpError{Input: s, Err: err} }

	kind := OpKind(strings.ToLower(words[0]))
	args := words[1:]
	switch kind {
	case OpAdd:
		if len(args) != 0 {
			return fail(fmt.Errorf("add takes no arguments"))
		}
		return Op{Kind: OpAdd}, nil

	case OpRemove, OpToggle:
		if len(args) != 1 {
			return fail(ErrMissingArgs)
		}
		id, err := parseInt(args[0])
		if err != nil {
			return fail(err)
		}
		return Op{Kind: kind, NodeID: id}, nil

	case OpRename:
		head, rest := cutWords(s, 2)
		if len(head) < 2 || rest == "" {
			return fail(ErrMissingArgs)
		}
		id, err := parseInt(head[1])
		if err != nil {
			return fail(err)
		}
		return Op{Kind: OpRename, NodeID: id, Text: labelText(rest)}, nil

	case OpRenameAction:
		head, rest := cutWords(s, 3)
		if len(head) < 3 || rest == "" {
			return fail(ErrMissingArgs)
		}
		id, err := parseInt(head[1])
		if err != nil {
			return fail(err)
		}
		idx, err := parseInt(head[2])
		if err != nil {
			return fail(err)
		}
		return Op{Kind: OpRenameAction, NodeID: id, Index: idx, Text: labelText(rest)}, nil

	default:
		return fail(ErrUnknownOp)
	}
}

// ParseAll parses each argument as one operation and stops at the first error.
func ParseAll(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for _, a := range args {
		op, err := Parse(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// labelText is the text of a rename. Unquoted text is taken as written;
// text starting with a quote is read as shell words.
func labelText(rest string) string {
	rest = strings.TrimRightFunc(rest, unicode.IsSpace)
	if strings.HasPrefix(rest, "'") || strings.HasPrefix(rest, `"`) {
		return strings.Join(splitWords(rest), " ")
	}
	return rest
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return n, nil
}

// Outcome reports whether an applied operation changed the chain.
type Outcome struct {
	Op      Op   `json:"op" yaml:"op"`
	Changed bool `json:"changed" yaml:"changed"`
}

// Apply runs ops against s in order. Operations the store ignores (unknown
// ids, the start node, out of range indexes) are reported as unchanged.
func Apply(s store.Store, ops []Op) (store.Store, []Outcome) {
	outcomes := make([]Outcome, 0, len(ops))
	for _, op := range ops {
		var res store.Result
		switch op.Kind {
		case OpAdd:
			res = store.AppendResult(s)
		case OpRemove:
			res = store.RemoveResult(s, op.NodeID)
		case OpRename:
			res = store.RenameNodeResult(s, op.NodeID, op.Text)
		case OpRenameAction:
			res = store.RenameActionResult(s, op.NodeID, op.Index, op.Text)
		case OpToggle:
			res = store.ToggleSideAnnotationResult(s, op.NodeID)
		default:
			res = store.Result{Store: s}
		}
		s = res.Store
		outcomes = append(outcomes, Outcome{Op: op, Changed: res.Changed})
	}
	return s, outcomes
}
