package editor

import (
	"github.com/zandoc/docengine/internal/doctree"
)

// Editor owns the tree and selection of one editing session and keeps
// the undo/redo history. It is not safe for concurrent use; a session
// applies commands from a single goroutine, in order.
type Editor struct {
	state State
	undos []State
	redos []State

	// maxHistory caps the undo stack; oldest entries fall off first.
	maxHistory int
}

// DefaultMaxHistory is the undo-stack cap used by New.
const DefaultMaxHistory = 1000

// New starts an editor over the given tree with the default history
// cap. A nil or empty tree becomes the canonical empty document.
func New(tree []doctree.Node) *Editor {
	return NewWithHistory(tree, DefaultMaxHistory)
}

// NewWithHistory starts an editor with an explicit undo-stack cap.
// Non-positive caps fall back to DefaultMaxHistory.
func NewWithHistory(tree []doctree.Node, maxHistory int) *Editor {
	if len(tree) == 0 {
		tree = doctree.NewEmptyTree()
	}
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	doctree.Normalize(tree)
	p := doctree.PointAtStart(tree)
	return &Editor{
		state:      State{Tree: tree, Sel: doctree.Range{Anchor: p, Focus: p}},
		maxHistory: maxHistory,
	}
}

// Tree returns the current tree. Callers must not mutate it.
func (e *Editor) Tree() []doctree.Node { return e.state.Tree }

// Selection returns the active selection.
func (e *Editor) Selection() doctree.Range { return e.state.Sel }

// Select moves the selection without touching the tree or history.
func (e *Editor) Select(sel doctree.Range) {
	e.state.Sel = clampSelection(e.state.Tree, sel)
}

// Apply runs a command against the current state. When the command
// changed the tree the previous state is pushed onto the undo stack and
// the redo stack is cleared.
func (e *Editor) Apply(cmd func(State) State) {
	next := cmd(e.state)
	if doctree.Equal(next.Tree, e.state.Tree) {
		e.state.Sel = next.Sel
		return
	}
	e.undos = append(e.undos, State{Tree: e.state.Tree, Sel: e.state.Sel})
	if e.maxHistory > 0 && len(e.undos) > e.maxHistory {
		e.undos = e.undos[1:]
	}
	e.redos = nil
	e.state = next
}

// Undo restores the previous tree state, if any.
func (e *Editor) Undo() bool {
	if len(e.undos) == 0 {
		return false
	}
	e.redos = append(e.redos, e.state)
	e.state = e.undos[len(e.undos)-1]
	e.undos = e.undos[:len(e.undos)-1]
	return true
}

// Redo reapplies the last undone state, if any.
func (e *Editor) Redo() bool {
	if len(e.redos) == 0 {
		return false
	}
	e.undos = append(e.undos, e.state)
	e.state = e.redos[len(e.redos)-1]
	e.redos = e.redos[:len(e.redos)-1]
	return true
}

// Convenience command methods used by the API layer and key handlers.

func (e *Editor) ToggleMark(name string, value any) {
	e.Apply(func(st State) State { return ToggleMark(st, name, value) })
}

func (e *Editor) ToggleBlock(kind doctree.BlockKind) {
	e.Apply(func(st State) State { return ToggleBlock(st, kind) })
}

func (e *Editor) ToggleAlign(align doctree.Alignment) {
	e.Apply(func(st State) State { return ToggleAlign(st, align) })
}

func (e *Editor) ToggleList(kind doctree.BlockKind) {
	e.Apply(func(st State) State { return ToggleList(st, kind) })
}

func (e *Editor) Indent()  { e.Apply(Indent) }
func (e *Editor) Outdent() { e.Apply(Outdent) }

func (e *Editor) WrapLink(url string) {
	e.Apply(func(st State) State { return WrapLink(st, url) })
}

func (e *Editor) UnwrapLink()      { e.Apply(UnwrapLink) }
func (e *Editor) ClearFormatting() { e.Apply(ClearFormatting) }
func (e *Editor) SplitListItem()   { e.Apply(SplitListItem) }
func (e *Editor) ExitList()        { e.Apply(ExitList) }
