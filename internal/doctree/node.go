package doctree

import (
	"errors"
	"fmt"
	"strings"
)

// BlockKind identifies the structural role of a Block node.
type BlockKind string

const (
	Paragraph    BlockKind = "paragraph"
	Heading1     BlockKind = "heading-1"
	Heading2     BlockKind = "heading-2"
	Heading3     BlockKind = "heading-3"
	Heading4     BlockKind = "heading-4"
	Heading5     BlockKind = "heading-5"
	Heading6     BlockKind = "heading-6"
	BulletedList BlockKind = "bulleted-list"
	NumberedList BlockKind = "numbered-list"
	ListItem     BlockKind = "list-item"
	Blockquote   BlockKind = "blockquote"
	CodeBlock    BlockKind = "code-block"
	LinkBlock    BlockKind = "link"
	Table        BlockKind = "table"
	TableRow     BlockKind = "table-row"
	TableCell    BlockKind = "table-cell"
	TableHead    BlockKind = "table-head"
	TableBody    BlockKind = "table-body"
	BoxedField   BlockKind = "boxed-field"
)

// Alignment is a per-block text alignment.
type Alignment string

const (
	AlignNone    Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// ErrStructuralViolation is returned when a mutation would break a tree
// invariant. Callers treat it as a no-op signal, not a user-facing error.
var ErrStructuralViolation = errors.New("structural violation")

// Node is either a *Block or a *Text leaf.
type Node interface {
	node()
	// Clone returns a deep copy.
	Clone() Node
}

// Block is a structural node: a paragraph, heading, list, table and so on.
// Children is never empty in a valid tree; a block with no content holds
// a single empty Text leaf so cursor positions stay well-defined.
type Block struct {
	Kind      BlockKind
	Align     Alignment
	URL       string // links only
	FieldName string // boxed-field only
	Indent    int    // list items only, >= 0
	Children  []Node
}

func (*Block) node() {}

func (b *Block) Clone() Node {
	nb := &Block{
		Kind:      b.Kind,
		Align:     b.Align,
		URL:       b.URL,
		FieldName: b.FieldName,
		Indent:    b.Indent,
		Children:  make([]Node, len(b.Children)),
	}
	for i, c := range b.Children {
		nb.Children[i] = c.Clone()
	}
	return nb
}

// Text is a leaf node carrying a string and its style marks.
type Text struct {
	Text  string
	Marks Marks
}

func (*Text) node() {}

func (t *Text) Clone() Node {
	return &Text{Text: t.Text, Marks: t.Marks.Clone()}
}

// NewBlock builds a block, inserting an empty leaf when no children
// are given.
func NewBlock(kind BlockKind, children ...Node) *Block {
	if len(children) == 0 {
		children = []Node{&Text{}}
	}
	return &Block{Kind: kind, Children: children}
}

// NewText builds a leaf with optional marks.
func NewText(s string, marks Marks) *Text {
	return &Text{Text: s, Marks: marks.Clone()}
}

// NewEmptyTree is the canonical empty document: one empty paragraph.
func NewEmptyTree() []Node {
	return []Node{NewBlock(Paragraph)}
}

// IsEmpty reports whether the tree is the canonical empty document or
// contains no visible text at all.
func IsEmpty(tree []Node) bool {
	if len(tree) == 0 {
		return true
	}
	if len(tree) == 1 {
		if b, ok := tree[0].(*Block); ok && b.Kind == Paragraph && len(b.Children) == 1 {
			if t, ok := b.Children[0].(*Text); ok {
				return strings.TrimSpace(t.Text) == ""
			}
		}
	}
	return false
}

// PlainText flattens all leaf text under the given nodes, joining
// top-level blocks with double newlines.
func PlainText(tree []Node) string {
	parts := make([]string, 0, len(tree))
	for _, n := range tree {
		parts = append(parts, nodeText(n))
	}
	return strings.Join(parts, "\n\n")
}

func nodeText(n Node) string {
	switch v := n.(type) {
	case *Text:
		return v.Text
	case *Block:
		var buf strings.Builder
		for _, c := range v.Children {
			buf.WriteString(nodeText(c))
		}
		return buf.String()
	}
	return ""
}

// IsHeading reports whether kind is one of heading-1..heading-6.
func IsHeading(kind BlockKind) bool {
	switch kind {
	case Heading1, Heading2, Heading3, Heading4, Heading5, Heading6:
		return true
	}
	return false
}

// HeadingKind maps a depth 1..6 to the heading kind, clamping out-of-range
// depths to the nearest valid level.
func HeadingKind(depth int) BlockKind {
	if depth < 1 {
		depth = 1
	}
	if depth > 6 {
		depth = 6
	}
	return BlockKind(fmt.Sprintf("heading-%d", depth))
}

// HeadingDepth returns 1..6 for heading kinds and 0 otherwise.
func HeadingDepth(kind BlockKind) int {
	if !IsHeading(kind) {
		return 0
	}
	return int(kind[len(kind)-1] - '0')
}

// IsList reports whether kind is a list container.
func IsList(kind BlockKind) bool {
	return kind == BulletedList || kind == NumberedList
}

// Validate checks the invariants of a document tree:
//   - the root holds only Block nodes,
//   - every block has at least one child,
//   - list-item appears only directly under a list container,
//   - table nesting is strict (table > row > cell) and a cell never
//     holds a table directly,
//   - a link block carries a URL,
//   - indent is never negative.
func Validate(tree []Node) error {
	for i, n := range tree {
		b, ok := n.(*Block)
		if !ok {
			return fmt.Errorf("%w: root node %d is not a block", ErrStructuralViolation, i)
		}
		if err := validateBlock(b, nil); err != nil {
			return err
		}
	}
	return nil
}

func validateBlock(b *Block, parent *Block) error {
	if len(b.Children) == 0 {
		return fmt.Errorf("%w: %s block has no children", ErrStructuralViolation, b.Kind)
	}
	if b.Indent < 0 {
		return fmt.Errorf("%w: negative indent on %s", ErrStructuralViolation, b.Kind)
	}
	if b.Kind == LinkBlock && b.URL == "" {
		return fmt.Errorf("%w: link block without url", ErrStructuralViolation)
	}
	if b.Kind == ListItem {
		if parent == nil || !IsList(parent.Kind) {
			return fmt.Errorf("%w: list-item outside a list container", ErrStructuralViolation)
		}
	}
	switch b.Kind {
	case Table:
		for _, c := range b.Children {
			cb, ok := c.(*Block)
			if !ok || (cb.Kind != TableRow && cb.Kind != TableHead && cb.Kind != TableBody) {
				return fmt.Errorf("%w: table child must be a row or row group", ErrStructuralViolation)
			}
		}
	case TableHead, TableBody:
		for _, c := range b.Children {
			cb, ok := c.(*Block)
			if !ok || cb.Kind != TableRow {
				return fmt.Errorf("%w: %s child must be a table-row", ErrStructuralViolation, b.Kind)
			}
		}
	case TableRow:
		for _, c := range b.Children {
			cb, ok := c.(*Block)
			if !ok || cb.Kind != TableCell {
				return fmt.Errorf("%w: table-row child must be a table-cell", ErrStructuralViolation)
			}
		}
	case TableCell:
		for _, c := range b.Children {
			if cb, ok := c.(*Block); ok && cb.Kind == Table {
				return fmt.Errorf("%w: nested table inside a table-cell", ErrStructuralViolation)
			}
		}
	}
	switch b.Kind {
	case TableRow:
		if parent == nil || (parent.Kind != Table && parent.Kind != TableHead && parent.Kind != TableBody) {
			return fmt.Errorf("%w: table-row outside a table", ErrStructuralViolation)
		}
	case TableCell:
		if parent == nil || parent.Kind != TableRow {
			return fmt.Errorf("%w: table-cell outside a table-row", ErrStructuralViolation)
		}
	}
	for _, c := range b.Children {
		if cb, ok := c.(*Block); ok {
			if err := validateBlock(cb, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// Normalize repairs recoverable invariant breaches in place: blocks with
// no children gain an empty leaf and negative indents clamp to zero.
// Structural problems Validate would reject are not repaired here.
func Normalize(tree []Node) {
	for _, n := range tree {
		if b, ok := n.(*Block); ok {
			normalizeBlock(b)
		}
	}
}

func normalizeBlock(b *Block) {
	if len(b.Children) == 0 {
		b.Children = []Node{&Text{}}
	}
	if b.Indent < 0 {
		b.Indent = 0
	}
	for _, c := range b.Children {
		if cb, ok := c.(*Block); ok {
			normalizeBlock(cb)
		}
	}
}

// CloneTree deep-copies a whole tree.
func CloneTree(tree []Node) []Node {
	out := make([]Node, len(tree))
	for i, n := range tree {
		out[i] = n.Clone()
	}
	return out
}

// Equal reports deep structural equality of two trees.
func Equal(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !nodeEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func nodeEqual(a, b Node) bool {
	switch av := a.(type) {
	case *Text:
		bv, ok := b.(*Text)
		return ok && av.Text == bv.Text && av.Marks.Equal(bv.Marks)
	case *Block:
		bv, ok := b.(*Block)
		if !ok || av.Kind != bv.Kind || av.Align != bv.Align || av.URL != bv.URL ||
			av.FieldName != bv.FieldName || av.Indent != bv.Indent || len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !nodeEqual(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	}
	return false
}
