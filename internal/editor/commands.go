// Package editor implements the interactive command layer over a
// document tree: mark and block toggles, list handling, links and
// formatting cleanup. Every command is a pure function of
// (tree, selection, args); commands that cannot apply return the input
// unchanged instead of failing, since they are driven by UI events
// with no recovery path.
package editor

import (
	"github.com/zandoc/docengine/internal/doctree"
)

// State is the tree plus the active selection.
type State struct {
	Tree []doctree.Node
	Sel  doctree.Range
}

// textBlockKinds are the kinds a structural block toggle targets.
func isTextBlock(kind doctree.BlockKind) bool {
	switch kind {
	case doctree.Paragraph, doctree.Blockquote, doctree.CodeBlock,
		doctree.ListItem, doctree.TableCell:
		return true
	}
	return doctree.IsHeading(kind)
}

func isInline(kind doctree.BlockKind) bool {
	return kind == doctree.LinkBlock || kind == doctree.BoxedField
}

// IsMarkActive reports whether the mark is present on every leaf the
// selection covers. The conjunction (rather than any-overlap) keeps
// toolbar state stable on mixed selections.
func IsMarkActive(tree []doctree.Node, sel doctree.Range, name string) bool {
	spans := doctree.LeafCoverage(tree, doctree.Unhang(tree, sel))
	if len(spans) == 0 {
		return false
	}
	collapsed := sel.Collapsed()
	seen := false
	for _, span := range spans {
		if !collapsed && span.From == span.To && len([]rune(span.Leaf.Text)) > 0 {
			continue // zero-width touch at a boundary
		}
		seen = true
		if !span.Leaf.Marks.Has(name) {
			return false
		}
		if b, ok := span.Leaf.Marks[name].(bool); ok && !b {
			return false
		}
	}
	return seen
}

// IsBlockActive reports whether any block in the (unhung) selection
// matches the value on the given dimension: "type" compares the block
// kind, "align" the alignment.
func IsBlockActive(tree []doctree.Node, sel doctree.Range, value string, dimension string) bool {
	for _, ref := range doctree.BlocksInRange(tree, doctree.Unhang(tree, sel)) {
		switch dimension {
		case "align":
			if string(ref.Block.Align) == value {
				return true
			}
		default:
			if string(ref.Block.Kind) == value {
				return true
			}
		}
	}
	return false
}

// ActiveMarks returns the mark set at a collapsed selection (the marks
// of the leaf under the cursor), used for toolbar reflection.
func ActiveMarks(tree []doctree.Node, sel doctree.Range) doctree.Marks {
	spans := doctree.LeafCoverage(tree, sel)
	if len(spans) == 0 {
		return nil
	}
	return spans[0].Leaf.Marks.Clone()
}

// ToggleMark adds the mark across the whole selection, or removes it
// everywhere when it is already active on the entire selection. value
// defaults to true for boolean marks; valued marks (color, font size)
// pass their string value.
func ToggleMark(st State, name string, value any) State {
	if len(st.Sel.Anchor.Path) == 0 {
		return st
	}
	if value == nil {
		value = true
	}
	sel := doctree.Unhang(st.Tree, st.Sel)
	var (
		out []doctree.Node
		err error
	)
	if IsMarkActive(st.Tree, st.Sel, name) {
		out, err = doctree.SetMark(st.Tree, sel, name, nil)
	} else {
		out, err = doctree.SetMark(st.Tree, sel, name, value)
	}
	if err != nil {
		return st
	}
	return State{Tree: out, Sel: st.Sel}
}

// ClearFormatting removes every mark present on the selection. The
// removal iterates the keys actually present, so it needs no knowledge
// of the mark vocabulary.
func ClearFormatting(st State) State {
	if len(st.Sel.Anchor.Path) == 0 {
		return st
	}
	out, err := doctree.ClearMarks(st.Tree, doctree.Unhang(st.Tree, st.Sel))
	if err != nil {
		return st
	}
	return State{Tree: out, Sel: st.Sel}
}

// ToggleAlign sets or clears the alignment of the text blocks under the
// selection. Alignment is a property mutation; the block kind is kept.
func ToggleAlign(st State, align doctree.Alignment) State {
	if len(st.Sel.Anchor.Path) == 0 {
		return st
	}
	active := IsBlockActive(st.Tree, st.Sel, string(align), "align")
	out, err := doctree.SetBlocks(st.Tree, doctree.Unhang(st.Tree, st.Sel),
		func(b *doctree.Block, p doctree.Path) bool { return isTextBlock(b.Kind) },
		func(b *doctree.Block) {
			if active {
				b.Align = doctree.AlignNone
			} else {
				b.Align = align
			}
		},
	)
	if err != nil {
		return st
	}
	return State{Tree: out, Sel: st.Sel}
}

// ToggleBlock swaps the kind of the text blocks under the selection
// with the given kind, back to paragraph when already active. List
// containers intersecting the selection are unwrapped first, matching
// the usual rich-text behavior of structural toggles.
func ToggleBlock(st State, kind doctree.BlockKind) State {
	if len(st.Sel.Anchor.Path) == 0 || doctree.IsList(kind) {
		return st
	}
	sel := doctree.Unhang(st.Tree, st.Sel)
	active := IsBlockActive(st.Tree, st.Sel, string(kind), "type")

	tree := st.Tree
	if paths := listContainerPaths(tree, sel); len(paths) > 0 {
		// The unwrap retypes the former items to paragraphs, ready for
		// the kind swap.
		out, err := doctree.UnwrapBlocks(tree, matchPaths(paths))
		if err != nil {
			return st
		}
		tree = out
		sel = clampSelection(tree, sel)
	}

	target := kind
	if active {
		target = doctree.Paragraph
	}
	out, err := doctree.SetBlocks(tree, sel,
		func(b *doctree.Block, p doctree.Path) bool { return isTextBlock(b.Kind) && b.Kind != doctree.TableCell },
		func(b *doctree.Block) { b.Kind = target },
	)
	if err != nil {
		return st
	}
	return State{Tree: out, Sel: st.Sel}
}

// CurrentListKind returns the kind of the innermost list container the
// selection sits in, or "" when outside any list.
func CurrentListKind(tree []doctree.Node, sel doctree.Range) doctree.BlockKind {
	var kind doctree.BlockKind
	for _, ref := range doctree.BlocksInRange(tree, sel) {
		if doctree.IsList(ref.Block.Kind) {
			kind = ref.Block.Kind
		}
	}
	return kind
}

// ToggleList is the three-way list toggle: a selection already in the
// same list kind unwraps to paragraphs; a different list kind is
// relabeled in place, keeping item nesting; outside a list the covered
// blocks become items of a new list.
func ToggleList(st State, kind doctree.BlockKind) State {
	if !doctree.IsList(kind) || len(st.Sel.Anchor.Path) == 0 {
		return st
	}
	sel := doctree.Unhang(st.Tree, st.Sel)
	current := CurrentListKind(st.Tree, sel)

	switch {
	case current == kind:
		paths := listContainerPaths(st.Tree, sel)
		out, err := doctree.UnwrapBlocks(st.Tree, matchPaths(paths))
		if err != nil {
			return st
		}
		return State{Tree: out, Sel: st.Sel}

	case current != "":
		out, err := doctree.SetBlocks(st.Tree, sel,
			func(b *doctree.Block, p doctree.Path) bool { return doctree.IsList(b.Kind) },
			func(b *doctree.Block) { b.Kind = kind },
		)
		if err != nil {
			return st
		}
		return State{Tree: out, Sel: st.Sel}

	default:
		idxs := doctree.TopBlockIndexes(st.Tree, sel)
		if len(idxs) == 0 {
			return st
		}
		nt := doctree.CloneTree(st.Tree)
		for _, i := range idxs {
			if b, ok := nt[i].(*doctree.Block); ok && isTextBlock(b.Kind) {
				b.Kind = doctree.ListItem
			}
		}
		out, err := doctree.WrapTopLevel(nt, idxs[0], idxs[len(idxs)-1], &doctree.Block{Kind: kind})
		if err != nil {
			return st
		}
		return State{Tree: out, Sel: st.Sel}
	}
}

// Indent increases the indent of the list items under the selection.
// Outside a list it is a no-op.
func Indent(st State) State {
	return shiftIndent(st, 1)
}

// Outdent decreases the indent of the list items under the selection,
// floor-clamped at zero. Outside a list it is a no-op.
func Outdent(st State) State {
	return shiftIndent(st, -1)
}

func shiftIndent(st State, delta int) State {
	if len(st.Sel.Anchor.Path) == 0 {
		return st
	}
	sel := doctree.Unhang(st.Tree, st.Sel)
	if CurrentListKind(st.Tree, sel) == "" {
		return st
	}
	out, err := doctree.SetBlocks(st.Tree, sel,
		func(b *doctree.Block, p doctree.Path) bool { return b.Kind == doctree.ListItem },
		func(b *doctree.Block) {
			b.Indent += delta
			if b.Indent < 0 {
				b.Indent = 0
			}
		},
	)
	if err != nil {
		return st
	}
	return State{Tree: out, Sel: st.Sel}
}

// IsLinkActive reports whether the selection touches a link block.
func IsLinkActive(tree []doctree.Node, sel doctree.Range) bool {
	return IsBlockActive(tree, sel, string(doctree.LinkBlock), "type")
}

// WrapLink wraps the selection in a link. A collapsed selection inserts
// a link whose text is the URL itself; a range moves the covered
// content inside the link, splitting partially covered leaves. An
// existing link is unwrapped first.
func WrapLink(st State, url string) State {
	if url == "" || len(st.Sel.Anchor.Path) == 0 {
		return st
	}
	if IsLinkActive(st.Tree, st.Sel) {
		st = UnwrapLink(st)
	}
	link := &doctree.Block{Kind: doctree.LinkBlock, URL: url}

	if st.Sel.Collapsed() {
		link.Children = []doctree.Node{&doctree.Text{Text: url}}
		out, err := doctree.InsertInline(st.Tree, st.Sel.Anchor, []doctree.Node{link})
		if err != nil {
			return st
		}
		return State{Tree: out, Sel: st.Sel}
	}

	out, err := doctree.WrapInline(st.Tree, doctree.Unhang(st.Tree, st.Sel), link)
	if err != nil {
		return st
	}
	_, end := st.Sel.Edges()
	return State{Tree: out, Sel: doctree.Range{Anchor: end, Focus: end}}
}

// UnwrapLink removes the link blocks under the selection, hoisting
// their children.
func UnwrapLink(st State) State {
	if len(st.Sel.Anchor.Path) == 0 {
		return st
	}
	var paths []doctree.Path
	for _, ref := range doctree.BlocksInRange(st.Tree, doctree.Unhang(st.Tree, st.Sel)) {
		if ref.Block.Kind == doctree.LinkBlock {
			paths = append(paths, ref.Path)
		}
	}
	if len(paths) == 0 {
		return st
	}
	out, err := doctree.UnwrapBlocks(st.Tree, matchPaths(paths))
	if err != nil {
		return st
	}
	return State{Tree: out, Sel: st.Sel}
}

// SplitListItem inserts a fresh empty item after the one holding the
// cursor, the Enter behavior inside a non-empty list item.
func SplitListItem(st State) State {
	itemPath := enclosingListItem(st.Tree, st.Sel)
	if itemPath == nil {
		return st
	}
	item := doctree.NewBlock(doctree.ListItem)
	out, err := doctree.InsertBlockAfter(st.Tree, itemPath, item)
	if err != nil {
		return st
	}
	next := itemPath.Clone()
	next[len(next)-1]++
	point := doctree.Point{Path: append(next, 0), Offset: 0}
	return State{Tree: out, Sel: doctree.Range{Anchor: point, Focus: point}}
}

// ExitList handles Enter on an empty list item: the item leaves the
// list as a paragraph, splitting the list around it so non-empty
// siblings stay listed.
func ExitList(st State) State {
	itemPath := enclosingListItem(st.Tree, st.Sel)
	if itemPath == nil {
		return st
	}
	if item, ok := doctree.NodeAt(st.Tree, itemPath).(*doctree.Block); !ok || doctree.PlainText([]doctree.Node{item}) != "" {
		return st
	}
	out, err := doctree.LiftListItem(st.Tree, itemPath)
	if err != nil {
		return st
	}
	// Collapse the cursor into the lifted paragraph.
	base := itemPath[:len(itemPath)-1].Clone()
	paraIdx := base[len(base)-1]
	if itemPath[len(itemPath)-1] > 0 {
		paraIdx++
	}
	base[len(base)-1] = paraIdx
	point := doctree.Point{Path: append(base, 0), Offset: 0}
	return State{Tree: out, Sel: doctree.Range{Anchor: point, Focus: point}}
}

func enclosingListItem(tree []doctree.Node, sel doctree.Range) doctree.Path {
	var path doctree.Path
	for _, ref := range doctree.BlocksInRange(tree, sel) {
		if ref.Block.Kind == doctree.ListItem {
			path = ref.Path
		}
	}
	return path
}

func listContainerPaths(tree []doctree.Node, sel doctree.Range) []doctree.Path {
	var paths []doctree.Path
	for _, ref := range doctree.BlocksInRange(tree, sel) {
		if doctree.IsList(ref.Block.Kind) {
			paths = append(paths, ref.Path)
		}
	}
	return paths
}

func matchPaths(paths []doctree.Path) func(*doctree.Block, doctree.Path) bool {
	return func(b *doctree.Block, p doctree.Path) bool {
		for _, mp := range paths {
			if mp.Equal(p) {
				return true
			}
		}
		return false
	}
}

// clampSelection drops a selection whose paths no longer resolve after
// a structural change, falling back to the document start.
func clampSelection(tree []doctree.Node, sel doctree.Range) doctree.Range {
	if doctree.NodeAt(tree, sel.Anchor.Path) != nil && doctree.NodeAt(tree, sel.Focus.Path) != nil {
		return sel
	}
	p := doctree.PointAtStart(tree)
	return doctree.Range{Anchor: p, Focus: p}
}
