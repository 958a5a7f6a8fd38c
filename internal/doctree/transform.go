package doctree

import "fmt"

// Mutation primitives are pure: they clone the input tree, apply the
// change, validate, and either return the new tree or an
// ErrStructuralViolation-wrapped error with the input untouched.

// LeafSpan is the portion [From,To) of a leaf covered by a range,
// measured in runes.
type LeafSpan struct {
	Path Path
	Leaf *Text
	From int
	To   int
}

// LeafCoverage lists the leaves a range touches together with the
// covered rune spans. A collapsed range yields the single leaf under
// the point with a zero-width span at the offset.
func LeafCoverage(tree []Node, r Range) []LeafSpan {
	start, end := r.Edges()
	if len(start.Path) == 0 {
		return nil
	}
	var out []LeafSpan
	for _, ref := range CollectLeaves(tree) {
		if start.Path.Compare(ref.Path) > 0 || ref.Path.Compare(end.Path) > 0 {
			continue
		}
		span := LeafSpan{Path: ref.Path, Leaf: ref.Leaf, From: 0, To: len([]rune(ref.Leaf.Text))}
		if ref.Path.Equal(start.Path) {
			span.From = start.Offset
		}
		if ref.Path.Equal(end.Path) {
			span.To = end.Offset
		}
		if span.From > span.To {
			continue
		}
		out = append(out, span)
	}
	return out
}

// SetMark applies (value != nil) or removes (value == nil) a mark over
// the covered portion of every leaf in the range, splitting leaves that
// are only partially covered.
func SetMark(tree []Node, r Range, name string, value any) ([]Node, error) {
	nt := CloneTree(tree)
	start, end := r.Edges()
	if len(start.Path) == 0 {
		return nil, fmt.Errorf("%w: empty selection", ErrStructuralViolation)
	}
	for i, n := range nt {
		nt[i] = setMarkNode(n, Path{i}, start, end, name, value)
	}
	Normalize(nt)
	if err := Validate(nt); err != nil {
		return nil, err
	}
	return nt, nil
}

func setMarkNode(n Node, path Path, start, end Point, name string, value any) Node {
	b, ok := n.(*Block)
	if !ok {
		return n
	}
	var children []Node
	for i, c := range b.Children {
		cp := append(path.Clone(), i)
		leaf, isLeaf := c.(*Text)
		if !isLeaf {
			children = append(children, setMarkNode(c, cp, start, end, name, value))
			continue
		}
		if start.Path.Compare(cp) > 0 || cp.Compare(end.Path) > 0 {
			children = append(children, leaf)
			continue
		}
		runes := []rune(leaf.Text)
		from, to := 0, len(runes)
		if cp.Equal(start.Path) {
			from = clamp(start.Offset, 0, len(runes))
		}
		if cp.Equal(end.Path) {
			to = clamp(end.Offset, 0, len(runes))
		}
		if from >= to && len(runes) > 0 {
			children = append(children, leaf)
			continue
		}
		if from > 0 {
			children = append(children, &Text{Text: string(runes[:from]), Marks: leaf.Marks.Clone()})
		}
		mid := &Text{Text: string(runes[from:to])}
		if value != nil {
			mid.Marks = leaf.Marks.With(name, value)
		} else {
			mid.Marks = leaf.Marks.Without(name)
		}
		children = append(children, mid)
		if to < len(runes) {
			children = append(children, &Text{Text: string(runes[to:]), Marks: leaf.Marks.Clone()})
		}
	}
	b.Children = children
	return b
}

// ClearMarks strips every mark from the covered portion of each leaf,
// splitting partially covered leaves. The removal iterates whatever
// keys each leaf carries, so marks added later are cleared too.
func ClearMarks(tree []Node, r Range) ([]Node, error) {
	nt := CloneTree(tree)
	start, end := r.Edges()
	if len(start.Path) == 0 {
		return nil, fmt.Errorf("%w: empty selection", ErrStructuralViolation)
	}
	for i, n := range nt {
		nt[i] = clearMarksNode(n, Path{i}, start, end)
	}
	Normalize(nt)
	if err := Validate(nt); err != nil {
		return nil, err
	}
	return nt, nil
}

func clearMarksNode(n Node, path Path, start, end Point) Node {
	b, ok := n.(*Block)
	if !ok {
		return n
	}
	var children []Node
	for i, c := range b.Children {
		cp := append(path.Clone(), i)
		leaf, isLeaf := c.(*Text)
		if !isLeaf {
			children = append(children, clearMarksNode(c, cp, start, end))
			continue
		}
		if start.Path.Compare(cp) > 0 || cp.Compare(end.Path) > 0 || len(leaf.Marks) == 0 {
			children = append(children, leaf)
			continue
		}
		runes := []rune(leaf.Text)
		from, to := 0, len(runes)
		if cp.Equal(start.Path) {
			from = clamp(start.Offset, 0, len(runes))
		}
		if cp.Equal(end.Path) {
			to = clamp(end.Offset, 0, len(runes))
		}
		if from >= to && len(runes) > 0 {
			children = append(children, leaf)
			continue
		}
		if from > 0 {
			children = append(children, &Text{Text: string(runes[:from]), Marks: leaf.Marks.Clone()})
		}
		children = append(children, &Text{Text: string(runes[from:to])})
		if to < len(runes) {
			children = append(children, &Text{Text: string(runes[to:]), Marks: leaf.Marks.Clone()})
		}
	}
	b.Children = children
	return b
}

// BlockRef pairs a block with its path.
type BlockRef struct {
	Path  Path
	Block *Block
}

// BlocksInRange lists every block that contains at least one covered
// leaf, ancestors included, in document order.
func BlocksInRange(tree []Node, r Range) []BlockRef {
	spans := LeafCoverage(tree, r)
	seen := map[string]bool{}
	var out []BlockRef
	for _, span := range spans {
		for l := 1; l < len(span.Path); l++ {
			p := span.Path[:l]
			key := fmt.Sprint([]int(p))
			if seen[key] {
				continue
			}
			seen[key] = true
			if b, ok := NodeAt(tree, p).(*Block); ok {
				out = append(out, BlockRef{Path: p.Clone(), Block: b})
			}
		}
	}
	return out
}

// SetBlocks applies set to every block in the range accepted by match
// and returns the updated tree.
func SetBlocks(tree []Node, r Range, match func(*Block, Path) bool, set func(*Block)) ([]Node, error) {
	nt := CloneTree(tree)
	n := 0
	for _, ref := range BlocksInRange(nt, r) {
		if match == nil || match(ref.Block, ref.Path) {
			set(ref.Block)
			n++
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: no block matched", ErrStructuralViolation)
	}
	Normalize(nt)
	if err := Validate(nt); err != nil {
		return nil, err
	}
	return nt, nil
}

// WrapTopLevel wraps the root blocks in [from,to] into a copy of
// wrapper inserted at their position.
func WrapTopLevel(tree []Node, from, to int, wrapper *Block) ([]Node, error) {
	if from < 0 || to >= len(tree) || from > to {
		return nil, fmt.Errorf("%w: wrap span out of bounds", ErrStructuralViolation)
	}
	nt := CloneTree(tree)
	w := wrapper.Clone().(*Block)
	w.Children = append([]Node{}, nt[from:to+1]...)
	out := append([]Node{}, nt[:from]...)
	out = append(out, w)
	out = append(out, nt[to+1:]...)
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnwrapBlocks removes every matched block, hoisting its children into
// the parent (or the root slice). List items orphaned by the hoist are
// retyped to paragraphs before validation, so unwrapping a list
// container yields a valid tree instead of failing the list-nesting
// invariant.
func UnwrapBlocks(tree []Node, match func(*Block, Path) bool) ([]Node, error) {
	nt := CloneTree(tree)
	out := unwrapSlice(nt, Path{}, match)
	retypeOrphanItems(out, nil)
	Normalize(out)
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// retypeOrphanItems turns list items whose parent is no longer a list
// container into paragraphs.
func retypeOrphanItems(nodes []Node, parent *Block) {
	for _, n := range nodes {
		b, ok := n.(*Block)
		if !ok {
			continue
		}
		if b.Kind == ListItem && (parent == nil || !IsList(parent.Kind)) {
			b.Kind = Paragraph
			b.Indent = 0
		}
		retypeOrphanItems(b.Children, b)
	}
}

func unwrapSlice(nodes []Node, base Path, match func(*Block, Path) bool) []Node {
	var out []Node
	for i, n := range nodes {
		b, ok := n.(*Block)
		if !ok {
			out = append(out, n)
			continue
		}
		p := append(base.Clone(), i)
		b.Children = unwrapSlice(b.Children, p, match)
		if match(b, p) {
			out = append(out, b.Children...)
		} else {
			out = append(out, b)
		}
	}
	return out
}

// LiftListItem moves the list item at path out of its list as a
// paragraph sibling, splitting the list around it: items before the
// lifted one stay in the original list, items after it move to a new
// list of the same kind. Lists emptied by the lift disappear.
func LiftListItem(tree []Node, itemPath Path) ([]Node, error) {
	if len(itemPath) < 2 {
		return nil, fmt.Errorf("%w: item path too short", ErrStructuralViolation)
	}
	nt := CloneTree(tree)
	listPath := itemPath[:len(itemPath)-1]
	itemIdx := itemPath[len(itemPath)-1]

	list, _ := NodeAt(nt, listPath).(*Block)
	if list == nil || !IsList(list.Kind) {
		return nil, fmt.Errorf("%w: path is not inside a list", ErrStructuralViolation)
	}
	if itemIdx < 0 || itemIdx >= len(list.Children) {
		return nil, fmt.Errorf("%w: item index out of bounds", ErrStructuralViolation)
	}
	item, _ := list.Children[itemIdx].(*Block)
	if item == nil || item.Kind != ListItem {
		return nil, fmt.Errorf("%w: path is not a list item", ErrStructuralViolation)
	}
	item.Kind = Paragraph
	item.Indent = 0

	var repl []Node
	if itemIdx > 0 {
		repl = append(repl, &Block{Kind: list.Kind, Children: list.Children[:itemIdx]})
	}
	repl = append(repl, item)
	if itemIdx < len(list.Children)-1 {
		repl = append(repl, &Block{Kind: list.Kind, Children: list.Children[itemIdx+1:]})
	}

	listIdx := listPath[len(listPath)-1]
	if len(listPath) == 1 {
		out := append([]Node{}, nt[:listIdx]...)
		out = append(out, repl...)
		out = append(out, nt[listIdx+1:]...)
		nt = out
	} else {
		parent, _ := NodeAt(nt, listPath[:len(listPath)-1]).(*Block)
		if parent == nil {
			return nil, fmt.Errorf("%w: invalid list path", ErrStructuralViolation)
		}
		rebuilt := append([]Node{}, parent.Children[:listIdx]...)
		rebuilt = append(rebuilt, repl...)
		rebuilt = append(rebuilt, parent.Children[listIdx+1:]...)
		parent.Children = rebuilt
	}

	Normalize(nt)
	if err := Validate(nt); err != nil {
		return nil, err
	}
	return nt, nil
}

// WrapInline moves the covered content of a range into a copy of
// wrapper placed at the selection, splitting partially covered leaves
// at the boundaries. Start and end must share a parent block.
func WrapInline(tree []Node, r Range, wrapper *Block) ([]Node, error) {
	start, end := r.Edges()
	if len(start.Path) < 2 || len(end.Path) < 2 {
		return nil, fmt.Errorf("%w: selection has no parent block", ErrStructuralViolation)
	}
	parentPath := start.Path[:len(start.Path)-1]
	if !parentPath.Equal(end.Path[:len(end.Path)-1]) {
		return nil, fmt.Errorf("%w: inline wrap across blocks", ErrStructuralViolation)
	}

	nt := CloneTree(tree)
	parent, _ := NodeAt(nt, parentPath).(*Block)
	if parent == nil {
		return nil, fmt.Errorf("%w: invalid selection path", ErrStructuralViolation)
	}

	si := start.Path[len(start.Path)-1]
	ei := end.Path[len(end.Path)-1]
	if si < 0 || ei >= len(parent.Children) || si > ei {
		return nil, fmt.Errorf("%w: invalid selection span", ErrStructuralViolation)
	}

	var before, inside, after []Node
	before = append(before, parent.Children[:si]...)
	for i := si; i <= ei; i++ {
		c := parent.Children[i]
		leaf, isLeaf := c.(*Text)
		if !isLeaf {
			inside = append(inside, c)
			continue
		}
		runes := []rune(leaf.Text)
		from, to := 0, len(runes)
		if i == si {
			from = clamp(start.Offset, 0, len(runes))
		}
		if i == ei {
			to = clamp(end.Offset, 0, len(runes))
		}
		if from > 0 {
			before = append(before, &Text{Text: string(runes[:from]), Marks: leaf.Marks.Clone()})
		}
		inside = append(inside, &Text{Text: string(runes[from:to]), Marks: leaf.Marks.Clone()})
		if to < len(runes) {
			after = append(after, &Text{Text: string(runes[to:]), Marks: leaf.Marks.Clone()})
		}
	}
	after = append(after, parent.Children[ei+1:]...)

	w := wrapper.Clone().(*Block)
	w.Children = inside
	if len(w.Children) == 0 {
		w.Children = []Node{&Text{}}
	}
	parent.Children = append(append(before, w), after...)

	Normalize(nt)
	if err := Validate(nt); err != nil {
		return nil, err
	}
	return nt, nil
}

// InsertInline splits the leaf at the point and inserts nodes there.
func InsertInline(tree []Node, at Point, nodes []Node) ([]Node, error) {
	if len(at.Path) < 2 {
		return nil, fmt.Errorf("%w: insert point has no parent block", ErrStructuralViolation)
	}
	nt := CloneTree(tree)
	parentPath := at.Path[:len(at.Path)-1]
	parent, _ := NodeAt(nt, parentPath).(*Block)
	if parent == nil {
		return nil, fmt.Errorf("%w: invalid insert path", ErrStructuralViolation)
	}
	idx := at.Path[len(at.Path)-1]
	if idx < 0 || idx >= len(parent.Children) {
		return nil, fmt.Errorf("%w: invalid insert index", ErrStructuralViolation)
	}
	leaf, ok := parent.Children[idx].(*Text)
	if !ok {
		return nil, fmt.Errorf("%w: insert point is not a leaf", ErrStructuralViolation)
	}
	runes := []rune(leaf.Text)
	off := clamp(at.Offset, 0, len(runes))

	var rebuilt []Node
	rebuilt = append(rebuilt, parent.Children[:idx]...)
	rebuilt = append(rebuilt, &Text{Text: string(runes[:off]), Marks: leaf.Marks.Clone()})
	for _, n := range nodes {
		rebuilt = append(rebuilt, n.Clone())
	}
	rebuilt = append(rebuilt, &Text{Text: string(runes[off:]), Marks: leaf.Marks.Clone()})
	rebuilt = append(rebuilt, parent.Children[idx+1:]...)
	parent.Children = rebuilt

	Normalize(nt)
	if err := Validate(nt); err != nil {
		return nil, err
	}
	return nt, nil
}

// InsertBlockAfter inserts block as the next sibling of the block at
// path.
func InsertBlockAfter(tree []Node, path Path, block *Block) ([]Node, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrStructuralViolation)
	}
	nt := CloneTree(tree)
	idx := path[len(path)-1]
	if len(path) == 1 {
		if idx < 0 || idx >= len(nt) {
			return nil, fmt.Errorf("%w: path out of bounds", ErrStructuralViolation)
		}
		out := append([]Node{}, nt[:idx+1]...)
		out = append(out, block.Clone())
		out = append(out, nt[idx+1:]...)
		if err := Validate(out); err != nil {
			return nil, err
		}
		return out, nil
	}
	parent, _ := NodeAt(nt, path[:len(path)-1]).(*Block)
	if parent == nil || idx < 0 || idx >= len(parent.Children) {
		return nil, fmt.Errorf("%w: path out of bounds", ErrStructuralViolation)
	}
	rebuilt := append([]Node{}, parent.Children[:idx+1]...)
	rebuilt = append(rebuilt, block.Clone())
	rebuilt = append(rebuilt, parent.Children[idx+1:]...)
	parent.Children = rebuilt
	if err := Validate(nt); err != nil {
		return nil, err
	}
	return nt, nil
}

// SplitBlockAt splits the root block containing the point into two
// siblings at that point. Content before the point stays in the first
// block, the rest moves to a copy that follows it.
func SplitBlockAt(tree []Node, at Point) ([]Node, error) {
	if len(at.Path) < 2 {
		return nil, fmt.Errorf("%w: split point has no parent block", ErrStructuralViolation)
	}
	nt := CloneTree(tree)
	rootIdx := at.Path[0]
	root, _ := nt[rootIdx].(*Block)
	if root == nil {
		return nil, fmt.Errorf("%w: split point not inside a block", ErrStructuralViolation)
	}
	// Only direct leaf children of the root block are split; deeper
	// points split at the child boundary.
	childIdx := at.Path[1]
	if childIdx < 0 || childIdx >= len(root.Children) {
		return nil, fmt.Errorf("%w: split index out of bounds", ErrStructuralViolation)
	}

	first := root.Clone().(*Block)
	second := root.Clone().(*Block)

	if leaf, ok := root.Children[childIdx].(*Text); ok && len(at.Path) == 2 {
		runes := []rune(leaf.Text)
		off := clamp(at.Offset, 0, len(runes))
		first.Children = append(append([]Node{}, cloneSlice(root.Children[:childIdx])...),
			&Text{Text: string(runes[:off]), Marks: leaf.Marks.Clone()})
		second.Children = append([]Node{&Text{Text: string(runes[off:]), Marks: leaf.Marks.Clone()}},
			cloneSlice(root.Children[childIdx+1:])...)
	} else {
		first.Children = cloneSlice(root.Children[:childIdx])
		second.Children = cloneSlice(root.Children[childIdx:])
	}

	out := append([]Node{}, nt[:rootIdx]...)
	out = append(out, first, second)
	out = append(out, nt[rootIdx+1:]...)
	Normalize(out)
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

func cloneSlice(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
