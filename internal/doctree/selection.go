package doctree

// Path addresses a node by child indices from the root slice.
type Path []int

// Clone copies a path.
func (p Path) Clone() Path {
	np := make(Path, len(p))
	copy(np, p)
	return np
}

// Equal reports element-wise equality.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Compare orders paths in document order: -1 if p precedes o, 1 if it
// follows, 0 if equal or one is an ancestor of the other at the shared
// prefix.
func (p Path) Compare(o Path) int {
	for i := 0; i < len(p) && i < len(o); i++ {
		if p[i] < o[i] {
			return -1
		}
		if p[i] > o[i] {
			return 1
		}
	}
	return 0
}

// IsAncestorOf reports whether p strictly contains o.
func (p Path) IsAncestorOf(o Path) bool {
	if len(p) >= len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Point is a position inside a Text leaf: the leaf's path plus a rune
// offset into its text.
type Point struct {
	Path   Path
	Offset int
}

// Before reports whether a precedes b in document order.
func (a Point) Before(b Point) bool {
	if c := a.Path.Compare(b.Path); c != 0 {
		return c < 0
	}
	if a.Path.Equal(b.Path) {
		return a.Offset < b.Offset
	}
	return false
}

func (a Point) Equal(b Point) bool {
	return a.Path.Equal(b.Path) && a.Offset == b.Offset
}

// Range is a selection between two points. Anchor is where the
// selection started, focus where it ends; focus may precede anchor.
type Range struct {
	Anchor Point
	Focus  Point
}

// Collapsed reports whether the range is a single point.
func (r Range) Collapsed() bool {
	return r.Anchor.Equal(r.Focus)
}

// Edges returns the range's points in document order.
func (r Range) Edges() (start, end Point) {
	if r.Focus.Before(r.Anchor) {
		return r.Focus, r.Anchor
	}
	return r.Anchor, r.Focus
}

// Unhang trims a range whose end sits at offset 0 of a later leaf back
// to the end of the previous leaf, matching what a user means when a
// selection "hangs" into the start of the next block.
func Unhang(tree []Node, r Range) Range {
	if r.Collapsed() {
		return r
	}
	start, end := r.Edges()
	if end.Offset != 0 || end.Path.Equal(start.Path) {
		return r
	}
	leaves := CollectLeaves(tree)
	prev := Point{}
	found := false
	for _, l := range leaves {
		if l.Path.Equal(end.Path) {
			break
		}
		if start.Path.Compare(l.Path) <= 0 {
			prev = Point{Path: l.Path.Clone(), Offset: len([]rune(l.Leaf.Text))}
			found = true
		}
	}
	if !found {
		return r
	}
	return Range{Anchor: start, Focus: prev}
}

// LeafRef pairs a leaf with its path.
type LeafRef struct {
	Path Path
	Leaf *Text
}

// CollectLeaves lists every Text leaf in document order.
func CollectLeaves(tree []Node) []LeafRef {
	var out []LeafRef
	var walk func(n Node, path Path)
	walk = func(n Node, path Path) {
		switch v := n.(type) {
		case *Text:
			out = append(out, LeafRef{Path: path.Clone(), Leaf: v})
		case *Block:
			for i, c := range v.Children {
				walk(c, append(path, i))
			}
		}
	}
	for i, n := range tree {
		walk(n, Path{i})
	}
	return out
}

// NodeAt resolves a path to a node, or nil when the path is invalid.
func NodeAt(tree []Node, path Path) Node {
	if len(path) == 0 || path[0] < 0 || path[0] >= len(tree) {
		return nil
	}
	var cur Node = tree[path[0]]
	for _, idx := range path[1:] {
		b, ok := cur.(*Block)
		if !ok || idx < 0 || idx >= len(b.Children) {
			return nil
		}
		cur = b.Children[idx]
	}
	return cur
}

// TopBlockIndexes returns the distinct root-slice indexes covered by the
// range, in order.
func TopBlockIndexes(tree []Node, r Range) []int {
	start, end := r.Edges()
	if len(start.Path) == 0 || len(end.Path) == 0 {
		return nil
	}
	first, last := start.Path[0], end.Path[0]
	if first < 0 || last >= len(tree) || first > last {
		return nil
	}
	out := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, i)
	}
	return out
}

// PointAtStart returns a collapsed point at the first leaf of the tree,
// or a zero point when the tree has no leaves.
func PointAtStart(tree []Node) Point {
	leaves := CollectLeaves(tree)
	if len(leaves) == 0 {
		return Point{}
	}
	return Point{Path: leaves[0].Path, Offset: 0}
}
