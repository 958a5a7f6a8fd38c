package doctree

import (
	"errors"
	"testing"
)

// selectAll covers every leaf of the tree.
func selectAll(tree []Node) Range {
	leaves := CollectLeaves(tree)
	if len(leaves) == 0 {
		return Range{}
	}
	last := leaves[len(leaves)-1]
	return Range{
		Anchor: Point{Path: leaves[0].Path, Offset: 0},
		Focus:  Point{Path: last.Path, Offset: len([]rune(last.Leaf.Text))},
	}
}

func TestSetMark_WholeLeaf(t *testing.T) {
	tree := []Node{para("hello")}
	out, err := SetMark(tree, selectAll(tree), MarkBold, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leaf := out[0].(*Block).Children[0].(*Text)
	if !leaf.Marks.Bool(MarkBold) {
		t.Error("expected bold mark on leaf")
	}
	// Input untouched.
	if tree[0].(*Block).Children[0].(*Text).Marks.Bool(MarkBold) {
		t.Error("input tree was mutated")
	}
}

func TestSetMark_PartialLeafSplits(t *testing.T) {
	tree := []Node{para("hello world")}
	r := Range{
		Anchor: Point{Path: Path{0, 0}, Offset: 6},
		Focus:  Point{Path: Path{0, 0}, Offset: 11},
	}
	out, err := SetMark(tree, r, MarkItalic, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	children := out[0].(*Block).Children
	if len(children) != 2 {
		t.Fatalf("expected 2 leaves after split, got %d", len(children))
	}
	first := children[0].(*Text)
	second := children[1].(*Text)
	if first.Text != "hello " || first.Marks.Bool(MarkItalic) {
		t.Errorf("unexpected first leaf: %q marks=%v", first.Text, first.Marks)
	}
	if second.Text != "world" || !second.Marks.Bool(MarkItalic) {
		t.Errorf("unexpected second leaf: %q marks=%v", second.Text, second.Marks)
	}
}

func TestSetMark_MiddleOfLeafSplitsInThree(t *testing.T) {
	tree := []Node{para("abcdef")}
	r := Range{
		Anchor: Point{Path: Path{0, 0}, Offset: 2},
		Focus:  Point{Path: Path{0, 0}, Offset: 4},
	}
	out, err := SetMark(tree, r, MarkBold, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	children := out[0].(*Block).Children
	if len(children) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(children))
	}
	mid := children[1].(*Text)
	if mid.Text != "cd" || !mid.Marks.Bool(MarkBold) {
		t.Errorf("unexpected middle leaf: %q marks=%v", mid.Text, mid.Marks)
	}
}

func TestSetMark_RemoveValue(t *testing.T) {
	tree := []Node{NewBlock(Paragraph, &Text{Text: "x", Marks: Marks{MarkBold: true, MarkColor: "#f00"}})}
	out, err := SetMark(tree, selectAll(tree), MarkBold, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leaf := out[0].(*Block).Children[0].(*Text)
	if leaf.Marks.Bool(MarkBold) {
		t.Error("bold should be removed")
	}
	if leaf.Marks.String(MarkColor) != "#f00" {
		t.Error("color should be preserved")
	}
}

func TestSetMark_AcrossBlocks(t *testing.T) {
	tree := []Node{para("one"), para("two")}
	out, err := SetMark(tree, selectAll(tree), MarkUnderline, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range out {
		leaf := out[i].(*Block).Children[0].(*Text)
		if !leaf.Marks.Bool(MarkUnderline) {
			t.Errorf("block %d leaf not underlined", i)
		}
	}
}

func TestClearMarks_RemovesEverything(t *testing.T) {
	tree := []Node{NewBlock(Paragraph,
		&Text{Text: "styled", Marks: Marks{MarkBold: true, MarkItalic: true, MarkColor: "#00f", "futureMark": true}},
	)}
	out, err := ClearMarks(tree, selectAll(tree))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leaf := out[0].(*Block).Children[0].(*Text)
	if len(leaf.Marks) != 0 {
		t.Errorf("expected no marks, got %v", leaf.Marks)
	}
}

func TestSetBlocks_ChangesKind(t *testing.T) {
	tree := []Node{para("title")}
	out, err := SetBlocks(tree, selectAll(tree),
		func(b *Block, p Path) bool { return len(p) == 1 },
		func(b *Block) { b.Kind = Heading2 },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].(*Block).Kind != Heading2 {
		t.Errorf("expected heading-2, got %s", out[0].(*Block).Kind)
	}
}

func TestSetBlocks_NoMatchIsViolation(t *testing.T) {
	tree := []Node{para("x")}
	_, err := SetBlocks(tree, selectAll(tree),
		func(b *Block, p Path) bool { return false },
		func(b *Block) {},
	)
	if !errors.Is(err, ErrStructuralViolation) {
		t.Fatalf("expected structural violation, got %v", err)
	}
}

func TestWrapTopLevel_ThenUnwrapRestores(t *testing.T) {
	tree := []Node{para("a"), para("b"), para("c")}
	wrapped, err := WrapTopLevel(tree, 0, 1, &Block{Kind: Blockquote})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if len(wrapped) != 2 {
		t.Fatalf("expected 2 root nodes after wrap, got %d", len(wrapped))
	}
	bq := wrapped[0].(*Block)
	if bq.Kind != Blockquote || len(bq.Children) != 2 {
		t.Fatalf("unexpected wrapper: kind=%s children=%d", bq.Kind, len(bq.Children))
	}

	unwrapped, err := UnwrapBlocks(wrapped, func(b *Block, p Path) bool { return b.Kind == Blockquote })
	if err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if !Equal(tree, unwrapped) {
		t.Error("wrap+unwrap did not restore the original tree")
	}
}

func TestWrapInline_SplitsBoundaries(t *testing.T) {
	tree := []Node{para("visit example now")}
	r := Range{
		Anchor: Point{Path: Path{0, 0}, Offset: 6},
		Focus:  Point{Path: Path{0, 0}, Offset: 13},
	}
	out, err := WrapInline(tree, r, &Block{Kind: LinkBlock, URL: "https://example.kz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	children := out[0].(*Block).Children
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	link := children[1].(*Block)
	if link.Kind != LinkBlock || link.URL != "https://example.kz" {
		t.Fatalf("unexpected link block: %+v", link)
	}
	if got := nodeText(link); got != "example" {
		t.Errorf("expected link text %q, got %q", "example", got)
	}
}

func TestWrapInline_AcrossBlocksRejected(t *testing.T) {
	tree := []Node{para("one"), para("two")}
	r := Range{
		Anchor: Point{Path: Path{0, 0}, Offset: 0},
		Focus:  Point{Path: Path{1, 0}, Offset: 3},
	}
	_, err := WrapInline(tree, r, &Block{Kind: LinkBlock, URL: "https://x"})
	if !errors.Is(err, ErrStructuralViolation) {
		t.Fatalf("expected structural violation, got %v", err)
	}
}

func TestInsertInline(t *testing.T) {
	tree := []Node{para("before after")}
	at := Point{Path: Path{0, 0}, Offset: 7}
	box := &Block{Kind: BoxedField, FieldName: "amount", Children: []Node{&Text{Text: "{{amount}}"}}}
	out, err := InsertInline(tree, at, []Node{box})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	children := out[0].(*Block).Children
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if children[1].(*Block).Kind != BoxedField {
		t.Errorf("expected boxed-field in the middle, got %s", children[1].(*Block).Kind)
	}
}

func TestInsertBlockAfter_Root(t *testing.T) {
	tree := []Node{para("a"), para("c")}
	out, err := InsertBlockAfter(tree, Path{0}, para("b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 || nodeText(out[1]) != "b" {
		t.Fatalf("unexpected order: %q", PlainText(out))
	}
}

func TestSplitBlockAt(t *testing.T) {
	tree := []Node{para("hello world")}
	out, err := SplitBlockAt(tree, Point{Path: Path{0, 0}, Offset: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(out))
	}
	if nodeText(out[0]) != "hello" || nodeText(out[1]) != " world" {
		t.Errorf("unexpected split: %q / %q", nodeText(out[0]), nodeText(out[1]))
	}
}

func TestUnhang(t *testing.T) {
	tree := []Node{para("first"), para("second")}
	hanging := Range{
		Anchor: Point{Path: Path{0, 0}, Offset: 0},
		Focus:  Point{Path: Path{1, 0}, Offset: 0},
	}
	got := Unhang(tree, hanging)
	_, end := got.Edges()
	if !end.Path.Equal(Path{0, 0}) || end.Offset != 5 {
		t.Errorf("expected end at (0,0):5, got %v:%d", end.Path, end.Offset)
	}

	// A range that does not hang is untouched.
	normal := Range{
		Anchor: Point{Path: Path{0, 0}, Offset: 1},
		Focus:  Point{Path: Path{1, 0}, Offset: 3},
	}
	got = Unhang(tree, normal)
	if !got.Anchor.Equal(normal.Anchor) || !got.Focus.Equal(normal.Focus) {
		t.Errorf("non-hanging range was modified: %+v", got)
	}
}

func TestLeafCoverage_Collapsed(t *testing.T) {
	tree := []Node{para("abc")}
	r := Range{
		Anchor: Point{Path: Path{0, 0}, Offset: 1},
		Focus:  Point{Path: Path{0, 0}, Offset: 1},
	}
	spans := LeafCoverage(tree, r)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].From != 1 || spans[0].To != 1 {
		t.Errorf("expected zero-width span at 1, got [%d,%d)", spans[0].From, spans[0].To)
	}
}

func TestUnwrapBlocks_ListLeavesParagraphs(t *testing.T) {
	tree := []Node{&Block{Kind: BulletedList, Children: []Node{
		&Block{Kind: ListItem, Children: []Node{&Text{Text: "alpha"}}},
		&Block{Kind: ListItem, Children: []Node{&Text{Text: "beta"}}},
	}}}
	out, err := UnwrapBlocks(tree, func(b *Block, p Path) bool { return IsList(b.Kind) })
	if err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 root blocks, got %d", len(out))
	}
	for i, n := range out {
		if b := n.(*Block); b.Kind != Paragraph {
			t.Errorf("node %d: expected paragraph, got %s", i, b.Kind)
		}
	}
	if got := PlainText(out); got != "alpha\n\nbeta" {
		t.Errorf("text changed across unwrap: %q", got)
	}
}

func TestLiftListItem_SplitsAroundItem(t *testing.T) {
	tree := []Node{&Block{Kind: NumberedList, Children: []Node{
		&Block{Kind: ListItem, Children: []Node{&Text{Text: "one"}}},
		&Block{Kind: ListItem, Children: []Node{&Text{Text: "two"}}},
		&Block{Kind: ListItem, Children: []Node{&Text{Text: "three"}}},
	}}}
	out, err := LiftListItem(tree, Path{0, 1})
	if err != nil {
		t.Fatalf("lift: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected list, paragraph, list; got %d nodes", len(out))
	}
	before := out[0].(*Block)
	if before.Kind != NumberedList || len(before.Children) != 1 {
		t.Fatalf("unexpected leading list: kind=%s items=%d", before.Kind, len(before.Children))
	}
	mid := out[1].(*Block)
	if mid.Kind != Paragraph || PlainText([]Node{mid}) != "two" {
		t.Fatalf("expected lifted paragraph %q, got kind=%s text=%q", "two", mid.Kind, PlainText([]Node{mid}))
	}
	after := out[2].(*Block)
	if after.Kind != NumberedList || PlainText([]Node{after}) != "three" {
		t.Fatalf("unexpected trailing list: kind=%s text=%q", after.Kind, PlainText([]Node{after}))
	}
}

func TestLiftListItem_EdgeItemsKeepOneList(t *testing.T) {
	tree := []Node{&Block{Kind: BulletedList, Children: []Node{
		&Block{Kind: ListItem, Children: []Node{&Text{Text: "head"}}},
		&Block{Kind: ListItem, Children: []Node{&Text{Text: "tail"}}},
	}}}
	out, err := LiftListItem(tree, Path{0, 1})
	if err != nil {
		t.Fatalf("lift: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected list + paragraph, got %d nodes", len(out))
	}
	if out[0].(*Block).Kind != BulletedList || out[1].(*Block).Kind != Paragraph {
		t.Fatalf("unexpected shapes: %s, %s", out[0].(*Block).Kind, out[1].(*Block).Kind)
	}
	if got := PlainText(out); got != "head\n\ntail" {
		t.Errorf("text changed: %q", got)
	}
}
