package editor

import (
	"testing"

	"github.com/zandoc/docengine/internal/doctree"
)

func para(text string) *doctree.Block {
	return doctree.NewBlock(doctree.Paragraph, &doctree.Text{Text: text})
}

func selectAll(tree []doctree.Node) doctree.Range {
	leaves := doctree.CollectLeaves(tree)
	last := leaves[len(leaves)-1]
	return doctree.Range{
		Anchor: doctree.Point{Path: leaves[0].Path, Offset: 0},
		Focus:  doctree.Point{Path: last.Path, Offset: len([]rune(last.Leaf.Text))},
	}
}

func stateOver(tree []doctree.Node) State {
	return State{Tree: tree, Sel: selectAll(tree)}
}

func TestToggleMark_Symmetry(t *testing.T) {
	st := stateOver([]doctree.Node{para("hello world")})

	once := ToggleMark(st, doctree.MarkBold, nil)
	if !IsMarkActive(once.Tree, once.Sel, doctree.MarkBold) {
		t.Fatal("bold should be active after first toggle")
	}
	twice := ToggleMark(once, doctree.MarkBold, nil)
	if IsMarkActive(twice.Tree, twice.Sel, doctree.MarkBold) {
		t.Fatal("bold should be inactive after second toggle")
	}
	if doctree.PlainText(twice.Tree) != "hello world" {
		t.Errorf("text changed across toggles: %q", doctree.PlainText(twice.Tree))
	}
}

func TestToggleMark_MixedSelectionAddsEverywhere(t *testing.T) {
	// Second leaf already bold: activeness is a conjunction, so the
	// toggle must add bold to the first leaf rather than remove it.
	tree := []doctree.Node{doctree.NewBlock(doctree.Paragraph,
		&doctree.Text{Text: "plain "},
		&doctree.Text{Text: "bold", Marks: doctree.Marks{doctree.MarkBold: true}},
	)}
	st := stateOver(tree)
	if IsMarkActive(tree, st.Sel, doctree.MarkBold) {
		t.Fatal("mixed selection must not report bold as active")
	}
	out := ToggleMark(st, doctree.MarkBold, nil)
	if !IsMarkActive(out.Tree, out.Sel, doctree.MarkBold) {
		t.Fatal("bold should cover the whole selection after toggle")
	}
}

func TestToggleMark_ValuedMark(t *testing.T) {
	st := stateOver([]doctree.Node{para("tinted")})
	out := ToggleMark(st, doctree.MarkColor, "#0066cc")
	leaf := out.Tree[0].(*doctree.Block).Children[0].(*doctree.Text)
	if leaf.Marks.String(doctree.MarkColor) != "#0066cc" {
		t.Errorf("expected color mark, got %v", leaf.Marks)
	}
	back := ToggleMark(out, doctree.MarkColor, "#0066cc")
	leaf = back.Tree[0].(*doctree.Block).Children[0].(*doctree.Text)
	if leaf.Marks.Has(doctree.MarkColor) {
		t.Errorf("expected color removed, got %v", leaf.Marks)
	}
}

func TestToggleMark_EmptySelectionNoOp(t *testing.T) {
	tree := []doctree.Node{para("text")}
	st := State{Tree: tree}
	out := ToggleMark(st, doctree.MarkBold, nil)
	if !doctree.Equal(out.Tree, tree) {
		t.Error("command with empty selection must be a no-op")
	}
}

func TestToggleBlock_HeadingAndBack(t *testing.T) {
	st := stateOver([]doctree.Node{para("title")})
	h := ToggleBlock(st, doctree.Heading1)
	if h.Tree[0].(*doctree.Block).Kind != doctree.Heading1 {
		t.Fatalf("expected heading-1, got %s", h.Tree[0].(*doctree.Block).Kind)
	}
	p := ToggleBlock(h, doctree.Heading1)
	if p.Tree[0].(*doctree.Block).Kind != doctree.Paragraph {
		t.Fatalf("expected paragraph after re-toggle, got %s", p.Tree[0].(*doctree.Block).Kind)
	}
}

func TestToggleAlign_PropertyOnly(t *testing.T) {
	st := stateOver([]doctree.Node{para("centered")})
	out := ToggleAlign(st, doctree.AlignCenter)
	b := out.Tree[0].(*doctree.Block)
	if b.Align != doctree.AlignCenter || b.Kind != doctree.Paragraph {
		t.Fatalf("expected centered paragraph, got kind=%s align=%s", b.Kind, b.Align)
	}
	cleared := ToggleAlign(out, doctree.AlignCenter)
	if cleared.Tree[0].(*doctree.Block).Align != doctree.AlignNone {
		t.Error("second toggle should clear alignment")
	}
}

func TestToggleList_ThreeWay(t *testing.T) {
	// Plain paragraph -> bulleted list.
	st := stateOver([]doctree.Node{para("item text")})
	bul := ToggleList(st, doctree.BulletedList)
	list := bul.Tree[0].(*doctree.Block)
	if list.Kind != doctree.BulletedList {
		t.Fatalf("expected bulleted-list, got %s", list.Kind)
	}
	if list.Children[0].(*doctree.Block).Kind != doctree.ListItem {
		t.Fatal("expected list-item inside list")
	}

	// Bulleted -> numbered relabels in place.
	bul.Sel = selectAll(bul.Tree)
	num := ToggleList(bul, doctree.NumberedList)
	if num.Tree[0].(*doctree.Block).Kind != doctree.NumberedList {
		t.Fatalf("expected numbered-list, got %s", num.Tree[0].(*doctree.Block).Kind)
	}
	if got := doctree.PlainText(num.Tree); got != "item text" {
		t.Errorf("text lost across list type change: %q", got)
	}

	// Numbered -> numbered unwraps back to a paragraph.
	num.Sel = selectAll(num.Tree)
	back := ToggleList(num, doctree.NumberedList)
	if back.Tree[0].(*doctree.Block).Kind != doctree.Paragraph {
		t.Fatalf("expected paragraph after unwrap, got %s", back.Tree[0].(*doctree.Block).Kind)
	}
	if got := doctree.PlainText(back.Tree); got != "item text" {
		t.Errorf("text lost on unwrap: %q", got)
	}
}

func TestToggleList_Closure(t *testing.T) {
	st := stateOver([]doctree.Node{para("alpha"), para("beta")})
	cur := ToggleList(st, doctree.BulletedList)
	for i := 0; i < 4; i++ {
		cur.Sel = selectAll(cur.Tree)
		kind := doctree.NumberedList
		if i%2 == 1 {
			kind = doctree.BulletedList
		}
		cur = ToggleList(cur, kind)
	}
	items := 0
	for _, ref := range doctree.BlocksInRange(cur.Tree, selectAll(cur.Tree)) {
		if ref.Block.Kind == doctree.ListItem {
			items++
		}
	}
	if items != 2 {
		t.Errorf("expected 2 items after repeated toggles, got %d", items)
	}
	if got := doctree.PlainText(cur.Tree); got != "alpha\n\nbeta" {
		t.Errorf("text changed: %q", got)
	}
}

func TestIndent_OnlyInsideList(t *testing.T) {
	plain := stateOver([]doctree.Node{para("no list")})
	if out := Indent(plain); !doctree.Equal(out.Tree, plain.Tree) {
		t.Error("indent outside a list must be a no-op")
	}

	listed := ToggleList(stateOver([]doctree.Node{para("item")}), doctree.BulletedList)
	listed.Sel = selectAll(listed.Tree)
	in := Indent(listed)
	item := in.Tree[0].(*doctree.Block).Children[0].(*doctree.Block)
	if item.Indent != 1 {
		t.Fatalf("expected indent 1, got %d", item.Indent)
	}

	in.Sel = selectAll(in.Tree)
	out := Outdent(Outdent(in))
	item = out.Tree[0].(*doctree.Block).Children[0].(*doctree.Block)
	if item.Indent != 0 {
		t.Errorf("expected indent clamped at 0, got %d", item.Indent)
	}
}

func TestWrapLink_Collapsed(t *testing.T) {
	tree := []doctree.Node{para("see  here")}
	point := doctree.Point{Path: doctree.Path{0, 0}, Offset: 4}
	st := State{Tree: tree, Sel: doctree.Range{Anchor: point, Focus: point}}
	out := WrapLink(st, "https://adilet.zan.kz")
	children := out.Tree[0].(*doctree.Block).Children
	var link *doctree.Block
	for _, c := range children {
		if b, ok := c.(*doctree.Block); ok && b.Kind == doctree.LinkBlock {
			link = b
		}
	}
	if link == nil {
		t.Fatal("no link inserted")
	}
	if got := doctree.PlainText([]doctree.Node{link}); got != "https://adilet.zan.kz" {
		t.Errorf("collapsed wrap should use the url as text, got %q", got)
	}
}

func TestWrapLink_RangeThenUnwrap(t *testing.T) {
	tree := []doctree.Node{para("click here please")}
	r := doctree.Range{
		Anchor: doctree.Point{Path: doctree.Path{0, 0}, Offset: 6},
		Focus:  doctree.Point{Path: doctree.Path{0, 0}, Offset: 10},
	}
	st := State{Tree: tree, Sel: r}
	wrapped := WrapLink(st, "https://egov.kz")
	if !IsLinkActive(wrapped.Tree, selectAll(wrapped.Tree)) {
		t.Fatal("link should be active after wrap")
	}

	wrapped.Sel = selectAll(wrapped.Tree)
	unwrapped := UnwrapLink(wrapped)
	if IsLinkActive(unwrapped.Tree, selectAll(unwrapped.Tree)) {
		t.Fatal("link should be gone after unwrap")
	}
	if got := doctree.PlainText(unwrapped.Tree); got != "click here please" {
		t.Errorf("text lost across wrap/unwrap: %q", got)
	}
}

func TestClearFormatting_DataDriven(t *testing.T) {
	tree := []doctree.Node{doctree.NewBlock(doctree.Paragraph,
		&doctree.Text{Text: "styled", Marks: doctree.Marks{
			doctree.MarkBold: true, doctree.MarkFontSize: "18", "customMark": "x",
		}},
	)}
	st := stateOver(tree)
	out := ClearFormatting(st)
	leaf := out.Tree[0].(*doctree.Block).Children[0].(*doctree.Text)
	if len(leaf.Marks) != 0 {
		t.Errorf("expected all marks cleared, got %v", leaf.Marks)
	}
}

func TestSplitListItem(t *testing.T) {
	st := ToggleList(stateOver([]doctree.Node{para("first")}), doctree.BulletedList)
	st.Sel = selectAll(st.Tree)
	out := SplitListItem(st)
	list := out.Tree[0].(*doctree.Block)
	if len(list.Children) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Children))
	}
	second := list.Children[1].(*doctree.Block)
	if second.Kind != doctree.ListItem || doctree.PlainText([]doctree.Node{second}) != "" {
		t.Errorf("expected empty second item, got %+v", second)
	}
}

func TestExitList_OnEmptyItem(t *testing.T) {
	st := ToggleList(stateOver([]doctree.Node{para("")}), doctree.BulletedList)
	st.Sel = selectAll(st.Tree)
	out := ExitList(st)
	if out.Tree[0].(*doctree.Block).Kind != doctree.Paragraph {
		t.Fatalf("expected paragraph after exiting list, got %s", out.Tree[0].(*doctree.Block).Kind)
	}
}

func TestEditorHistory(t *testing.T) {
	e := New([]doctree.Node{para("text")})
	e.Select(selectAll(e.Tree()))
	e.ToggleMark(doctree.MarkBold, nil)
	if !IsMarkActive(e.Tree(), selectAll(e.Tree()), doctree.MarkBold) {
		t.Fatal("bold should apply")
	}
	if !e.Undo() {
		t.Fatal("undo should succeed")
	}
	if IsMarkActive(e.Tree(), selectAll(e.Tree()), doctree.MarkBold) {
		t.Fatal("undo should remove bold")
	}
	if !e.Redo() {
		t.Fatal("redo should succeed")
	}
	if !IsMarkActive(e.Tree(), selectAll(e.Tree()), doctree.MarkBold) {
		t.Fatal("redo should restore bold")
	}
}

func TestEditorNoOpDoesNotGrowHistory(t *testing.T) {
	e := New([]doctree.Node{para("text")})
	e.Select(selectAll(e.Tree()))
	e.Indent() // outside a list: no-op
	if e.Undo() {
		t.Error("no-op command must not create an undo entry")
	}
}

func TestExampleScenario_ParagraphToBulletedToNumbered(t *testing.T) {
	st := stateOver([]doctree.Node{para("пункт договора")})
	bul := ToggleList(st, doctree.BulletedList)
	bul.Sel = selectAll(bul.Tree)
	num := ToggleList(bul, doctree.NumberedList)

	root := num.Tree[0].(*doctree.Block)
	if root.Kind != doctree.NumberedList {
		t.Fatalf("expected numbered-list, got %s", root.Kind)
	}
	if len(root.Children) != 1 || root.Children[0].(*doctree.Block).Kind != doctree.ListItem {
		t.Fatal("expected exactly one list-item")
	}
	if got := doctree.PlainText(num.Tree); got != "пункт договора" {
		t.Errorf("content changed: %q", got)
	}
}

func TestToggleList_SameKindUnwrapsAllItems(t *testing.T) {
	st := ToggleList(stateOver([]doctree.Node{para("alpha"), para("beta")}), doctree.BulletedList)
	st.Sel = selectAll(st.Tree)
	out := ToggleList(st, doctree.BulletedList)
	if len(out.Tree) != 2 {
		t.Fatalf("expected 2 root blocks after unwrap, got %d", len(out.Tree))
	}
	for i, n := range out.Tree {
		if b := n.(*doctree.Block); b.Kind != doctree.Paragraph {
			t.Errorf("block %d: expected paragraph, got %s", i, b.Kind)
		}
	}
	if got := doctree.PlainText(out.Tree); got != "alpha\n\nbeta" {
		t.Errorf("text changed on unwrap: %q", got)
	}
}

func TestToggleBlock_InsideListBecomesHeading(t *testing.T) {
	st := ToggleList(stateOver([]doctree.Node{para("title")}), doctree.BulletedList)
	st.Sel = selectAll(st.Tree)
	out := ToggleBlock(st, doctree.Heading1)
	root := out.Tree[0].(*doctree.Block)
	if root.Kind != doctree.Heading1 {
		t.Fatalf("expected heading-one after toggling inside a list, got %s", root.Kind)
	}
	if got := doctree.PlainText(out.Tree); got != "title" {
		t.Errorf("text changed: %q", got)
	}
}

func TestExitList_KeepsSiblings(t *testing.T) {
	tree := []doctree.Node{doctree.NewBlock(doctree.BulletedList,
		doctree.NewBlock(doctree.ListItem, &doctree.Text{Text: "first"}),
		doctree.NewBlock(doctree.ListItem, &doctree.Text{}),
	)}
	caret := doctree.Point{Path: doctree.Path{0, 1, 0}, Offset: 0}
	st := State{Tree: tree, Sel: doctree.Range{Anchor: caret, Focus: caret}}

	out := ExitList(st)
	if len(out.Tree) != 2 {
		t.Fatalf("expected list + paragraph, got %d root nodes", len(out.Tree))
	}
	list := out.Tree[0].(*doctree.Block)
	if list.Kind != doctree.BulletedList || len(list.Children) != 1 {
		t.Fatalf("remaining list lost its items: kind=%s items=%d", list.Kind, len(list.Children))
	}
	if got := doctree.PlainText([]doctree.Node{list}); got != "first" {
		t.Errorf("sibling item changed: %q", got)
	}
	if out.Tree[1].(*doctree.Block).Kind != doctree.Paragraph {
		t.Fatalf("expected paragraph for the exited item, got %s", out.Tree[1].(*doctree.Block).Kind)
	}
	if !out.Sel.Anchor.Path.Equal(doctree.Path{1, 0}) {
		t.Errorf("caret should follow the exited paragraph, got %v", out.Sel.Anchor.Path)
	}
}

func TestExitList_MiddleItemSplitsList(t *testing.T) {
	tree := []doctree.Node{doctree.NewBlock(doctree.NumberedList,
		doctree.NewBlock(doctree.ListItem, &doctree.Text{Text: "one"}),
		doctree.NewBlock(doctree.ListItem, &doctree.Text{}),
		doctree.NewBlock(doctree.ListItem, &doctree.Text{Text: "three"}),
	)}
	caret := doctree.Point{Path: doctree.Path{0, 1, 0}, Offset: 0}
	st := State{Tree: tree, Sel: doctree.Range{Anchor: caret, Focus: caret}}

	out := ExitList(st)
	if len(out.Tree) != 3 {
		t.Fatalf("expected list, paragraph, list; got %d root nodes", len(out.Tree))
	}
	if out.Tree[0].(*doctree.Block).Kind != doctree.NumberedList ||
		out.Tree[1].(*doctree.Block).Kind != doctree.Paragraph ||
		out.Tree[2].(*doctree.Block).Kind != doctree.NumberedList {
		t.Fatalf("unexpected shapes: %s, %s, %s",
			out.Tree[0].(*doctree.Block).Kind,
			out.Tree[1].(*doctree.Block).Kind,
			out.Tree[2].(*doctree.Block).Kind)
	}
	if got := doctree.PlainText(out.Tree); got != "one\n\n\n\nthree" {
		t.Errorf("text changed: %q", got)
	}
}

func TestExitList_NonEmptyItemNoOp(t *testing.T) {
	st := ToggleList(stateOver([]doctree.Node{para("keep me")}), doctree.BulletedList)
	st.Sel = selectAll(st.Tree)
	out := ExitList(st)
	if !doctree.Equal(out.Tree, st.Tree) {
		t.Error("exit on a non-empty item must be a no-op")
	}
}

func TestEditorHistoryCap(t *testing.T) {
	e := NewWithHistory([]doctree.Node{para("a"), para("b"), para("c")}, 2)
	marks := []string{doctree.MarkBold, doctree.MarkItalic, doctree.MarkUnderline}
	for _, m := range marks {
		e.Select(selectAll(e.Tree()))
		e.ToggleMark(m, nil)
	}
	undone := 0
	for e.Undo() {
		undone++
	}
	if undone != 2 {
		t.Errorf("expected undo depth capped at 2, got %d", undone)
	}
}
