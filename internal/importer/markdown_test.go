package importer

import (
	"strings"
	"testing"

	"github.com/zandoc/docengine/internal/doctree"
)

func leafAt(t *testing.T, tree []doctree.Node, blockIdx, childIdx int) *doctree.Text {
	t.Helper()
	b, ok := tree[blockIdx].(*doctree.Block)
	if !ok {
		t.Fatalf("node %d is not a block", blockIdx)
	}
	leaf, ok := b.Children[childIdx].(*doctree.Text)
	if !ok {
		t.Fatalf("child %d of block %d is not a text leaf", childIdx, blockIdx)
	}
	return leaf
}

func TestImportMarkdown_BoldItalic(t *testing.T) {
	tree := ImportMarkdown("**Hello** _world_")
	if len(tree) != 1 {
		t.Fatalf("expected 1 block, got %d", len(tree))
	}
	p := tree[0].(*doctree.Block)
	if p.Kind != doctree.Paragraph {
		t.Fatalf("expected paragraph, got %s", p.Kind)
	}
	if len(p.Children) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(p.Children))
	}
	hello := leafAt(t, tree, 0, 0)
	if hello.Text != "Hello" || !hello.Marks.Bool(doctree.MarkBold) {
		t.Errorf("unexpected first leaf: %q marks=%v", hello.Text, hello.Marks)
	}
	space := leafAt(t, tree, 0, 1)
	if space.Text != " " || len(space.Marks) != 0 {
		t.Errorf("unexpected middle leaf: %q marks=%v", space.Text, space.Marks)
	}
	world := leafAt(t, tree, 0, 2)
	if world.Text != "world" || !world.Marks.Bool(doctree.MarkItalic) {
		t.Errorf("unexpected last leaf: %q marks=%v", world.Text, world.Marks)
	}
}

func TestImportMarkdown_NestedMarksRecurse(t *testing.T) {
	tree := ImportMarkdown("**bold _both_**")
	p := tree[0].(*doctree.Block)
	if len(p.Children) != 2 {
		t.Fatalf("expected 2 leaves, got %d", len(p.Children))
	}
	both := leafAt(t, tree, 0, 1)
	if !both.Marks.Bool(doctree.MarkBold) || !both.Marks.Bool(doctree.MarkItalic) {
		t.Errorf("nested emphasis lost a mark: %v", both.Marks)
	}
}

func TestImportMarkdown_Headings(t *testing.T) {
	tree := ImportMarkdown("# One\n\n### Three")
	if len(tree) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(tree))
	}
	if tree[0].(*doctree.Block).Kind != doctree.Heading1 {
		t.Errorf("expected heading-1, got %s", tree[0].(*doctree.Block).Kind)
	}
	if tree[1].(*doctree.Block).Kind != doctree.Heading3 {
		t.Errorf("expected heading-3, got %s", tree[1].(*doctree.Block).Kind)
	}
}

func TestImportMarkdown_Lists(t *testing.T) {
	tree := ImportMarkdown("- alpha\n- beta\n\n1. first\n2. second")
	if len(tree) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(tree))
	}
	ul := tree[0].(*doctree.Block)
	if ul.Kind != doctree.BulletedList || len(ul.Children) != 2 {
		t.Fatalf("unexpected bulleted list: kind=%s items=%d", ul.Kind, len(ul.Children))
	}
	if ul.Children[0].(*doctree.Block).Kind != doctree.ListItem {
		t.Error("expected list-item children")
	}
	ol := tree[1].(*doctree.Block)
	if ol.Kind != doctree.NumberedList || len(ol.Children) != 2 {
		t.Fatalf("unexpected numbered list: kind=%s items=%d", ol.Kind, len(ol.Children))
	}
}

func TestImportMarkdown_Strikethrough(t *testing.T) {
	tree := ImportMarkdown("~~gone~~")
	leaf := leafAt(t, tree, 0, 0)
	if leaf.Text != "gone" || !leaf.Marks.Bool(doctree.MarkStrikethrough) {
		t.Errorf("unexpected leaf: %q marks=%v", leaf.Text, leaf.Marks)
	}
}

func TestImportMarkdown_CodeSpanAndBlock(t *testing.T) {
	tree := ImportMarkdown("run `go vet` first\n\n```\nfmt.Println()\n```")
	span := leafAt(t, tree, 0, 1)
	if span.Text != "go vet" || !span.Marks.Bool(doctree.MarkCode) {
		t.Errorf("unexpected code span: %q marks=%v", span.Text, span.Marks)
	}
	code := tree[1].(*doctree.Block)
	if code.Kind != doctree.CodeBlock {
		t.Fatalf("expected code-block, got %s", code.Kind)
	}
	if got := doctree.PlainText([]doctree.Node{code}); got != "fmt.Println()" {
		t.Errorf("unexpected code text: %q", got)
	}
}

func TestImportMarkdown_Link(t *testing.T) {
	tree := ImportMarkdown("see [adilet](https://adilet.zan.kz) portal")
	p := tree[0].(*doctree.Block)
	var link *doctree.Block
	for _, c := range p.Children {
		if b, ok := c.(*doctree.Block); ok && b.Kind == doctree.LinkBlock {
			link = b
		}
	}
	if link == nil {
		t.Fatal("no link block produced")
	}
	if link.URL != "https://adilet.zan.kz" {
		t.Errorf("unexpected url: %q", link.URL)
	}
	if got := doctree.PlainText([]doctree.Node{link}); got != "adilet" {
		t.Errorf("unexpected link text: %q", got)
	}
}

func TestImportMarkdown_Table(t *testing.T) {
	src := "| Товар | Цена |\n| --- | --- |\n| Услуга | 45000 |\n| Доставка | 5000 |"
	tree := ImportMarkdown(src)
	table := tree[0].(*doctree.Block)
	if table.Kind != doctree.Table {
		t.Fatalf("expected table, got %s", table.Kind)
	}
	head := table.Children[0].(*doctree.Block)
	if head.Kind != doctree.TableHead {
		t.Fatalf("expected table-head first, got %s", head.Kind)
	}
	body := table.Children[1].(*doctree.Block)
	if body.Kind != doctree.TableBody || len(body.Children) != 2 {
		t.Fatalf("unexpected body: kind=%s rows=%d", body.Kind, len(body.Children))
	}
	headerRow := head.Children[0].(*doctree.Block)
	cell := headerRow.Children[0].(*doctree.Block)
	if cell.Kind != doctree.TableCell {
		t.Fatalf("expected table-cell, got %s", cell.Kind)
	}
	if got := doctree.PlainText([]doctree.Node{cell}); got != "Товар" {
		t.Errorf("unexpected header cell: %q", got)
	}
	if err := doctree.Validate(tree); err != nil {
		t.Errorf("imported table violates invariants: %v", err)
	}
}

func TestImportMarkdown_Blockquote(t *testing.T) {
	tree := ImportMarkdown("> cited text")
	bq := tree[0].(*doctree.Block)
	if bq.Kind != doctree.Blockquote {
		t.Fatalf("expected blockquote, got %s", bq.Kind)
	}
	if got := doctree.PlainText(tree); got != "cited text" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestImportMarkdown_UnderlineExtension(t *testing.T) {
	tree := ImportMarkdown("plain ++важно++ tail")
	p := tree[0].(*doctree.Block)
	if len(p.Children) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(p.Children))
	}
	mid := leafAt(t, tree, 0, 1)
	if mid.Text != "важно" || !mid.Marks.Bool(doctree.MarkUnderline) {
		t.Errorf("unexpected underlined leaf: %q marks=%v", mid.Text, mid.Marks)
	}
}

func TestImportMarkdown_UnderlineInsideBold(t *testing.T) {
	tree := ImportMarkdown("**a ++b++ c**")
	p := tree[0].(*doctree.Block)
	if len(p.Children) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(p.Children))
	}
	mid := leafAt(t, tree, 0, 1)
	if !mid.Marks.Bool(doctree.MarkBold) || !mid.Marks.Bool(doctree.MarkUnderline) {
		t.Errorf("extension dropped enclosing marks: %v", mid.Marks)
	}
}

func TestImportMarkdown_BoxedField(t *testing.T) {
	tree := ImportMarkdown("Сумма: [[box:totalAmount]] тенге")
	p := tree[0].(*doctree.Block)
	if len(p.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(p.Children))
	}
	box, ok := p.Children[1].(*doctree.Block)
	if !ok || box.Kind != doctree.BoxedField {
		t.Fatalf("expected boxed-field in the middle, got %T", p.Children[1])
	}
	if box.FieldName != "totalAmount" {
		t.Errorf("unexpected field name: %q", box.FieldName)
	}
	if got := doctree.PlainText([]doctree.Node{box}); got != "{{totalAmount}}" {
		t.Errorf("unexpected box label: %q", got)
	}
}

func TestImportMarkdown_BoxedFieldNameWithSpaces(t *testing.T) {
	tree := ImportMarkdown("Итого: [[box:итоговая сумма]]")
	p := tree[0].(*doctree.Block)
	box, ok := p.Children[1].(*doctree.Block)
	if !ok || box.Kind != doctree.BoxedField {
		t.Fatalf("expected boxed-field, got %T", p.Children[1])
	}
	if box.FieldName != "итоговая сумма" {
		t.Errorf("unexpected field name: %q", box.FieldName)
	}
}

func TestImportMarkdown_Robustness(t *testing.T) {
	inputs := []string{
		"",
		"   \n\n  ",
		"++unclosed",
		"[[box:",
		"{{dangling",
		"<div><span>raw html</span></div>",
		strings.Repeat("- item\n  ", 30),
		strings.Repeat("> ", 50) + "deep quote",
	}
	for _, in := range inputs {
		tree := ImportMarkdown(in)
		if len(tree) == 0 {
			t.Errorf("input %q produced an empty tree", in)
			continue
		}
		if err := doctree.Validate(tree); err != nil {
			t.Errorf("input %q produced invalid tree: %v", in, err)
		}
	}
}

func TestImportMarkdown_UnmatchedSyntaxStaysLiteral(t *testing.T) {
	tree := ImportMarkdown("a ++ b and [[box: c")
	if got := doctree.PlainText(tree); got != "a ++ b and [[box: c" {
		t.Errorf("unmatched markers should stay literal, got %q", got)
	}
}

func TestImportMarkdown_SoftBreakBecomesNewline(t *testing.T) {
	tree := ImportMarkdown("first line\nsecond line")
	if len(tree) != 1 {
		t.Fatalf("soft break must not split the paragraph, got %d blocks", len(tree))
	}
	if got := doctree.PlainText(tree); got != "first line\nsecond line" {
		t.Errorf("unexpected text: %q", got)
	}
}
