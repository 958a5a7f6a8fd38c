package importer

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/zandoc/docengine/internal/doctree"
)

// MarkdownImporter converts GFM Markdown into a document tree using
// goldmark. The AST pass handles the standard grammar; the registered
// inline extensions then expand ++underline++ and [[box:name]] spans
// at the string level.
type MarkdownImporter struct {
	md     goldmark.Markdown
	inline []InlineExtension
}

// NewMarkdownImporter builds an importer with the default inline
// extension set. Pass extensions to replace it.
func NewMarkdownImporter(exts ...InlineExtension) *MarkdownImporter {
	if len(exts) == 0 {
		exts = DefaultInlineExtensions()
	}
	return &MarkdownImporter{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		inline: exts,
	}
}

// ImportMarkdown converts a Markdown string with the default importer.
// It never fails: malformed or unsupported constructs degrade to plain
// text, and the result is always a valid non-empty tree.
func ImportMarkdown(src string) []doctree.Node {
	return NewMarkdownImporter().ImportString(src)
}

func (m *MarkdownImporter) Import(r io.Reader, filename string) ([]doctree.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return m.ImportString(string(src)), nil
}

// ImportString converts a Markdown string into a document tree.
func (m *MarkdownImporter) ImportString(src string) []doctree.Node {
	source := []byte(src)
	doc := m.md.Parser().Parse(text.NewReader(source))
	tree := m.convertBlocks(doc, source)
	if len(tree) == 0 {
		tree = doctree.NewEmptyTree()
	}
	doctree.Normalize(tree)
	return tree
}

func (m *MarkdownImporter) convertBlocks(parent ast.Node, src []byte) []doctree.Node {
	var out []doctree.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, m.convertBlock(n, src)...)
	}
	return out
}

func (m *MarkdownImporter) convertBlock(n ast.Node, src []byte) []doctree.Node {
	switch node := n.(type) {
	case *ast.Heading:
		return []doctree.Node{&doctree.Block{
			Kind:     doctree.HeadingKind(node.Level),
			Children: m.inlineContent(node, src),
		}}

	case *ast.Paragraph, *ast.TextBlock:
		return []doctree.Node{&doctree.Block{
			Kind:     doctree.Paragraph,
			Children: m.inlineContent(n, src),
		}}

	case *ast.List:
		kind := doctree.BulletedList
		if node.IsOrdered() {
			kind = doctree.NumberedList
		}
		var items []doctree.Node
		for li := node.FirstChild(); li != nil; li = li.NextSibling() {
			items = append(items, m.convertListItem(li, src))
		}
		if len(items) == 0 {
			return nil
		}
		return []doctree.Node{&doctree.Block{Kind: kind, Children: items}}

	case *ast.Blockquote:
		children := m.convertBlocks(node, src)
		if len(children) == 0 {
			children = []doctree.Node{&doctree.Text{}}
		}
		return []doctree.Node{&doctree.Block{Kind: doctree.Blockquote, Children: children}}

	case *ast.FencedCodeBlock:
		return []doctree.Node{codeBlock(linesText(node, src))}

	case *ast.CodeBlock:
		return []doctree.Node{codeBlock(linesText(node, src))}

	case *extast.Table:
		return []doctree.Node{m.convertTable(node, src)}

	case *ast.ThematicBreak:
		return nil

	case *ast.HTMLBlock:
		// No raw HTML passthrough: keep the text so nothing is lost,
		// but it renders escaped like any other literal.
		raw := strings.TrimSpace(linesText(node, src))
		if raw == "" {
			return nil
		}
		return []doctree.Node{doctree.NewBlock(doctree.Paragraph, doctree.NewText(raw, nil))}

	default:
		// Unknown block types degrade to their raw text, or to their
		// converted children when they have any. Never fail.
		if n.HasChildren() {
			if n.FirstChild().Type() == ast.TypeInline {
				return []doctree.Node{&doctree.Block{
					Kind:     doctree.Paragraph,
					Children: m.inlineContent(n, src),
				}}
			}
			return m.convertBlocks(n, src)
		}
		raw := strings.TrimSpace(linesText(n, src))
		if raw == "" {
			return nil
		}
		return []doctree.Node{doctree.NewBlock(doctree.Paragraph, doctree.NewText(raw, nil))}
	}
}

// convertListItem flattens the item's text blocks into inline leaves and
// keeps nested lists as child blocks, matching the flat list-item shape
// the editing layer expects.
func (m *MarkdownImporter) convertListItem(li ast.Node, src []byte) doctree.Node {
	var children []doctree.Node
	for c := li.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			children = append(children, m.inlineContent(c, src)...)
		default:
			children = append(children, m.convertBlock(c, src)...)
		}
	}
	if len(children) == 0 {
		children = []doctree.Node{&doctree.Text{}}
	}
	return &doctree.Block{Kind: doctree.ListItem, Children: children}
}

func (m *MarkdownImporter) convertTable(table *extast.Table, src []byte) doctree.Node {
	var head, body []doctree.Node
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []doctree.Node
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, &doctree.Block{
				Kind:     doctree.TableCell,
				Children: m.inlineContent(cell, src),
			})
		}
		if len(cells) == 0 {
			continue
		}
		tr := &doctree.Block{Kind: doctree.TableRow, Children: cells}
		if _, ok := row.(*extast.TableHeader); ok {
			head = append(head, tr)
		} else {
			body = append(body, tr)
		}
	}

	var children []doctree.Node
	if len(head) > 0 {
		children = append(children, &doctree.Block{Kind: doctree.TableHead, Children: head})
	}
	if len(body) > 0 {
		children = append(children, &doctree.Block{Kind: doctree.TableBody, Children: body})
	}
	if len(children) == 0 {
		children = []doctree.Node{&doctree.Text{}}
	}
	return &doctree.Block{Kind: doctree.Table, Children: children}
}

// inlineContent converts the inline children of a container and runs the
// inline extension pass over the result.
func (m *MarkdownImporter) inlineContent(parent ast.Node, src []byte) []doctree.Node {
	children := m.inlineNodes(parent, src, nil)
	children = applyInlineExtensions(children, m.inline)
	if len(children) == 0 {
		children = []doctree.Node{&doctree.Text{}}
	}
	return children
}

func (m *MarkdownImporter) inlineNodes(parent ast.Node, src []byte, marks doctree.Marks) []doctree.Node {
	var out []doctree.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, m.inlineNode(c, src, marks)...)
	}
	return out
}

// inlineNode projects one inline AST node to tree nodes. The marks
// accumulated from enclosing strong/emphasis/delete wrappers are applied
// to every leaf produced below, however deeply nested.
func (m *MarkdownImporter) inlineNode(n ast.Node, src []byte, marks doctree.Marks) []doctree.Node {
	switch node := n.(type) {
	case *ast.Text:
		out := []doctree.Node{doctree.NewText(string(node.Value(src)), marks)}
		if node.SoftLineBreak() || node.HardLineBreak() {
			out = append(out, doctree.NewText("\n", marks))
		}
		return out

	case *ast.String:
		return []doctree.Node{doctree.NewText(string(node.Value), marks)}

	case *ast.Emphasis:
		mark := doctree.MarkItalic
		if node.Level >= 2 {
			mark = doctree.MarkBold
		}
		return m.inlineNodes(node, src, marks.With(mark, true))

	case *extast.Strikethrough:
		return m.inlineNodes(node, src, marks.With(doctree.MarkStrikethrough, true))

	case *ast.CodeSpan:
		return m.inlineNodes(node, src, marks.With(doctree.MarkCode, true))

	case *ast.Link:
		url := string(node.Destination)
		children := m.inlineNodes(node, src, marks)
		if len(children) == 0 {
			children = []doctree.Node{doctree.NewText(url, marks)}
		}
		return []doctree.Node{&doctree.Block{Kind: doctree.LinkBlock, URL: url, Children: children}}

	case *ast.AutoLink:
		url := string(node.URL(src))
		label := string(node.Label(src))
		if label == "" {
			label = url
		}
		return []doctree.Node{&doctree.Block{
			Kind:     doctree.LinkBlock,
			URL:      url,
			Children: []doctree.Node{doctree.NewText(label, marks)},
		}}

	case *ast.Image:
		// No image node in the model; keep the alt text.
		return m.inlineNodes(node, src, marks)

	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			buf.Write(seg.Value(src))
		}
		if buf.Len() == 0 {
			return nil
		}
		return []doctree.Node{doctree.NewText(buf.String(), marks)}

	default:
		if n.HasChildren() {
			return m.inlineNodes(n, src, marks)
		}
		return nil
	}
}

func codeBlock(code string) doctree.Node {
	return &doctree.Block{
		Kind:     doctree.CodeBlock,
		Children: []doctree.Node{doctree.NewText(strings.TrimRight(code, "\n"), nil)},
	}
}

// linesText collects the raw source lines of a block node.
func linesText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return buf.String()
}
