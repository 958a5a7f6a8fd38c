package importer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/zandoc/docengine/internal/doctree"
)

// HTMLImporter converts HTML into a document tree. Structural tags map
// to block kinds, inline style tags become marks, and everything
// unrecognized degrades to its text content.
type HTMLImporter struct{}

func (p *HTMLImporter) Import(r io.Reader, filename string) ([]doctree.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := findHTMLBody(doc)
	if root == nil {
		root = doc
	}
	tree := convertHTMLBlocks(root)
	if len(tree) == 0 {
		if t := strings.TrimSpace(htmlText(root)); t != "" {
			tree = []doctree.Node{doctree.NewBlock(doctree.Paragraph, doctree.NewText(t, nil))}
		} else {
			tree = doctree.NewEmptyTree()
		}
	}
	doctree.Normalize(tree)
	return tree, nil
}

func convertHTMLBlocks(parent *html.Node) []doctree.Node {
	var out []doctree.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, convertHTMLBlock(c)...)
	}
	return out
}

func convertHTMLBlock(n *html.Node) []doctree.Node {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			return []doctree.Node{doctree.NewBlock(doctree.Paragraph, doctree.NewText(t, nil))}
		}
		return nil
	}
	if n.Type != html.ElementNode {
		return convertHTMLBlocks(n)
	}

	switch n.Data {
	case "script", "style", "head", "nav", "noscript":
		return nil
	case "h1", "h2", "h3", "h4", "h5", "h6":
		depth := int(n.Data[1] - '0')
		return []doctree.Node{&doctree.Block{
			Kind:     doctree.HeadingKind(depth),
			Children: ensureInline(convertHTMLInline(n, nil)),
		}}
	case "p":
		return []doctree.Node{&doctree.Block{
			Kind:     doctree.Paragraph,
			Children: ensureInline(convertHTMLInline(n, nil)),
		}}
	case "ul", "ol":
		kind := doctree.BulletedList
		if n.Data == "ol" {
			kind = doctree.NumberedList
		}
		var items []doctree.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				items = append(items, &doctree.Block{
					Kind:     doctree.ListItem,
					Children: ensureInline(convertHTMLInline(c, nil)),
				})
			}
		}
		if len(items) == 0 {
			return nil
		}
		return []doctree.Node{&doctree.Block{Kind: kind, Children: items}}
	case "blockquote":
		children := convertHTMLBlocks(n)
		if len(children) == 0 {
			children = ensureInline(convertHTMLInline(n, nil))
		}
		return []doctree.Node{&doctree.Block{Kind: doctree.Blockquote, Children: children}}
	case "pre":
		return []doctree.Node{codeBlock(htmlText(n))}
	case "table":
		return []doctree.Node{convertHTMLTable(n)}
	case "body", "html", "div", "main", "section", "article":
		return convertHTMLBlocks(n)
	default:
		if t := strings.TrimSpace(htmlText(n)); t != "" {
			return []doctree.Node{doctree.NewBlock(doctree.Paragraph, doctree.NewText(t, nil))}
		}
		return nil
	}
}

func convertHTMLTable(table *html.Node) doctree.Node {
	var children []doctree.Node
	var looseRows []doctree.Node

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead":
				if rows := htmlTableRows(c); len(rows) > 0 {
					children = append(children, &doctree.Block{Kind: doctree.TableHead, Children: rows})
				}
			case "tbody", "tfoot":
				if rows := htmlTableRows(c); len(rows) > 0 {
					children = append(children, &doctree.Block{Kind: doctree.TableBody, Children: rows})
				}
			case "tr":
				if row := htmlTableRow(c); row != nil {
					looseRows = append(looseRows, row)
				}
			default:
				walk(c)
			}
		}
	}
	walk(table)

	children = append(children, looseRows...)
	if len(children) == 0 {
		children = []doctree.Node{&doctree.Text{}}
	}
	return &doctree.Block{Kind: doctree.Table, Children: children}
}

func htmlTableRows(group *html.Node) []doctree.Node {
	var rows []doctree.Node
	for c := group.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			if row := htmlTableRow(c); row != nil {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func htmlTableRow(tr *html.Node) doctree.Node {
	var cells []doctree.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, &doctree.Block{
				Kind:     doctree.TableCell,
				Children: ensureInline(convertHTMLInline(c, nil)),
			})
		}
	}
	if len(cells) == 0 {
		return nil
	}
	return &doctree.Block{Kind: doctree.TableRow, Children: cells}
}

// convertHTMLInline flattens inline content to leaves, accumulating
// marks from style tags on the way down.
func convertHTMLInline(parent *html.Node, marks doctree.Marks) []doctree.Node {
	var out []doctree.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if c.Data != "" {
				out = append(out, doctree.NewText(c.Data, marks))
			}
		case html.ElementNode:
			switch c.Data {
			case "b", "strong":
				out = append(out, convertHTMLInline(c, marks.With(doctree.MarkBold, true))...)
			case "i", "em":
				out = append(out, convertHTMLInline(c, marks.With(doctree.MarkItalic, true))...)
			case "u", "ins":
				out = append(out, convertHTMLInline(c, marks.With(doctree.MarkUnderline, true))...)
			case "s", "del", "strike":
				out = append(out, convertHTMLInline(c, marks.With(doctree.MarkStrikethrough, true))...)
			case "sup":
				out = append(out, convertHTMLInline(c, marks.With(doctree.MarkSuperscript, true))...)
			case "sub":
				out = append(out, convertHTMLInline(c, marks.With(doctree.MarkSubscript, true))...)
			case "code":
				out = append(out, convertHTMLInline(c, marks.With(doctree.MarkCode, true))...)
			case "a":
				url := htmlAttr(c, "href")
				children := ensureInline(convertHTMLInline(c, marks))
				if url == "" {
					out = append(out, children...)
					break
				}
				out = append(out, &doctree.Block{Kind: doctree.LinkBlock, URL: url, Children: children})
			case "br":
				out = append(out, doctree.NewText("\n", marks))
			case "script", "style":
				// dropped
			default:
				out = append(out, convertHTMLInline(c, marks)...)
			}
		}
	}
	return out
}

func ensureInline(nodes []doctree.Node) []doctree.Node {
	if len(nodes) == 0 {
		return []doctree.Node{&doctree.Text{}}
	}
	return nodes
}

func htmlAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func htmlText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func findHTMLBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findHTMLBody(c); b != nil {
			return b
		}
	}
	return nil
}
