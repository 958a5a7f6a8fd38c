package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/zandoc/docengine/internal/doctree"
	"github.com/zandoc/docengine/internal/template"
)

// HTML renders a document tree to an HTML string. Every literal text
// run is escaped; only the structural markup generated here is trusted.
// Downstream consumers inject the output as raw HTML, so the escaping
// contract is load-bearing.
func HTML(tree []doctree.Node) string {
	var buf strings.Builder
	for _, n := range tree {
		renderNode(&buf, n, false)
	}
	return buf.String()
}

func renderNode(buf *strings.Builder, n doctree.Node, inHead bool) {
	switch v := n.(type) {
	case *doctree.Text:
		buf.WriteString(renderLeaf(v))
	case *doctree.Block:
		renderBlock(buf, v, inHead)
	}
}

func renderBlock(buf *strings.Builder, b *doctree.Block, inHead bool) {
	tag, attrs := blockTag(b, inHead)
	if style := blockStyle(b); style != "" {
		attrs += ` style="` + html.EscapeString(style) + `"`
	}

	buf.WriteString("<" + tag + attrs + ">")
	if b.Kind == doctree.CodeBlock {
		buf.WriteString("<code>")
	}
	childHead := inHead || b.Kind == doctree.TableHead
	for _, c := range b.Children {
		renderNode(buf, c, childHead)
	}
	if b.Kind == doctree.CodeBlock {
		buf.WriteString("</code>")
	}
	buf.WriteString("</" + tag + ">")
}

// blockTag maps a block kind to its HTML element. Cells under a
// table-head render as th.
func blockTag(b *doctree.Block, inHead bool) (tag, attrs string) {
	switch b.Kind {
	case doctree.Paragraph:
		return "p", ""
	case doctree.BulletedList:
		return "ul", ""
	case doctree.NumberedList:
		return "ol", ""
	case doctree.ListItem:
		return "li", ""
	case doctree.Blockquote:
		return "blockquote", ""
	case doctree.CodeBlock:
		return "pre", ""
	case doctree.LinkBlock:
		return "a", fmt.Sprintf(" href=%q", html.EscapeString(b.URL))
	case doctree.Table:
		return "table", ""
	case doctree.TableHead:
		return "thead", ""
	case doctree.TableBody:
		return "tbody", ""
	case doctree.TableRow:
		return "tr", ""
	case doctree.TableCell:
		if inHead {
			return "th", ""
		}
		return "td", ""
	case doctree.BoxedField:
		return "span", fmt.Sprintf(" class=\"boxed-field\" data-field=%q", html.EscapeString(b.FieldName))
	}
	if doctree.IsHeading(b.Kind) {
		return fmt.Sprintf("h%d", doctree.HeadingDepth(b.Kind)), ""
	}
	return "div", ""
}

func blockStyle(b *doctree.Block) string {
	var parts []string
	if b.Align != doctree.AlignNone {
		parts = append(parts, "text-align: "+string(b.Align))
	}
	if b.Kind == doctree.ListItem && b.Indent > 0 {
		parts = append(parts, fmt.Sprintf("margin-left: %dpx", b.Indent*24))
	}
	return strings.Join(parts, "; ")
}

// renderLeaf escapes the text and nests inline elements for each mark.
// Valued marks (color, fonts) collapse into a single styled span.
func renderLeaf(t *doctree.Text) string {
	s := html.EscapeString(t.Text)
	s = strings.ReplaceAll(s, "\n", "<br>")

	if t.Marks.Bool(doctree.MarkCode) {
		s = "<code>" + s + "</code>"
	}
	if t.Marks.Bool(doctree.MarkBold) {
		s = "<strong>" + s + "</strong>"
	}
	if t.Marks.Bool(doctree.MarkItalic) {
		s = "<em>" + s + "</em>"
	}
	if t.Marks.Bool(doctree.MarkUnderline) {
		s = "<u>" + s + "</u>"
	}
	if t.Marks.Bool(doctree.MarkStrikethrough) {
		s = "<s>" + s + "</s>"
	}
	if t.Marks.Bool(doctree.MarkSuperscript) {
		s = "<sup>" + s + "</sup>"
	}
	if t.Marks.Bool(doctree.MarkSubscript) {
		s = "<sub>" + s + "</sub>"
	}

	// leafStyle already escapes its values.
	if style := leafStyle(t.Marks); style != "" {
		s = `<span style="` + style + `">` + s + `</span>`
	}
	return s
}

var leafStyleProps = []struct {
	mark string
	css  string
}{
	{doctree.MarkColor, "color"},
	{doctree.MarkBackgroundColor, "background-color"},
	{doctree.MarkFontSize, "font-size"},
	{doctree.MarkFontFamily, "font-family"},
}

func leafStyle(m doctree.Marks) string {
	var parts []string
	for _, p := range leafStyleProps {
		if v := m.String(p.mark); v != "" {
			parts = append(parts, p.css+": "+html.EscapeString(v))
		}
	}
	return strings.Join(parts, "; ")
}

// TemplateHTML renders a template with its data straight to HTML,
// bypassing the tree. Unfilled placeholders are removed: this is the
// final-document output, not the editing preview.
func TemplateHTML(e *template.Engine, tpl *template.Template, data *template.Data) string {
	var buf strings.Builder
	buf.WriteString(`<div class="document-template">`)
	for i := range tpl.Sections {
		renderTemplateSection(&buf, e, tpl, &tpl.Sections[i], data)
	}
	buf.WriteString("</div>")
	return buf.String()
}

func renderTemplateSection(buf *strings.Builder, e *template.Engine, tpl *template.Template, s *template.Section, data *template.Data) {
	content := e.Fill(tpl, s.Content, data)
	cssClass := "section-" + string(s.Kind)
	styleAttr := styleAttribute(s.Style)

	switch s.Kind {
	case template.SectionHeader:
		fmt.Fprintf(buf, `<h1 class=%q%s>%s</h1>`, cssClass, styleAttr, html.EscapeString(content))

	case template.SectionContacts:
		fmt.Fprintf(buf, `<div class=%q%s>`, cssClass, styleAttr)
		for _, line := range strings.Split(content, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				fmt.Fprintf(buf, `<div class="contact-line">%s</div>`, html.EscapeString(line))
			}
		}
		buf.WriteString("</div>")

	case template.SectionTable:
		fmt.Fprintf(buf, `<div class=%q%s>`, cssClass, styleAttr)
		if len(s.TableColumns) > 0 {
			renderTemplateTable(buf, e, tpl, s, data)
		}
		buf.WriteString("</div>")

	case template.SectionSignature:
		fmt.Fprintf(buf, `<div class="%s signature"%s>%s</div>`, cssClass, styleAttr, html.EscapeString(content))

	default:
		body := strings.ReplaceAll(html.EscapeString(content), "\n", "<br>")
		fmt.Fprintf(buf, `<div class=%q%s>%s</div>`, cssClass, styleAttr, body)
	}
}

func renderTemplateTable(buf *strings.Builder, e *template.Engine, tpl *template.Template, s *template.Section, data *template.Data) {
	buf.WriteString(`<table class="document-table"><thead><tr>`)
	for _, col := range s.TableColumns {
		fmt.Fprintf(buf, `<th class="table-header">%s</th>`, html.EscapeString(col.Name))
	}
	buf.WriteString("</tr></thead><tbody>")

	rows := s.TableRows
	if data != nil {
		if dyn, ok := data.TableData[s.ID]; ok && len(dyn) > 0 {
			rows = dyn
		}
	}
	for _, row := range rows {
		buf.WriteString("<tr>")
		for _, col := range s.TableColumns {
			cell := e.CellText(tpl, col, row[col.ID], data)
			fmt.Fprintf(buf, `<td class="table-cell cell-%s">%s</td>`, col.Type, html.EscapeString(cell))
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</tbody></table>")
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// styleAttribute turns a camelCase style map into a style="..."
// attribute with kebab-case property names, in a stable order.
func styleAttribute(style template.TextStyle) string {
	if len(style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		prop := strings.ToLower(camelBoundary.ReplaceAllString(k, "$1-$2"))
		parts = append(parts, prop+": "+style[k])
	}
	return ` style="` + html.EscapeString(strings.Join(parts, "; ")) + `"`
}
