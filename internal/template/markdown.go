package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zandoc/docengine/internal/doctree"
)

// ToMarkdown renders the template as GFM Markdown with filled variables
// substituted and unfilled placeholders left as {{id}} literals. Used
// for export and as an interchange path back through the importer.
func (e *Engine) ToMarkdown(tpl *Template, data *Data) string {
	var parts []string
	for i := range tpl.Sections {
		if md := e.sectionToMarkdown(tpl, &tpl.Sections[i], data); strings.TrimSpace(md) != "" {
			parts = append(parts, md)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (e *Engine) sectionToMarkdown(tpl *Template, s *Section, data *Data) string {
	content := e.substitute(tpl, s.Content, data)

	switch s.Kind {
	case SectionHeader:
		return "# " + content

	case SectionContacts:
		var lines []string
		for _, line := range strings.Split(content, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, "- "+line)
			}
		}
		return strings.Join(lines, "\n")

	case SectionText:
		if strings.Contains(content, strings.Repeat("_", 20)) {
			return "---"
		}
		// Bold styled text with a large font reads as a subheading.
		if s.Style["fontWeight"] == "bold" && s.Style["fontSize"] != "" {
			if size, err := strconv.Atoi(strings.TrimSuffix(s.Style["fontSize"], "px")); err == nil {
				if size >= 20 {
					return "## " + content
				}
				if size >= 16 {
					return "### " + content
				}
			}
		}
		return content

	case SectionTable:
		return e.tableToMarkdown(tpl, s, data)

	case SectionSignature:
		return "**" + content + "**"

	default:
		return content
	}
}

func (e *Engine) tableToMarkdown(tpl *Template, s *Section, data *Data) string {
	if len(s.TableColumns) == 0 {
		return e.substitute(tpl, s.Content, data)
	}

	var md strings.Builder
	if caption := strings.TrimSpace(s.Content); caption != "" {
		md.WriteString("### " + e.substitute(tpl, caption, data) + "\n\n")
	}

	headers := make([]string, 0, len(s.TableColumns))
	seps := make([]string, 0, len(s.TableColumns))
	for _, col := range s.TableColumns {
		headers = append(headers, col.Name)
		seps = append(seps, "---")
	}
	md.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	md.WriteString("| " + strings.Join(seps, " | ") + " |\n")

	rows := s.TableRows
	if data != nil {
		if dyn, ok := data.TableData[s.ID]; ok && len(dyn) > 0 {
			rows = dyn
		}
	}
	for _, row := range rows {
		cells := make([]string, 0, len(s.TableColumns))
		for _, col := range s.TableColumns {
			value := row[col.ID]
			if col.Type == VarCurrency {
				if n, ok := asNumber(value); ok {
					cells = append(cells, e.currency.Format(n))
					continue
				}
			}
			cells = append(cells, e.substitute(tpl, asString(value), data))
		}
		md.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return strings.TrimRight(md.String(), "\n")
}

// substitute replaces filled {{id}} placeholders with their display
// value and leaves unfilled ones in place.
func (e *Engine) substitute(tpl *Template, content string, data *Data) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(m string) string {
		id := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(m, "{{"), "}}"))
		if value, filled := lookupValue(data, id); filled {
			return e.displayValue(tpl, id, value)
		}
		return m
	})
}

// TreeToMarkdown exports an edited document tree as Markdown using the
// same syntax the importer reads back: **bold**, *italic*,
// ++underline++, ~~strikethrough~~, [[box:name]], pipe tables.
func TreeToMarkdown(tree []doctree.Node) string {
	parts := make([]string, 0, len(tree))
	for _, n := range tree {
		parts = append(parts, blockToMarkdown(n))
	}
	return strings.Join(parts, "\n\n")
}

func blockToMarkdown(n doctree.Node) string {
	b, ok := n.(*doctree.Block)
	if !ok {
		if t, ok := n.(*doctree.Text); ok {
			return leafMarkdown(t)
		}
		return ""
	}

	switch {
	case b.Kind == doctree.Paragraph:
		return inlineMarkdown(b.Children)

	case doctree.IsHeading(b.Kind):
		return strings.Repeat("#", doctree.HeadingDepth(b.Kind)) + " " + inlineMarkdown(b.Children)

	case b.Kind == doctree.BulletedList:
		var lines []string
		for _, item := range b.Children {
			lines = append(lines, "- "+blockToMarkdown(item))
		}
		return strings.Join(lines, "\n")

	case b.Kind == doctree.NumberedList:
		var lines []string
		for i, item := range b.Children {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, blockToMarkdown(item)))
		}
		return strings.Join(lines, "\n")

	case b.Kind == doctree.ListItem:
		return inlineMarkdown(b.Children)

	case b.Kind == doctree.Table:
		return tableBlockToMarkdown(b)

	case b.Kind == doctree.Blockquote:
		var lines []string
		for _, line := range strings.Split(inlineMarkdown(b.Children), "\n") {
			lines = append(lines, "> "+line)
		}
		return strings.Join(lines, "\n")

	case b.Kind == doctree.CodeBlock:
		return "```\n" + doctree.PlainText([]doctree.Node{b}) + "\n```"

	case b.Kind == doctree.LinkBlock:
		return fmt.Sprintf("[%s](%s)", inlineMarkdown(b.Children), b.URL)

	case b.Kind == doctree.BoxedField:
		return fmt.Sprintf("[[box:%s]]", b.FieldName)

	default:
		return inlineMarkdown(b.Children)
	}
}

func tableBlockToMarkdown(table *doctree.Block) string {
	var lines []string
	sawHeader := false
	appendRow := func(row *doctree.Block) {
		cells := make([]string, 0, len(row.Children))
		for _, c := range row.Children {
			if cell, ok := c.(*doctree.Block); ok {
				cells = append(cells, inlineMarkdown(cell.Children))
			}
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
		if !sawHeader {
			seps := make([]string, len(cells))
			for i := range seps {
				seps[i] = "---"
			}
			lines = append(lines, "| "+strings.Join(seps, " | ")+" |")
			sawHeader = true
		}
	}
	var walk func(n doctree.Node)
	walk = func(n doctree.Node) {
		b, ok := n.(*doctree.Block)
		if !ok {
			return
		}
		if b.Kind == doctree.TableRow {
			appendRow(b)
			return
		}
		for _, c := range b.Children {
			walk(c)
		}
	}
	walk(table)
	return strings.Join(lines, "\n")
}

func inlineMarkdown(nodes []doctree.Node) string {
	var buf strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case *doctree.Text:
			buf.WriteString(leafMarkdown(v))
		case *doctree.Block:
			buf.WriteString(blockToMarkdown(v))
		}
	}
	return buf.String()
}

func leafMarkdown(t *doctree.Text) string {
	s := t.Text
	if s == "" {
		return s
	}
	if t.Marks.Bool(doctree.MarkCode) {
		s = "`" + s + "`"
	}
	if t.Marks.Bool(doctree.MarkBold) {
		s = "**" + s + "**"
	}
	if t.Marks.Bool(doctree.MarkItalic) {
		s = "*" + s + "*"
	}
	if t.Marks.Bool(doctree.MarkUnderline) {
		s = "++" + s + "++"
	}
	if t.Marks.Bool(doctree.MarkStrikethrough) {
		s = "~~" + s + "~~"
	}
	return s
}
