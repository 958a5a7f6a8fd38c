package render

import (
	"strings"
	"unicode/utf8"

	"github.com/zandoc/docengine/internal/doctree"
	"github.com/zandoc/docengine/internal/template"
)

// charsPerPage is the constant-size page estimation heuristic: the
// serialized tree length divided by this, rounded up. A display hint
// only; real pagination would need text measurement.
const charsPerPage = 1800

// PlainText flattens a tree for clipboard export.
func PlainText(tree []doctree.Node) string {
	return doctree.PlainText(tree)
}

// PageCount estimates how many printed pages the document occupies.
// Never less than 1.
func PageCount(tree []doctree.Node) int {
	data, err := doctree.MarshalTree(tree)
	if err != nil {
		return 1
	}
	n := utf8.RuneCount(data)
	pages := (n + charsPerPage - 1) / charsPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// TemplatePlainText renders a template with its data as plain text:
// filled values substituted, unfilled placeholders removed, tables in
// pipe layout.
func TemplatePlainText(e *template.Engine, tpl *template.Template, data *template.Data) string {
	var parts []string
	for i := range tpl.Sections {
		s := &tpl.Sections[i]
		text := e.Fill(tpl, s.Content, data)
		if s.Kind == template.SectionTable && len(s.TableColumns) > 0 {
			text += "\n" + templateTableText(e, tpl, s, data)
		}
		parts = append(parts, text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

func templateTableText(e *template.Engine, tpl *template.Template, s *template.Section, data *template.Data) string {
	var buf strings.Builder

	headers := make([]string, 0, len(s.TableColumns))
	seps := make([]string, 0, len(s.TableColumns))
	for _, col := range s.TableColumns {
		headers = append(headers, col.Name)
		seps = append(seps, "---")
	}
	buf.WriteString(strings.Join(headers, " | ") + "\n")
	buf.WriteString(strings.Join(seps, " | ") + "\n")

	rows := s.TableRows
	if data != nil {
		if dyn, ok := data.TableData[s.ID]; ok && len(dyn) > 0 {
			rows = dyn
		}
	}
	for _, row := range rows {
		cells := make([]string, 0, len(s.TableColumns))
		for _, col := range s.TableColumns {
			cells = append(cells, e.CellText(tpl, col, row[col.ID], data))
		}
		buf.WriteString(strings.Join(cells, " | ") + "\n")
	}
	return strings.TrimRight(buf.String(), "\n")
}
