package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zandoc/docengine/internal/doctree"
)

// PlaceholderColor styles unfilled variable slots in the expanded tree.
const PlaceholderColor = "#0066cc"

var placeholderPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

// Engine expands templates into document trees. Expansion is
// deterministic and idempotent: identical template+data input always
// yields a structurally identical tree, which the debounced preview
// path relies on.
type Engine struct {
	currency         *CurrencyFormatter
	placeholderColor string
}

// NewEngine builds an engine. A nil formatter falls back to the
// kk-KZ / KZT default.
func NewEngine(cf *CurrencyFormatter) *Engine {
	if cf == nil {
		cf = MustCurrencyFormatter("kk-KZ", "KZT")
	}
	return &Engine{currency: cf, placeholderColor: PlaceholderColor}
}

// Expand projects the template's sections, in declaration order, into a
// document tree. Unfilled variables appear as their human-readable name
// styled as a placeholder; filled ones as plain literal text. Unbalanced
// {{ }} sequences stay literal.
func (e *Engine) Expand(tpl *Template, data *Data) []doctree.Node {
	var tree []doctree.Node
	for i := range tpl.Sections {
		tree = append(tree, e.expandSection(tpl, &tpl.Sections[i], data)...)
	}
	if len(tree) == 0 {
		tree = doctree.NewEmptyTree()
	}
	doctree.Normalize(tree)
	return tree
}

func (e *Engine) expandSection(tpl *Template, s *Section, data *Data) []doctree.Node {
	switch s.Kind {
	case SectionHeader:
		return []doctree.Node{e.expandHeader(tpl, s, data)}
	case SectionContacts:
		return e.expandContacts(tpl, s, data)
	case SectionTable:
		return e.expandTable(tpl, s, data)
	case SectionSignature:
		return []doctree.Node{e.expandParagraph(tpl, s, data, doctree.Marks{doctree.MarkBold: true})}
	default: // text, variables, anything unknown
		return []doctree.Node{e.expandText(tpl, s, data)}
	}
}

func (e *Engine) expandHeader(tpl *Template, s *Section, data *Data) doctree.Node {
	align := sectionAlign(s, doctree.AlignCenter)
	fontSize := s.Style["fontSize"]
	if fontSize == "" {
		fontSize = "24px"
	}
	base := doctree.Marks{doctree.MarkBold: true, doctree.MarkFontSize: fontSize}
	return &doctree.Block{
		Kind:     doctree.Heading1,
		Align:    align,
		Children: e.expandInline(tpl, s.Content, data, base),
	}
}

// expandContacts splits contact blocks into one paragraph per
// non-blank line.
func (e *Engine) expandContacts(tpl *Template, s *Section, data *Data) []doctree.Node {
	align := sectionAlign(s, doctree.AlignLeft)
	var out []doctree.Node
	for _, line := range strings.Split(s.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, &doctree.Block{
			Kind:     doctree.Paragraph,
			Align:    align,
			Children: e.expandInline(tpl, line, data, nil),
		})
	}
	if len(out) == 0 {
		out = append(out, doctree.NewBlock(doctree.Paragraph))
	}
	return out
}

// expandText keeps the whole section in a single paragraph; newlines
// become literal "\n" runs so downstream rendering sees one block.
func (e *Engine) expandText(tpl *Template, s *Section, data *Data) doctree.Node {
	align := sectionAlign(s, doctree.AlignNone)
	// Divider sections (a long underscore run) center regardless of style.
	if strings.Contains(s.Content, strings.Repeat("_", 20)) {
		align = doctree.AlignCenter
	}

	var base doctree.Marks
	if s.Style["fontWeight"] == "bold" {
		base = base.With(doctree.MarkBold, true)
	}
	if fs := s.Style["fontSize"]; fs != "" {
		base = base.With(doctree.MarkFontSize, fs)
	}

	var children []doctree.Node
	for i, line := range strings.Split(s.Content, "\n") {
		if i > 0 {
			children = append(children, doctree.NewText("\n", base))
		}
		children = append(children, e.expandInline(tpl, line, data, base)...)
	}
	return &doctree.Block{Kind: doctree.Paragraph, Align: align, Children: children}
}

func (e *Engine) expandParagraph(tpl *Template, s *Section, data *Data, base doctree.Marks) doctree.Node {
	return &doctree.Block{
		Kind:     doctree.Paragraph,
		Align:    sectionAlign(s, doctree.AlignLeft),
		Children: e.expandInline(tpl, s.Content, data, base),
	}
}

// expandTable builds a caption heading plus a real table block, merging
// the declared columns, any static rows, and per-section dynamic rows
// from data.
func (e *Engine) expandTable(tpl *Template, s *Section, data *Data) []doctree.Node {
	var out []doctree.Node
	if strings.TrimSpace(s.Content) != "" {
		out = append(out, &doctree.Block{
			Kind:     doctree.Heading3,
			Children: e.expandInline(tpl, s.Content, data, doctree.Marks{doctree.MarkBold: true}),
		})
	}
	if len(s.TableColumns) == 0 {
		return out
	}

	headerCells := make([]doctree.Node, 0, len(s.TableColumns))
	for _, col := range s.TableColumns {
		headerCells = append(headerCells, doctree.NewBlock(doctree.TableCell,
			doctree.NewText(col.Name, doctree.Marks{doctree.MarkBold: true})))
	}
	children := []doctree.Node{
		&doctree.Block{Kind: doctree.TableHead, Children: []doctree.Node{
			&doctree.Block{Kind: doctree.TableRow, Children: headerCells},
		}},
	}

	rows := s.TableRows
	if data != nil {
		if dyn, ok := data.TableData[s.ID]; ok && len(dyn) > 0 {
			rows = dyn
		}
	}
	if len(rows) > 0 {
		bodyRows := make([]doctree.Node, 0, len(rows))
		for _, row := range rows {
			cells := make([]doctree.Node, 0, len(s.TableColumns))
			for _, col := range s.TableColumns {
				cells = append(cells, &doctree.Block{
					Kind:     doctree.TableCell,
					Children: e.expandCell(tpl, col, row[col.ID], data),
				})
			}
			bodyRows = append(bodyRows, &doctree.Block{Kind: doctree.TableRow, Children: cells})
		}
		children = append(children, &doctree.Block{Kind: doctree.TableBody, Children: bodyRows})
	}

	out = append(out, &doctree.Block{Kind: doctree.Table, Children: children})
	return out
}

func (e *Engine) expandCell(tpl *Template, col TableColumn, value any, data *Data) []doctree.Node {
	if col.Type == VarCurrency {
		if n, ok := asNumber(value); ok {
			return []doctree.Node{doctree.NewText(e.currency.Format(n), nil)}
		}
	}
	// Cell text may itself contain {{placeholders}} (the totals row).
	return e.expandInline(tpl, asString(value), data, nil)
}

// expandInline splits content on {{...}} placeholders, alternating
// literal runs and substituted values. An unfilled placeholder emits
// the variable's declared name (or the raw id) in the placeholder
// style: distinct color plus underline.
func (e *Engine) expandInline(tpl *Template, content string, data *Data, base doctree.Marks) []doctree.Node {
	var out []doctree.Node
	emit := func(s string, marks doctree.Marks) {
		if s != "" {
			out = append(out, doctree.NewText(s, marks))
		}
	}

	locs := placeholderPattern.FindAllStringSubmatchIndex(content, -1)
	last := 0
	for _, loc := range locs {
		emit(content[last:loc[0]], base)
		id := strings.TrimSpace(content[loc[2]:loc[3]])
		if value, filled := lookupValue(data, id); filled {
			emit(e.displayValue(tpl, id, value), base)
		} else {
			name := id
			if decl, ok := tpl.VariableByID(id); ok {
				name = decl.Name
			}
			marks := base.With(doctree.MarkColor, e.placeholderColor).With(doctree.MarkUnderline, true)
			emit(name, marks)
		}
		last = loc[1]
	}
	emit(content[last:], base)

	if len(out) == 0 {
		out = []doctree.Node{doctree.NewText("", base)}
	}
	return out
}

// displayValue renders a filled value, applying locale currency
// formatting for currency-typed variables.
func (e *Engine) displayValue(tpl *Template, id string, value any) string {
	if decl, ok := tpl.VariableByID(id); ok && decl.Type == VarCurrency {
		if n, ok := asNumber(value); ok {
			return e.currency.Format(n)
		}
	}
	return asString(value)
}

// Fill substitutes filled variables into content and removes unfilled
// placeholders entirely. This is the final-document path; Expand keeps
// placeholder names visible for editing instead.
func (e *Engine) Fill(tpl *Template, content string, data *Data) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(m string) string {
		id := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(m, "{{"), "}}"))
		if value, filled := lookupValue(data, id); filled {
			return e.displayValue(tpl, id, value)
		}
		return ""
	})
}

// CellText renders one table cell value for final output: placeholders
// are filled (or removed when unfilled), and numeric values in currency
// columns get locale formatting.
func (e *Engine) CellText(tpl *Template, col TableColumn, value any, data *Data) string {
	s := e.Fill(tpl, asString(value), data)
	if col.Type == VarCurrency {
		if n, ok := asNumber(s); ok {
			return e.currency.Format(n)
		}
	}
	return s
}

func lookupValue(data *Data, id string) (any, bool) {
	if data == nil {
		return nil, false
	}
	v, ok := data.Variables[id]
	if !ok || asString(v) == "" {
		return nil, false
	}
	return v, true
}

func sectionAlign(s *Section, fallback doctree.Alignment) doctree.Alignment {
	switch s.Style["textAlign"] {
	case "left":
		return doctree.AlignLeft
	case "center":
		return doctree.AlignCenter
	case "right":
		return doctree.AlignRight
	case "justify":
		return doctree.AlignJustify
	}
	return fallback
}

// Validate checks required variables against the supplied data and
// returns one human-readable message per missing value.
func Validate(tpl *Template, data *Data) []string {
	var errs []string
	missing := func(v Variable) bool {
		_, filled := lookupValue(data, v.ID)
		return v.Required && !filled
	}
	for _, v := range tpl.Variables {
		if missing(v) {
			errs = append(errs, fmt.Sprintf("Обязательное поле %q не заполнено", v.Name))
		}
	}
	for _, s := range tpl.Sections {
		for _, v := range s.Variables {
			if missing(v) {
				errs = append(errs, fmt.Sprintf("Обязательное поле %q в секции %q не заполнено", v.Name, s.Content))
			}
		}
	}
	return errs
}

// TableTotals sums every numeric and currency column of a table
// section over the given rows.
func TableTotals(s *Section, rows []TableRow) map[string]float64 {
	totals := make(map[string]float64)
	for _, col := range s.TableColumns {
		if col.Type != VarCurrency && col.Type != VarNumber {
			continue
		}
		var sum float64
		for _, row := range rows {
			if n, ok := asNumber(row[col.ID]); ok {
				sum += n
			}
		}
		totals[col.ID] = sum
	}
	return totals
}

// VariablesInfo builds the explanatory block prepended to a fresh
// template document: which variables exist and whether they are
// required (red) or optional (green).
func VariablesInfo(tpl *Template) []doctree.Node {
	nodes := []doctree.Node{
		doctree.NewBlock(doctree.Blockquote,
			doctree.NewText("Шаблон: "+tpl.Name, doctree.Marks{doctree.MarkBold: true, doctree.MarkColor: "#1f2937"})),
		doctree.NewBlock(doctree.Blockquote,
			doctree.NewText("Доступные переменные (используйте формат {{variableName}}):", doctree.Marks{doctree.MarkColor: "#6b7280"})),
	}

	vars := tpl.AllVariables()
	if len(vars) > 0 {
		items := make([]doctree.Node, 0, len(vars))
		for _, v := range vars {
			color := "#059669"
			if v.Required {
				color = "#dc2626"
			}
			items = append(items, doctree.NewBlock(doctree.ListItem,
				doctree.NewText(fmt.Sprintf("{{%s}} - %s", v.ID, v.Name), doctree.Marks{doctree.MarkColor: color})))
		}
		nodes = append(nodes, &doctree.Block{Kind: doctree.BulletedList, Children: items})
	}

	nodes = append(nodes, doctree.NewBlock(doctree.Paragraph,
		doctree.NewText(strings.Repeat("─", 50), doctree.Marks{doctree.MarkColor: "#d1d5db"})))
	return nodes
}
