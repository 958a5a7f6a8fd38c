package template

import (
	"strconv"
	"strings"
)

// VariableType classifies a template variable for input widgets and
// formatting.
type VariableType string

const (
	VarText     VariableType = "text"
	VarNumber   VariableType = "number"
	VarDate     VariableType = "date"
	VarSelect   VariableType = "select"
	VarEmail    VariableType = "email"
	VarPhone    VariableType = "phone"
	VarCurrency VariableType = "currency"
)

// Variable is a named fill-in slot referenced from section content as
// {{id}}.
type Variable struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         VariableType `json:"type"`
	Required     bool         `json:"required"`
	DefaultValue string       `json:"defaultValue,omitempty"`
	Options      []string     `json:"options,omitempty"`
	Placeholder  string       `json:"placeholder,omitempty"`
	Description  string       `json:"description,omitempty"`
}

// TableColumn describes one column of a table section.
type TableColumn struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     VariableType `json:"type"`
	Editable bool         `json:"editable,omitempty"`
	Formula  string       `json:"formula,omitempty"`
}

// TableRow is a loose record keyed by column id. The "id" key names the
// row itself.
type TableRow map[string]any

// TextStyle is a camelCase CSS property set attached to a section.
type TextStyle map[string]string

// SectionKind selects how a section's content is projected into the
// document tree.
type SectionKind string

const (
	SectionHeader    SectionKind = "header"
	SectionText      SectionKind = "text"
	SectionTable     SectionKind = "table"
	SectionSignature SectionKind = "signature"
	SectionVariables SectionKind = "variables"
	SectionContacts  SectionKind = "contacts"
)

// Section is one declaration-ordered unit of a template.
type Section struct {
	ID           string        `json:"id"`
	Kind         SectionKind   `json:"type"`
	Content      string        `json:"content"`
	Variables    []Variable    `json:"variables,omitempty"`
	TableColumns []TableColumn `json:"tableColumns,omitempty"`
	TableRows    []TableRow    `json:"tableRows,omitempty"`
	Style        TextStyle     `json:"style,omitempty"`
}

// Template is a document template: ordered sections plus the global
// variable declarations. Templates are read-only shared data; expansion
// never mutates them.
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Sections    []Section  `json:"sections"`
	Variables   []Variable `json:"variables"`
}

// Data carries the user-entered values for one filled template. Raw
// values are stored as entered; locale formatting happens on expansion.
type Data struct {
	TemplateID string              `json:"templateId"`
	Variables  map[string]any      `json:"variables"`
	TableData  map[string][]TableRow `json:"tableData,omitempty"`
}

// AllVariables returns global variables followed by every section
// variable, in declaration order.
func (t *Template) AllVariables() []Variable {
	out := make([]Variable, 0, len(t.Variables))
	out = append(out, t.Variables...)
	for _, s := range t.Sections {
		out = append(out, s.Variables...)
	}
	return out
}

// VariableByID finds a variable declaration, section-local ones
// included.
func (t *Template) VariableByID(id string) (Variable, bool) {
	for _, v := range t.Variables {
		if v.ID == id {
			return v, true
		}
	}
	for _, s := range t.Sections {
		for _, v := range s.Variables {
			if v.ID == id {
				return v, true
			}
		}
	}
	return Variable{}, false
}

// Clone deep-copies the template so reverse conversion can rewrite
// sections without touching the shared original.
func (t *Template) Clone() *Template {
	nt := *t
	nt.Sections = make([]Section, len(t.Sections))
	for i, s := range t.Sections {
		ns := s
		ns.Variables = append([]Variable(nil), s.Variables...)
		ns.TableColumns = append([]TableColumn(nil), s.TableColumns...)
		ns.TableRows = make([]TableRow, len(s.TableRows))
		for j, r := range s.TableRows {
			nr := make(TableRow, len(r))
			for k, v := range r {
				nr[k] = v
			}
			ns.TableRows[j] = nr
		}
		if s.Style != nil {
			ns.Style = make(TextStyle, len(s.Style))
			for k, v := range s.Style {
				ns.Style[k] = v
			}
		}
		nt.Sections[i] = ns
	}
	nt.Variables = append([]Variable(nil), t.Variables...)
	return &nt
}

// asNumber coerces the loose value types that survive JSON decoding.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// asString renders a loose value for display. Numbers drop a trailing
// ".0" so integers read naturally.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}
