package doctree

// Mark names. Boolean marks store true; valued marks store strings.
// The set is open: clear-formatting iterates whatever keys are present,
// so new marks need no code changes there.
const (
	MarkBold            = "bold"
	MarkItalic          = "italic"
	MarkUnderline       = "underline"
	MarkStrikethrough   = "strikethrough"
	MarkSuperscript     = "superscript"
	MarkSubscript       = "subscript"
	MarkCode            = "code"
	MarkColor           = "color"
	MarkBackgroundColor = "backgroundColor"
	MarkFontSize        = "fontSize"
	MarkFontFamily      = "fontFamily"
)

// Marks is the style attribute set of a Text leaf. Marks combine freely
// and commute; there is no inheritance between leaves.
type Marks map[string]any

// Bool reports whether a boolean mark is set.
func (m Marks) Bool(name string) bool {
	v, ok := m[name]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// String returns the value of a string-valued mark, or "".
func (m Marks) String(name string) string {
	v, ok := m[name]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Has reports whether the mark is present with any value.
func (m Marks) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// With returns a copy with the mark set. A nil receiver is allowed.
func (m Marks) With(name string, value any) Marks {
	nm := m.Clone()
	if nm == nil {
		nm = Marks{}
	}
	nm[name] = value
	return nm
}

// Without returns a copy with the mark removed. Returns nil when the
// result is empty so bare leaves stay bare.
func (m Marks) Without(name string) Marks {
	if !m.Has(name) {
		return m.Clone()
	}
	nm := m.Clone()
	delete(nm, name)
	if len(nm) == 0 {
		return nil
	}
	return nm
}

// Clone copies the mark set. Cloning nil yields nil.
func (m Marks) Clone() Marks {
	if m == nil {
		return nil
	}
	nm := make(Marks, len(m))
	for k, v := range m {
		nm[k] = v
	}
	return nm
}

// Equal compares two mark sets. Empty and nil compare equal.
func (m Marks) Equal(o Marks) bool {
	if len(m) != len(o) {
		return false
	}
	for k, v := range m {
		if ov, ok := o[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
