package doctree

import (
	"encoding/json"
	"fmt"
)

// The wire shape matches the persisted editor content: blocks carry a
// "type" tag plus "children", leaves carry "text" plus their marks as
// sibling keys. The surrounding store treats the string as opaque.

// MarshalTree serializes a tree to its JSON wire form.
func MarshalTree(tree []Node) ([]byte, error) {
	raw := make([]any, len(tree))
	for i, n := range tree {
		raw[i] = nodeToWire(n)
	}
	return json.Marshal(raw)
}

// MarshalTreeString is MarshalTree returning a string, for callers that
// hand the result to a content store.
func MarshalTreeString(tree []Node) (string, error) {
	b, err := MarshalTree(tree)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nodeToWire(n Node) map[string]any {
	switch v := n.(type) {
	case *Text:
		m := map[string]any{"text": v.Text}
		for k, val := range v.Marks {
			m[k] = val
		}
		return m
	case *Block:
		m := map[string]any{"type": string(v.Kind)}
		if v.Align != AlignNone {
			m["align"] = string(v.Align)
		}
		if v.URL != "" {
			m["url"] = v.URL
		}
		if v.FieldName != "" {
			m["fieldName"] = v.FieldName
		}
		if v.Indent > 0 {
			m["indent"] = v.Indent
		}
		children := make([]any, len(v.Children))
		for i, c := range v.Children {
			children[i] = nodeToWire(c)
		}
		m["children"] = children
		return m
	}
	return nil
}

// UnmarshalTree parses the JSON wire form back into a tree. The result
// is normalized but not validated; callers needing the invariants call
// Validate themselves.
func UnmarshalTree(data []byte) ([]Node, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	tree := make([]Node, 0, len(raw))
	for _, m := range raw {
		n, err := nodeFromWire(m)
		if err != nil {
			return nil, err
		}
		tree = append(tree, n)
	}
	Normalize(tree)
	return tree, nil
}

func nodeFromWire(m map[string]any) (Node, error) {
	if _, isBlock := m["type"]; !isBlock {
		t := &Text{}
		for k, v := range m {
			if k == "text" {
				s, _ := v.(string)
				t.Text = s
				continue
			}
			if t.Marks == nil {
				t.Marks = Marks{}
			}
			t.Marks[k] = v
		}
		return t, nil
	}

	b := &Block{}
	for k, v := range m {
		switch k {
		case "type":
			s, _ := v.(string)
			b.Kind = BlockKind(s)
		case "align":
			s, _ := v.(string)
			b.Align = Alignment(s)
		case "url":
			b.URL, _ = v.(string)
		case "fieldName":
			b.FieldName, _ = v.(string)
		case "indent":
			if f, ok := v.(float64); ok {
				b.Indent = int(f)
			}
		case "children":
			items, ok := v.([]any)
			if !ok {
				return nil, fmt.Errorf("decode tree: children of %q is not an array", b.Kind)
			}
			for _, item := range items {
				cm, ok := item.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("decode tree: child of %q is not an object", b.Kind)
				}
				c, err := nodeFromWire(cm)
				if err != nil {
					return nil, err
				}
				b.Children = append(b.Children, c)
			}
		}
	}
	if b.Kind == "" {
		return nil, fmt.Errorf("decode tree: block without a type tag")
	}
	return b, nil
}
