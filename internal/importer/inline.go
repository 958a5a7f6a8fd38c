package importer

import (
	"regexp"

	"github.com/zandoc/docengine/internal/doctree"
)

// InlineExtension is a string-level pattern applied to text leaves after
// the Markdown AST pass. The base grammar has no concept of these
// syntaxes, so they are expanded in a second pass over the produced
// leaves. Expand receives the submatch groups and the marks of the leaf
// the match was found in.
type InlineExtension struct {
	Name    string
	Pattern *regexp.Regexp
	Expand  func(groups []string, marks doctree.Marks) []doctree.Node
}

// UnderlineExtension handles ++text++, which standard Markdown lacks.
func UnderlineExtension() InlineExtension {
	return InlineExtension{
		Name:    "underline",
		Pattern: regexp.MustCompile(`\+\+(.+?)\+\+`),
		Expand: func(groups []string, marks doctree.Marks) []doctree.Node {
			return []doctree.Node{doctree.NewText(groups[1], marks.With(doctree.MarkUnderline, true))}
		},
	}
}

// BoxedFieldExtension handles [[box:name]], a named fill-in slot
// embedded in running text. Field names may contain spaces.
func BoxedFieldExtension() InlineExtension {
	return InlineExtension{
		Name:    "boxed-field",
		Pattern: regexp.MustCompile(`\[\[box:(.+?)\]\]`),
		Expand: func(groups []string, marks doctree.Marks) []doctree.Node {
			name := groups[1]
			return []doctree.Node{&doctree.Block{
				Kind:      doctree.BoxedField,
				FieldName: name,
				Children:  []doctree.Node{doctree.NewText("{{"+name+"}}", marks)},
			}}
		},
	}
}

// DefaultInlineExtensions returns the built-in extension set.
func DefaultInlineExtensions() []InlineExtension {
	return []InlineExtension{UnderlineExtension(), BoxedFieldExtension()}
}

// applyInlineExtensions rewrites matched spans in the given inline run.
// Extensions apply in order; each sees the output of the previous one.
// Inline blocks (links) are recursed into so ++..++ inside link text
// still works.
func applyInlineExtensions(nodes []doctree.Node, exts []InlineExtension) []doctree.Node {
	for _, ext := range exts {
		var out []doctree.Node
		for _, n := range nodes {
			switch v := n.(type) {
			case *doctree.Text:
				out = append(out, expandLeaf(v, ext)...)
			case *doctree.Block:
				if v.Kind == doctree.LinkBlock {
					v.Children = applyInlineExtensions(v.Children, []InlineExtension{ext})
				}
				out = append(out, v)
			default:
				out = append(out, n)
			}
		}
		nodes = out
	}
	return nodes
}

func expandLeaf(leaf *doctree.Text, ext InlineExtension) []doctree.Node {
	locs := ext.Pattern.FindAllStringSubmatchIndex(leaf.Text, -1)
	if len(locs) == 0 {
		return []doctree.Node{leaf}
	}
	var out []doctree.Node
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			out = append(out, doctree.NewText(leaf.Text[last:loc[0]], leaf.Marks))
		}
		groups := make([]string, 0, len(loc)/2)
		for i := 0; i < len(loc); i += 2 {
			if loc[i] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, leaf.Text[loc[i]:loc[i+1]])
		}
		out = append(out, ext.Expand(groups, leaf.Marks)...)
		last = loc[1]
	}
	if last < len(leaf.Text) {
		out = append(out, doctree.NewText(leaf.Text[last:], leaf.Marks))
	}
	return out
}
