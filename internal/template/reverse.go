package template

import (
	"github.com/zandoc/docengine/internal/doctree"
)

// Reconstruct folds an edited document tree back into a template. This
// is intentionally lossy: the tree's flattened text overwrites only the
// first section's content; every other section, variable, and table
// structure is carried over untouched. The product only needs to
// capture what the user typed into section one, not full round-trip
// fidelity.
func Reconstruct(tree []doctree.Node, original *Template) *Template {
	updated := original.Clone()
	if len(updated.Sections) > 0 {
		updated.Sections[0].Content = doctree.PlainText(tree)
	}
	return updated
}
