package api

import (
	"net/http"

	"github.com/zandoc/docengine/internal/render"
	"github.com/zandoc/docengine/internal/template"
)

// handleRenderHTML renders a document tree to an HTML string.
func (s *Server) handleRenderHTML(w http.ResponseWriter, r *http.Request) {
	tree, ok := readTree(w, r, s.cfg.MaxUploadBytes)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"html":      render.HTML(tree),
		"pageCount": render.PageCount(tree),
	})
}

// handleRenderText flattens a document tree to plain text.
func (s *Server) handleRenderText(w http.ResponseWriter, r *http.Request) {
	tree, ok := readTree(w, r, s.cfg.MaxUploadBytes)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"text": render.PlainText(tree),
	})
}

// handleRenderMarkdown serializes a document tree back to markdown.
// The conversion is lossy for styling marks markdown cannot express.
func (s *Server) handleRenderMarkdown(w http.ResponseWriter, r *http.Request) {
	tree, ok := readTree(w, r, s.cfg.MaxUploadBytes)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"markdown": template.TreeToMarkdown(tree),
	})
}
