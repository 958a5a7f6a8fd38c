package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zandoc/docengine/internal/render"
	"github.com/zandoc/docengine/internal/template"
)

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"templates": template.BuiltinTemplates(),
	})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.lookupTemplate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// handleExpandTemplate produces the editable preview tree: filled
// variables substituted, unfilled ones shown as styled placeholder
// names.
func (s *Server) handleExpandTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.lookupTemplate(w, r)
	if !ok {
		return
	}
	data, ok := s.readTemplateData(w, r)
	if !ok {
		return
	}
	writeTree(w, s.engine.Expand(tpl, data))
}

// handleRenderTemplate produces final-document output: unfilled
// placeholders are dropped. Format is html, text or markdown.
func (s *Server) handleRenderTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.lookupTemplate(w, r)
	if !ok {
		return
	}

	var req struct {
		Data   template.Data `json:"data"`
		Format string        `json:"format"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	switch req.Format {
	case "", "html":
		writeJSON(w, http.StatusOK, map[string]any{
			"html": render.TemplateHTML(s.engine, tpl, &req.Data),
		})
	case "text":
		writeJSON(w, http.StatusOK, map[string]any{
			"text": render.TemplatePlainText(s.engine, tpl, &req.Data),
		})
	case "markdown":
		writeJSON(w, http.StatusOK, map[string]any{
			"markdown": s.engine.ToMarkdown(tpl, &req.Data),
		})
	default:
		jsonError(w, "unknown format: "+req.Format, http.StatusBadRequest)
	}
}

func (s *Server) handleValidateTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.lookupTemplate(w, r)
	if !ok {
		return
	}
	data, ok := s.readTemplateData(w, r)
	if !ok {
		return
	}
	problems := template.Validate(tpl, data)
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":  len(problems) == 0,
		"errors": problems,
	})
}

// handleReconstructTemplate maps an edited tree back onto its source
// template. The mapping is deliberately lossy: edited content collapses
// into the first section.
func (s *Server) handleReconstructTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.lookupTemplate(w, r)
	if !ok {
		return
	}
	tree, ok := readTree(w, r, s.cfg.MaxUploadBytes)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, template.Reconstruct(tree, tpl))
}

func (s *Server) lookupTemplate(w http.ResponseWriter, r *http.Request) (*template.Template, bool) {
	id := chi.URLParam(r, "templateID")
	tpl, ok := template.BuiltinByID(id)
	if !ok {
		jsonError(w, "template not found: "+id, http.StatusNotFound)
		return nil, false
	}
	return tpl, true
}

func (s *Server) readTemplateData(w http.ResponseWriter, r *http.Request) (*template.Data, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req struct {
		Data template.Data `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &req.Data, true
}
