package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zandoc/docengine/internal/doctree"
	"github.com/zandoc/docengine/internal/editor"
	"github.com/zandoc/docengine/internal/session"
)

// handleOpenDocument opens (or reuses) an editing session for the
// document and returns its current tree.
func (s *Server) handleOpenDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	sess, err := s.openSession(r, docID)
	if err != nil {
		s.persistenceError(w, err)
		return
	}
	writeTree(w, sess.Tree())
}

// handleGetDocument returns the document tree without keeping a
// session. Legacy plain-text content is converted on the way out.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	s.mu.Lock()
	sess, open := s.sessions[docID]
	s.mu.Unlock()
	if open {
		writeTree(w, sess.Tree())
		return
	}

	sess, err := session.Open(r.Context(), s.store, docID, session.Options{
		Scheduler:  s.sched,
		SaveDelay:  s.cfg.SaveDelay,
		MaxHistory: s.cfg.MaxHistory,
		Logger:     s.log,
	})
	if err != nil {
		s.persistenceError(w, err)
		return
	}
	writeTree(w, sess.Tree())
}

// handlePutDocument replaces the stored document with the given tree.
func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	tree, ok := readTree(w, r, s.cfg.MaxUploadBytes)
	if !ok {
		return
	}
	if err := doctree.Validate(tree); err != nil {
		jsonError(w, "invalid document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	content, err := doctree.MarshalTreeString(tree)
	if err != nil {
		jsonError(w, "encode document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.store.SaveContent(r.Context(), docID, content); err != nil {
		s.persistenceError(w, fmt.Errorf("%w: %w", session.ErrPersistenceUnavailable, err))
		return
	}

	// Drop any open session; later edits reload from this tree.
	s.mu.Lock()
	delete(s.sessions, docID)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"saved": true})
}

type commandRequest struct {
	Command   string        `json:"command"`
	Selection *rangePayload `json:"selection"`
	Mark      string        `json:"mark"`
	Value     any           `json:"value"`
	Block     string        `json:"block"`
	Align     string        `json:"align"`
	URL       string        `json:"url"`
}

type pointPayload struct {
	Path   []int `json:"path"`
	Offset int   `json:"offset"`
}

type rangePayload struct {
	Anchor pointPayload `json:"anchor"`
	Focus  pointPayload `json:"focus"`
}

func (p rangePayload) toRange() doctree.Range {
	return doctree.Range{
		Anchor: doctree.Point{Path: doctree.Path(p.Anchor.Path), Offset: p.Anchor.Offset},
		Focus:  doctree.Point{Path: doctree.Path(p.Focus.Path), Offset: p.Focus.Offset},
	}
}

// handleApplyCommand runs one editing command against the document's
// session and schedules a debounced autosave.
func (s *Server) handleApplyCommand(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	var req commandRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	cmd, err := buildCommand(req)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := s.openSession(r, docID)
	if err != nil {
		s.persistenceError(w, err)
		return
	}

	if req.Selection != nil {
		sess.Editor().Select(req.Selection.toRange())
	}
	sess.Apply(cmd)
	writeTree(w, sess.Tree())
}

func buildCommand(req commandRequest) (func(editor.State) editor.State, error) {
	switch req.Command {
	case "toggleMark":
		if req.Mark == "" {
			return nil, errors.New("toggleMark requires a mark")
		}
		value := req.Value
		if value == nil {
			value = true
		}
		return func(st editor.State) editor.State { return editor.ToggleMark(st, req.Mark, value) }, nil
	case "toggleBlock":
		if req.Block == "" {
			return nil, errors.New("toggleBlock requires a block kind")
		}
		return func(st editor.State) editor.State {
			return editor.ToggleBlock(st, doctree.BlockKind(req.Block))
		}, nil
	case "toggleAlign":
		return func(st editor.State) editor.State {
			return editor.ToggleAlign(st, doctree.Alignment(req.Align))
		}, nil
	case "toggleList":
		if req.Block == "" {
			return nil, errors.New("toggleList requires a block kind")
		}
		return func(st editor.State) editor.State {
			return editor.ToggleList(st, doctree.BlockKind(req.Block))
		}, nil
	case "indent":
		return editor.Indent, nil
	case "outdent":
		return editor.Outdent, nil
	case "wrapLink":
		if req.URL == "" {
			return nil, errors.New("wrapLink requires a url")
		}
		return func(st editor.State) editor.State { return editor.WrapLink(st, req.URL) }, nil
	case "unwrapLink":
		return editor.UnwrapLink, nil
	case "clearFormatting":
		return editor.ClearFormatting, nil
	case "splitListItem":
		return editor.SplitListItem, nil
	case "exitList":
		return editor.ExitList, nil
	}
	return nil, fmt.Errorf("unknown command: %s", req.Command)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.handleHistory(w, r, (*editor.Editor).Undo)
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	s.handleHistory(w, r, (*editor.Editor).Redo)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request, step func(*editor.Editor) bool) {
	docID := chi.URLParam(r, "docID")

	sess, err := s.openSession(r, docID)
	if err != nil {
		s.persistenceError(w, err)
		return
	}

	moved := step(sess.Editor())
	if moved {
		sess.ScheduleSave()
	}

	data, err := doctree.MarshalTree(sess.Tree())
	if err != nil {
		jsonError(w, "encode tree: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tree":  json.RawMessage(data),
		"moved": moved,
	})
}

// handleCloseDocument flushes the session and drops it from the
// registry. A failed flush keeps the session alive for retry.
func (s *Server) handleCloseDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")

	s.mu.Lock()
	sess, open := s.sessions[docID]
	s.mu.Unlock()
	if !open {
		writeJSON(w, http.StatusOK, map[string]any{"closed": true})
		return
	}

	if err := sess.Close(r.Context()); err != nil {
		s.persistenceError(w, err)
		return
	}
	s.mu.Lock()
	delete(s.sessions, docID)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"closed": true})
}

// openSession returns the open session for the document, loading one if
// needed.
func (s *Server) openSession(r *http.Request, docID string) (*session.Session, error) {
	s.mu.Lock()
	if sess, ok := s.sessions[docID]; ok {
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	sess, err := session.Open(r.Context(), s.store, docID, session.Options{
		Scheduler:  s.sched,
		SaveDelay:  s.cfg.SaveDelay,
		MaxHistory: s.cfg.MaxHistory,
		Logger:     s.log,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[docID]; ok {
		return existing, nil
	}
	s.sessions[docID] = sess
	return sess, nil
}

func (s *Server) persistenceError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrPersistenceUnavailable) {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}
