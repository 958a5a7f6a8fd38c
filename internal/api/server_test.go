package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zandoc/docengine/internal/config"
	"github.com/zandoc/docengine/internal/docstore"
	"github.com/zandoc/docengine/internal/doctree"
	"github.com/zandoc/docengine/internal/template"
)

const testAPIKey = "test-key"

type memStore struct {
	mu       sync.Mutex
	contents map[string]string
}

func (s *memStore) LoadContent(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.contents[id]
	if !ok {
		return "", docstore.ErrNotFound
	}
	return content, nil
}

func (s *memStore) SaveContent(_ context.Context, id, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contents[id] = content
	return nil
}

func (s *memStore) get(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contents[id]
}

func newTestServer(t *testing.T) (*Server, *memStore) {
	t.Helper()
	store := &memStore{contents: map[string]string{}}
	cfg := config.Config{
		DocengineAPIKey: testAPIKey,
		MaxUploadBytes:  1 << 20,
		SaveDelay:       time.Millisecond,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(store, template.NewEngine(nil), log, cfg), store
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestHealthIsPublic(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("health: got %d", w.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing key: got %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: got %d, want 401", w.Code)
	}
}

func TestImportMarkdown(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(t, s, http.MethodPost, "/api/import/markdown",
		map[string]string{"markdown": "# Заголовок\n\n**жирный** текст"})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	raw, err := json.Marshal(resp["tree"])
	if err != nil {
		t.Fatalf("re-marshal tree: %v", err)
	}
	tree, err := doctree.UnmarshalTree(raw)
	if err != nil {
		t.Fatalf("response tree invalid: %v", err)
	}
	if len(tree) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(tree))
	}
	if b, ok := tree[0].(*doctree.Block); !ok || b.Kind != doctree.Heading1 {
		t.Errorf("first block should be heading-1, got %v", tree[0])
	}
	if resp["pageCount"].(float64) < 1 {
		t.Error("pageCount missing")
	}
}

func TestRenderHTMLRoundTrip(t *testing.T) {
	s, _ := newTestServer(t)
	imported := decodeBody(t, doRequest(t, s, http.MethodPost, "/api/import/markdown",
		map[string]string{"markdown": "**Hello** _world_"}))

	w := doRequest(t, s, http.MethodPost, "/api/render/html",
		map[string]any{"tree": imported["tree"]})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if got := resp["html"].(string); got != "<p><strong>Hello</strong> <em>world</em></p>" {
		t.Errorf("unexpected html: %q", got)
	}
}

func TestRenderRejectsInvalidTree(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(t, s, http.MethodPost, "/api/render/html",
		map[string]any{"tree": "not a tree"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
}

func TestListAndGetTemplates(t *testing.T) {
	s, _ := newTestServer(t)

	resp := decodeBody(t, doRequest(t, s, http.MethodGet, "/api/templates", nil))
	if tpls := resp["templates"].([]any); len(tpls) == 0 {
		t.Fatal("no builtin templates")
	}

	w := doRequest(t, s, http.MethodGet, "/api/templates/commercial-offer-kz", nil)
	if w.Code != http.StatusOK {
		t.Errorf("get commercial-offer-kz: got %d", w.Code)
	}

	w = doRequest(t, s, http.MethodGet, "/api/templates/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown template: got %d, want 404", w.Code)
	}
}

func TestExpandTemplate(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(t, s, http.MethodPost, "/api/templates/commercial-offer-kz/expand",
		map[string]any{"data": map[string]any{
			"variables": map[string]any{"companyName": "ТОО Ромашка"},
		}})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	if !strings.Contains(body, "ТОО Ромашка") {
		t.Error("filled variable missing from expanded tree")
	}
	if !strings.Contains(body, "Город компании") {
		t.Error("unfilled variable should show its display name")
	}
}

func TestRenderTemplateText(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(t, s, http.MethodPost, "/api/templates/commercial-offer-kz/render",
		map[string]any{
			"format": "text",
			"data": map[string]any{
				"variables": map[string]any{"companyName": "ТОО Ромашка"},
			},
		})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	text := resp["text"].(string)
	if !strings.Contains(text, "ТОО Ромашка") {
		t.Error("filled variable missing")
	}
	if strings.Contains(text, "{{") {
		t.Error("final output must not contain placeholders")
	}
}

func TestValidateTemplate(t *testing.T) {
	s, _ := newTestServer(t)
	resp := decodeBody(t, doRequest(t, s, http.MethodPost, "/api/templates/commercial-offer-kz/validate",
		map[string]any{"data": map[string]any{"variables": map[string]any{}}}))
	if resp["valid"].(bool) {
		t.Error("empty data should fail required-variable validation")
	}
	if len(resp["errors"].([]any)) == 0 {
		t.Error("expected validation errors")
	}
}

func TestDocumentEditFlow(t *testing.T) {
	s, store := newTestServer(t)

	// Open a new document: starts as a single empty paragraph.
	resp := decodeBody(t, doRequest(t, s, http.MethodPost, "/api/documents/doc-1/open", nil))
	if resp["tree"] == nil {
		t.Fatal("open returned no tree")
	}

	// Turn the paragraph into a heading.
	w := doRequest(t, s, http.MethodPost, "/api/documents/doc-1/apply", map[string]any{
		"command": "toggleBlock",
		"block":   "heading-1",
		"selection": map[string]any{
			"anchor": map[string]any{"path": []int{0, 0}, "offset": 0},
			"focus":  map[string]any{"path": []int{0, 0}, "offset": 0},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("apply: got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "heading-1") {
		t.Error("toggleBlock did not change the block kind")
	}

	// Undo restores the paragraph.
	resp = decodeBody(t, doRequest(t, s, http.MethodPost, "/api/documents/doc-1/undo", nil))
	if !resp["moved"].(bool) {
		t.Error("undo should report movement")
	}

	// Close flushes to the store.
	w = doRequest(t, s, http.MethodPost, "/api/documents/doc-1/close", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("close: got %d: %s", w.Code, w.Body.String())
	}
	if store.get("doc-1") == "" {
		t.Error("close did not persist the document")
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	s, _ := newTestServer(t)
	w := doRequest(t, s, http.MethodPost, "/api/documents/doc-1/apply",
		map[string]any{"command": "explode"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
}

func TestPutAndGetDocument(t *testing.T) {
	s, _ := newTestServer(t)
	tree := []doctree.Node{
		doctree.NewBlock(doctree.Paragraph, doctree.NewText("сохранено", nil)),
	}
	raw, err := doctree.MarshalTree(tree)
	if err != nil {
		t.Fatalf("MarshalTree: %v", err)
	}

	w := doRequest(t, s, http.MethodPut, "/api/documents/doc-2",
		map[string]any{"tree": json.RawMessage(raw)})
	if w.Code != http.StatusOK {
		t.Fatalf("put: got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, s, http.MethodGet, "/api/documents/doc-2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "сохранено") {
		t.Error("stored content missing from response")
	}
}

func TestGetDocumentLegacyPlainText(t *testing.T) {
	s, store := newTestServer(t)
	store.contents["old"] = "просто текст"

	w := doRequest(t, s, http.MethodGet, "/api/documents/old", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	raw, _ := json.Marshal(resp["tree"])
	tree, err := doctree.UnmarshalTree(raw)
	if err != nil {
		t.Fatalf("legacy content did not convert to a tree: %v", err)
	}
	if got := doctree.PlainText(tree); got != "просто текст" {
		t.Errorf("got %q", got)
	}
}
