package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zandoc/docengine/internal/doctree"
	"github.com/zandoc/docengine/internal/docstore"
	"github.com/zandoc/docengine/internal/editor"
	"github.com/zandoc/docengine/internal/importer"
)

// ContentStore is the persistence contract a session depends on. The
// store holds an opaque string per document; the session decides how to
// interpret it.
type ContentStore interface {
	LoadContent(ctx context.Context, id string) (string, error)
	SaveContent(ctx context.Context, id, content string) error
}

// ErrPersistenceUnavailable wraps any store failure. The in-memory tree
// is always retained when this is returned, so the caller can keep
// editing and retry the save later.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// DefaultSaveDelay is how long a session waits after the last edit
// before autosaving.
const DefaultSaveDelay = 500 * time.Millisecond

// Session binds one open document to an editor and a store. All edits
// flow through the editor; saves are debounced so typing bursts produce
// a single write.
type Session struct {
	id     string
	editor *editor.Editor
	store  ContentStore
	logger *slog.Logger
	saver  *Debouncer
}

// Options tune session behavior. Zero values select defaults.
type Options struct {
	Scheduler Scheduler
	SaveDelay time.Duration

	// MaxHistory caps the editor's undo stack; zero selects the editor
	// default.
	MaxHistory int

	Logger *slog.Logger
}

// Open loads the document and returns a session over it.
//
// Stored content is expected to be tree JSON. Content written before
// the tree model existed is plain text; when decoding fails the session
// falls back to wrapping the raw string in paragraphs, so old documents
// keep opening. A missing document starts empty.
func Open(ctx context.Context, store ContentStore, id string, opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SaveDelay <= 0 {
		opts.SaveDelay = DefaultSaveDelay
	}

	tree, err := loadTree(ctx, store, id, opts.Logger)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:     id,
		editor: editor.NewWithHistory(tree, opts.MaxHistory),
		store:  store,
		logger: opts.Logger.With("document", id),
		saver:  NewDebouncer(opts.Scheduler, opts.SaveDelay),
	}, nil
}

func loadTree(ctx context.Context, store ContentStore, id string, logger *slog.Logger) ([]doctree.Node, error) {
	content, err := store.LoadContent(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return doctree.NewEmptyTree(), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	if content == "" {
		return doctree.NewEmptyTree(), nil
	}

	tree, err := doctree.UnmarshalTree([]byte(content))
	if err != nil {
		logger.Info("stored content is not tree JSON, importing as plain text",
			"document", id, "error", err)
		return importer.ImportPlainText(content), nil
	}
	return tree, nil
}

func (s *Session) ID() string             { return s.id }
func (s *Session) Editor() *editor.Editor { return s.editor }
func (s *Session) Tree() []doctree.Node   { return s.editor.Tree() }

// Apply runs an editing command and schedules a debounced save.
func (s *Session) Apply(cmd func(editor.State) editor.State) {
	s.editor.Apply(cmd)
	s.ScheduleSave()
}

// ScheduleSave arranges a save after the configured delay, replacing
// any pending one. The save runs with a background context so it
// outlives the request that triggered it.
func (s *Session) ScheduleSave() {
	s.saver.Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Save(ctx); err != nil {
			s.logger.Error("autosave failed", "error", err)
		}
	})
}

// Save writes the current tree to the store immediately. On failure the
// tree stays in memory untouched and Save may simply be called again.
func (s *Session) Save(ctx context.Context) error {
	content, err := doctree.MarshalTreeString(s.editor.Tree())
	if err != nil {
		return fmt.Errorf("encode document %s: %w", s.id, err)
	}
	if err := s.store.SaveContent(ctx, s.id, content); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	return nil
}

// Close flushes any pending save and releases the session. The final
// flush is best-effort; its error is returned so the caller can decide
// whether to retry.
func (s *Session) Close(ctx context.Context) error {
	s.saver.Stop()
	return s.Save(ctx)
}
