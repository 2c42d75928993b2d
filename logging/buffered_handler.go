package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
)

// BufferedLogHandler is a slog.Handler writing log records
// as text lines to an in-memory buffer, used to inspect
// the debug output in tests.
//
//	handler := logging.NewBufferedLogHandler(nil)
//	logging.SetLogger(slog.New(handler))
//	// ... format tables ...
//	handler.Contains(`msg="detected table"`)
type BufferedLogHandler struct {
	level  slog.Leveler
	mu     *sync.Mutex
	buffer *bytes.Buffer
	attrs  string // pre-rendered attributes from WithAttrs
	groups []string
}

// NewBufferedLogHandler returns a handler with an empty buffer.
// Pass nil for opts to capture all levels.
func NewBufferedLogHandler(opts *slog.HandlerOptions) *BufferedLogHandler {
	h := &BufferedLogHandler{
		mu:     new(sync.Mutex),
		buffer: new(bytes.Buffer),
	}
	if opts != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled implements slog.Handler.
func (h *BufferedLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.level == nil {
		return true
	}
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
// Every record is written as one line of the form:
//
//	level=DEBUG msg="detected table" range=3-5
func (h *BufferedLogHandler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder
	line.WriteString("level=")
	line.WriteString(r.Level.String())
	line.WriteString(" msg=")
	line.WriteString(quoteIfNeeded(r.Message))
	line.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&line, attr)
		return true
	})
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.buffer.WriteString(line.String())
	return err
}

func (h *BufferedLogHandler) writeAttr(line *strings.Builder, attr slog.Attr) {
	line.WriteByte(' ')
	for _, group := range h.groups {
		line.WriteString(group)
		line.WriteByte('.')
	}
	line.WriteString(attr.Key)
	line.WriteByte('=')
	line.WriteString(quoteIfNeeded(attr.Value.String()))
}

// WithAttrs implements slog.Handler.
func (h *BufferedLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, attr := range attrs {
		h.writeAttr(&b, attr)
	}
	c := *h
	c.attrs = b.String()
	return &c
}

// WithGroup implements slog.Handler.
func (h *BufferedLogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(append([]string(nil), h.groups...), name)
	return &c
}

// String returns the captured output.
func (h *BufferedLogHandler) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buffer.String()
}

// Contains returns true if the captured output contains s.
func (h *BufferedLogHandler) Contains(s string) bool {
	return strings.Contains(h.String(), s)
}

// Reset clears the captured output.
func (h *BufferedLogHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buffer.Reset()
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
