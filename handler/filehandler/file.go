package filehandler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"go.uber.org/multierr"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/formatter"
	"github.com/philipp01105/logsink/handler"
)

// maxRetainedBuffer caps the line buffer kept between writes.
const maxRetainedBuffer = 64 * 1024

// OpenError reports a failure to prepare the log file.
type OpenError struct {
	Label string
	Path  string
	// Op is the failing step: resolve, mkdir, open or seek
	Op  string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("file handler %q: %s %s: %v", e.Label, e.Op, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Label identifies the handler; it is not written to the file
	Label string
	// Filename is the path to the log file (absolute or relative)
	Filename string
	// Formatter to use (default: LineFormatter)
	Formatter formatter.Formatter
	// SyncOnWrite calls fsync after every line (default: false)
	SyncOnWrite bool
	// ErrorHandler receives write failures (default: failures are only counted)
	ErrorHandler handler.ErrorHandler
	// FileMode is used when the file is created (default: 0644)
	FileMode os.FileMode
	// DirMode is used for created parent directories (default: 0755)
	DirMode os.FileMode
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLineFormatter(formatter.Config{})
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0644
	}
	if cfg.DirMode == 0 {
		cfg.DirMode = 0755
	}
}

// FileHandler writes records to a file
type FileHandler struct {
	handler.Base

	label           string
	path            string
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	syncOnWrite     bool
	onError         handler.ErrorHandler
	stats           *handler.Stats

	mu   sync.Mutex // guards file and buf
	file *os.File
	buf  bytes.Buffer
}

// New creates a file handler with the default line format.
func New(label, path string) (*FileHandler, error) {
	return NewFileHandler(FileConfig{Label: label, Filename: path})
}

// NewFileHandler creates a new file handler
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, &OpenError{Label: cfg.Label, Op: "resolve", Err: errors.New("filename is required")}
	}
	applyFileDefaults(&cfg)

	path, err := filepath.Abs(cfg.Filename)
	if err != nil {
		return nil, &OpenError{Label: cfg.Label, Path: cfg.Filename, Op: "resolve", Err: err}
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), cfg.DirMode); err != nil {
		return nil, &OpenError{Label: cfg.Label, Path: path, Op: "mkdir", Err: err}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.FileMode)
	if err != nil {
		return nil, &OpenError{Label: cfg.Label, Path: path, Op: "open", Err: err}
	}

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return nil, &OpenError{Label: cfg.Label, Path: path, Op: "seek", Err: multierr.Append(err, file.Close())}
	}

	h := &FileHandler{
		label:       cfg.Label,
		path:        path,
		formatter:   cfg.Formatter,
		syncOnWrite: cfg.SyncOnWrite,
		onError:     cfg.ErrorHandler,
		stats:       handler.NewStats(),
		file:        file,
	}

	// Cache BufferFormatter so lines are formatted into the handler-owned buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)

	return h, nil
}

// Label returns the handler label
func (h *FileHandler) Label() string {
	return h.label
}

// Path returns the absolute path of the log file
func (h *FileHandler) Path() string {
	return h.path
}

// Handle formats the record and appends it to the file. Failures are
// counted and reported to the ErrorHandler; they never reach the caller.
func (h *FileHandler) Handle(rec *core.Record) {
	rec = h.Apply(rec)
	if err := h.write(rec); err != nil {
		h.stats.IncrementFailed()
		h.onError.Report(fmt.Errorf("file handler %q: %w", h.label, err))
		return
	}
	h.stats.IncrementProcessed()
}

// write formats and writes a record as one Write call
func (h *FileHandler) write(rec *core.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return handler.ErrClosed
	}

	h.buf.Reset()
	if h.bufferFormatter != nil {
		if err := h.bufferFormatter.FormatRecord(rec, &h.buf); err != nil {
			return err
		}
	} else {
		data, err := h.formatter.Format(rec)
		if err != nil {
			return err
		}
		h.buf.Write(data)
	}

	_, err := h.file.Write(h.buf.Bytes())
	if h.buf.Cap() > maxRetainedBuffer {
		h.buf = bytes.Buffer{}
	}
	if err != nil {
		return err
	}

	if h.syncOnWrite {
		return syncFile(h.file)
	}
	return nil
}

// Sync commits the file contents to stable storage.
func (h *FileHandler) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return handler.ErrClosed
	}
	return syncFile(h.file)
}

// syncFile fsyncs f. Character devices such as /dev/null or /dev/stderr
// reject fsync with EINVAL or ENOTSUP; there is nothing to flush there.
func syncFile(f *os.File) error {
	err := f.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTSUP) {
		return nil
	}
	return err
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs and closes the file. Records handled afterwards are dropped
// and reported as handler.ErrClosed. Closing twice is a no-op.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	err := multierr.Append(syncFile(h.file), h.file.Close())
	h.file = nil
	return err
}

var (
	_ handler.Handler       = (*FileHandler)(nil)
	_ handler.StatsProvider = (*FileHandler)(nil)
	_ io.Closer             = (*FileHandler)(nil)
)
