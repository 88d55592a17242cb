package consolehandler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/formatter"
	"github.com/philipp01105/logsink/handler"
)

// ColorMode selects when the level column is colorized
type ColorMode int

const (
	// ColorAuto colorizes when fatih/color detects a terminal
	ColorAuto ColorMode = iota
	// ColorAlways colorizes unconditionally
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// ParseColorMode converts auto, always or never to a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on":
		return ColorAlways, nil
	case "never", "off":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Label identifies the handler; it is not written to the output
	Label string
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: LineFormatter, colorized per Color)
	Formatter formatter.Formatter
	// Color selects level colorization for the default formatter
	Color ColorMode
	// ErrorHandler receives write failures
	ErrorHandler handler.ErrorHandler
}

var levelColors = map[core.Level]*color.Color{
	core.TraceLevel:    color.New(color.FgHiBlack),
	core.DebugLevel:    color.New(color.FgCyan),
	core.InfoLevel:     color.New(color.FgGreen),
	core.NoticeLevel:   color.New(color.FgBlue),
	core.WarningLevel:  color.New(color.FgYellow),
	core.ErrorLevel:    color.New(color.FgRed),
	core.CriticalLevel: color.New(color.FgRed, color.Bold),
}

// levelDecorator returns a formatter.Config.DecorateLevel for mode.
func levelDecorator(mode ColorMode) func(core.Level, string) string {
	switch mode {
	case ColorNever:
		return nil
	case ColorAlways:
		forced := make(map[core.Level]*color.Color, len(levelColors))
		for l, c := range levelColors {
			cp := *c
			cp.EnableColor()
			forced[l] = &cp
		}
		return decorate(forced)
	default:
		return decorate(levelColors)
	}
}

func decorate(colors map[core.Level]*color.Color) func(core.Level, string) string {
	return func(level core.Level, column string) string {
		if c, ok := colors[level]; ok {
			return c.Sprint(column)
		}
		return column
	}
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLineFormatter(formatter.Config{
			DecorateLevel: levelDecorator(cfg.Color),
		})
	}
}

// ConsoleHandler writes formatted records to an io.Writer
type ConsoleHandler struct {
	handler.Base

	label           string
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	onError         handler.ErrorHandler
	stats           *handler.Stats

	mu      sync.Mutex // protects syncBuf and writer (single lock)
	syncBuf bytes.Buffer
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		label:     cfg.Label,
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		onError:   cfg.ErrorHandler,
		stats:     handler.NewStats(),
	}

	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
	}

	return h
}

// Label returns the handler label
func (h *ConsoleHandler) Label() string {
	return h.label
}

// Handle formats the record and writes it as one Write call.
func (h *ConsoleHandler) Handle(rec *core.Record) {
	rec = h.Apply(rec)
	if err := h.write(rec); err != nil {
		h.stats.IncrementFailed()
		h.onError.Report(fmt.Errorf("console handler %q: %w", h.label, err))
		return
	}
	h.stats.IncrementProcessed()
}

func (h *ConsoleHandler) write(rec *core.Record) error {
	if h.bufferFormatter == nil {
		data, err := h.formatter.Format(rec)
		if err != nil {
			return err
		}
		h.mu.Lock()
		_, err = h.writer.Write(data)
		h.mu.Unlock()
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.syncBuf.Reset()
	if err := h.bufferFormatter.FormatRecord(rec, &h.syncBuf); err != nil {
		return err
	}
	_, err := h.writer.Write(h.syncBuf.Bytes())
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

var (
	_ handler.Handler       = (*ConsoleHandler)(nil)
	_ handler.StatsProvider = (*ConsoleHandler)(nil)
)
