package config

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/formatter"
	"github.com/philipp01105/logsink/handler"
	"github.com/philipp01105/logsink/handler/consolehandler"
	"github.com/philipp01105/logsink/handler/filehandler"
	"github.com/philipp01105/logsink/logger"
)

// Sinks is a built sink graph. The composite does not own its members, so
// Sinks keeps the closers of the members it opened.
type Sinks struct {
	label   string
	handler *handler.MultiHandler
	closers []io.Closer
}

// Build opens every sink and combines them in declaration order. onError
// receives write failures from all sinks and the composite. When a sink
// fails to open, the sinks opened before it are closed again.
func (c *Config) Build(onError handler.ErrorHandler) (*Sinks, error) {
	s := &Sinks{label: c.Label}

	members := make([]handler.Handler, 0, len(c.Sinks))
	for i, sc := range c.Sinks {
		h, err := s.open(sc, onError)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("sink %d: %w", i, err), s.Close())
		}
		members = append(members, h)
	}

	s.handler = handler.Combine(members...)
	s.handler.SetErrorHandler(onError)
	if c.Level != "" {
		level, err := core.ParseLevel(c.Level)
		if err != nil {
			return nil, multierr.Append(err, s.Close())
		}
		s.handler.SetLevel(level)
	}
	for k, v := range c.Metadata {
		s.handler.SetMetadata(k, core.StringValue(v))
	}
	return s, nil
}

func (s *Sinks) open(sc SinkConfig, onError handler.ErrorHandler) (handler.Handler, error) {
	label := sc.Label
	if label == "" {
		label = sc.Type + "-" + uuid.NewString()
	}

	fmtCfg := formatter.Config{IncludeCaller: sc.Caller}
	var f formatter.Formatter
	if sc.Format == FormatJSON {
		f = formatter.NewJSONFormatter(fmtCfg)
	} else if sc.Caller {
		// Console sinks keep their colorized default unless caller output is requested.
		f = formatter.NewLineFormatter(fmtCfg)
	}

	switch sc.Type {
	case TypeFile:
		fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
			Label:        label,
			Filename:     sc.Path,
			Formatter:    f,
			SyncOnWrite:  sc.Sync,
			ErrorHandler: onError,
		})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, fh)
		return fh, nil

	case TypeConsole:
		mode, err := consolehandler.ParseColorMode(sc.Color)
		if err != nil {
			return nil, err
		}
		var w io.Writer = os.Stdout
		if sc.Stream == "stderr" {
			w = os.Stderr
		}
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Label:        label,
			Writer:       w,
			Formatter:    f,
			Color:        mode,
			ErrorHandler: onError,
		}), nil
	}
	return nil, fmt.Errorf("unknown sink type %q", sc.Type)
}

// Handler returns the composite handler.
func (s *Sinks) Handler() *handler.MultiHandler {
	return s.handler
}

// Logger returns a logger dispatching to the composite handler.
func (s *Sinks) Logger() *logger.Logger {
	return logger.NewBuilder().
		WithHandler(s.handler).
		WithLabel(s.label).
		Build()
}

// Close closes every sink that owns a file. It is safe to call more than once.
func (s *Sinks) Close() error {
	var err error
	for _, c := range s.closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}
