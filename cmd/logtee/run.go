package main

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/philipp01105/logsink/bridge"
	"github.com/philipp01105/logsink/config"
	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler"
)

const maxLineSize = 1 << 20

type RunCmd struct {
	Config    string   `help:"YAML sink configuration." short:"c" type:"existingfile"`
	EnvFile   []string `help:"Env files loaded before the configuration is read." name:"env-file" default:".env"`
	Label     string   `help:"Source label for emitted records." default:"logtee"`
	Level     string   `help:"Severity assigned to plain input lines." default:"info"`
	Threshold string   `help:"Minimum severity written. Overrides the configuration."`
	File      []string `help:"Additional file sink." short:"f" type:"path"`
	Format    string   `help:"Format of additional file sinks." enum:"line,json" default:"line"`
	JSON      bool     `help:"Decode input lines as zerolog JSON events."`
	Quiet     bool     `help:"Skip the console sink when no configuration is given." short:"q"`
}

// sinkConfig resolves the configuration file, flags and environment into
// one validated sink graph description.
func (r *RunCmd) sinkConfig() (*config.Config, error) {
	var cfg *config.Config
	if r.Config != "" {
		loaded, err := config.Load(r.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
		if r.Quiet {
			cfg.Sinks = nil
		}
		cfg.ApplyEnv()
	}

	for _, path := range r.File {
		cfg.Sinks = append(cfg.Sinks, config.SinkConfig{
			Type:   config.TypeFile,
			Path:   path,
			Format: r.Format,
		})
	}
	if r.Threshold != "" {
		cfg.Level = r.Threshold
	}
	if cfg.Label == "" {
		cfg.Label = r.Label
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sink configuration: %w", err)
	}
	return cfg, nil
}

func (r *RunCmd) Run(diag *zap.Logger, in io.Reader) error {
	if err := config.LoadEnv(r.EnvFile...); err != nil {
		return err
	}

	level, err := core.ParseLevel(r.Level)
	if err != nil {
		return err
	}

	cfg, err := r.sinkConfig()
	if err != nil {
		return err
	}

	sinks, err := cfg.Build(handler.ZapErrorHandler(diag))
	if err != nil {
		return fmt.Errorf("opening sinks: %w", err)
	}
	defer func() {
		if err := sinks.Close(); err != nil {
			diag.Error("closing sinks", zap.Error(err))
		}
	}()
	diag.Debug("sinks ready",
		zap.Int("count", sinks.Handler().Len()),
		zap.Stringer("threshold", sinks.Handler().Level()),
	)

	log := sinks.Logger()
	var events *bridge.ZerologWriter
	if r.JSON {
		events = bridge.NewZerologWriter(sinks.Handler(), cfg.Label)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := 0
	for scanner.Scan() {
		lines++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		if events != nil {
			_, err := events.Write(scanner.Bytes())
			if err == nil {
				continue
			}
			diag.Debug("not a JSON event, logging as text", zap.Int("line", lines), zap.Error(err))
		}
		log.Log(level, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	diag.Debug("input drained", zap.Int("lines", lines))
	return nil
}
