package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/philipp01105/logsink/config"
)

type CheckCmd struct {
	Config  string   `arg:"" help:"YAML sink configuration." type:"existingfile"`
	EnvFile []string `help:"Env files loaded before the configuration is read." name:"env-file" default:".env"`
}

func (c *CheckCmd) Run(diag *zap.Logger, out io.Writer) error {
	if err := config.LoadEnv(c.EnvFile...); err != nil {
		return err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	diag.Debug("configuration valid", zap.String("path", c.Config), zap.Int("sinks", len(cfg.Sinks)))

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	fmt.Fprintf(out, "label: %s\nlevel: %s\n", cfg.Label, level)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tLABEL\tFORMAT\tTARGET")
	for _, s := range cfg.Sinks {
		format := s.Format
		if format == "" {
			format = config.FormatLine
		}
		target := s.Path
		if s.Type == config.TypeConsole {
			target = s.Stream
			if target == "" {
				target = "stdout"
			}
		}
		label := s.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Type, label, format, target)
	}
	return tw.Flush()
}
