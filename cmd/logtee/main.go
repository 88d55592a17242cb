// Command logtee reads lines from stdin and writes each one as a log
// record to a set of sinks, such as the console and one or more files.
//
//	app 2>&1 | logtee -f logs/app.log
//	app | logtee --config logsink.yml --json
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type CLI struct {
	Verbose bool `help:"Print debug diagnostics to stderr." short:"v"`

	Run   RunCmd   `cmd:"" default:"withargs" help:"Copy stdin lines to the configured sinks."`
	Check CheckCmd `cmd:"" help:"Validate a sink configuration and list its sinks."`
}

// newDiagnostics builds the zap logger logtee uses for its own messages.
func newDiagnostics(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("logtee"),
		kong.Description("Fan stdin lines out to log sinks."),
		kong.UsageOnError(),
	)

	diag := newDiagnostics(cli.Verbose)
	ctx.BindTo(os.Stdin, (*io.Reader)(nil))
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	err := ctx.Run(diag)
	_ = diag.Sync()
	ctx.FatalIfErrorf(err)
}
