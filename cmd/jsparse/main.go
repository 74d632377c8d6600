// Command jsparse parses JavaScript, TypeScript, and JSX files and reports their diagnostics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	arg "github.com/alexflint/go-arg"
	"go.uber.org/zap"
)

type args struct {
	Files     []string `arg:"positional,required" help:"files to parse"`
	Type      string   `arg:"-t" help:"source type (script, module, ts, tsx, jsx, dts), overrides the file extension"`
	Config    string   `arg:"-c" help:"YAML configuration file"`
	Print     bool     `arg:"-p" help:"print the syntax tree"`
	Positions bool     `help:"print the syntax tree with positions"`
	Stats     bool     `arg:"-s" help:"print arena statistics and the parse duration"`
	Repeat    int      `arg:"-r" help:"parse each file repeatedly (for performance)"`
	Jobs      int      `arg:"-j" help:"number of files parsed in parallel"`
	Watch     bool     `arg:"-w" help:"parse the files again whenever they change"`
	Verbose   bool     `arg:"-v" help:"log speculative parsing and fatal errors"`
}

func (args) Description() string {
	return "jsparse parses JavaScript, TypeScript, and JSX files and reports their diagnostics as file:line:col: message."
}

func main() {
	var a args
	arg.MustParse(&a)

	logger, err := newLogger(a.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	var cfg Config
	if a.Config != "" {
		if cfg, err = LoadConfig(a.Config); err != nil {
			logger.Fatal("jsparse", zap.Error(err))
		}
	}
	r, err := newRunner(a, cfg, logger, os.Stdout)
	if err != nil {
		logger.Fatal("jsparse", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed, err := r.run(ctx, a.Files)
	if err != nil {
		logger.Fatal("jsparse", zap.Error(err))
	}
	if a.Watch {
		if err := r.watch(ctx, a.Files); err != nil {
			logger.Fatal("jsparse", zap.Error(err))
		}
		return
	}
	if failed {
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
