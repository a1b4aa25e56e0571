// Package main is the entry point for greg, a modal terminal viewer and
// editor for delimited tables.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/greg/internal/app"
	"github.com/dshills/greg/internal/config"
	"github.com/dshills/greg/internal/matrix"
	"github.com/dshills/greg/internal/printer"
	"github.com/dshills/greg/internal/renderer/backend"
	"github.com/dshills/greg/internal/source"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errHelp is returned by parseFlags after printing usage or version.
var errHelp = errors.New("help requested")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cli, err := parseFlags(args, os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	if cli.print || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printTable(os.Stdout, cfg, cli); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	application, err := app.New(app.Options{
		Config: cfg,
		Path:   cli.path,
		Watch:  !cli.noWatch,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(terminal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig resolves defaults, file and environment, then applies the
// flags the user actually set.
func loadConfig(cli *cliOptions) (*config.Config, error) {
	cfg, err := config.NewLoader().Load(cli.configPath)
	if err != nil {
		return nil, err
	}
	cli.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openLogger(cfg *config.Config) (*app.Logger, func(), error) {
	if cfg.Log.File == "" {
		return app.NullLogger, func() {}, nil
	}
	f, err := app.OpenLogFile(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Log.Level),
		Output: f,
		Prefix: "greg",
	})
	return logger, func() { _ = f.Close() }, nil
}

// printTable renders the file as a text table without starting the UI.
func printTable(w io.Writer, cfg *config.Config, cli *cliOptions) error {
	opts, err := cfg.SourceOptions()
	if err != nil {
		return err
	}
	rows, err := source.ReadFile(cli.path, opts)
	if err != nil {
		return err
	}
	return printer.Print(w, matrix.FromRows(rows), printer.Options{
		HeaderRows:     cfg.Editor.HeaderRows,
		ColumnWidthMax: cfg.Editor.ColumnWidthMax,
		RowNumbers:     cli.rowNumbers,
	})
}
