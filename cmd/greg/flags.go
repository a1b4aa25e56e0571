package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/dshills/greg/internal/config"
)

// cliOptions holds parsed command-line flags. Config overrides are kept on
// the flag set so that only flags the user set are applied.
type cliOptions struct {
	fs *flag.FlagSet

	path       string
	configPath string
	print      bool
	rowNumbers bool
	noWatch    bool

	logFile    string
	logLevel   string
	script     string
	separator  string
	comment    string
	quote      string
	terminator string
	trim       string
	lazyQuotes bool
	headers    int
	widthMin   int
	widthMax   int
}

func parseFlags(args []string, stdout, stderr io.Writer) (*cliOptions, error) {
	o := &cliOptions{}
	fs := flag.NewFlagSet("greg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	o.fs = fs

	var showVersion, showHelp bool
	defaults := config.Default()

	fs.StringVar(&o.configPath, "config", "", "Path to configuration file (.toml or .yaml)")
	fs.StringVar(&o.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.BoolVar(&o.print, "print", false, "Print the table and exit instead of starting the UI")
	fs.BoolVar(&o.print, "p", false, "Print the table and exit (shorthand)")
	fs.BoolVar(&o.rowNumbers, "row-numbers", false, "Number data rows in --print output")
	fs.BoolVar(&o.noWatch, "no-watch", false, "Do not watch the file for external changes")

	fs.StringVar(&o.logFile, "log-file", "", "Append log output to this file")
	fs.StringVar(&o.logLevel, "log-level", defaults.Log.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&o.script, "script", "", "Lua file defining user commands")

	fs.StringVar(&o.separator, "separator", defaults.Source.Separator, "Field separator: a character or a name such as tab, sem, pip")
	fs.StringVar(&o.separator, "s", defaults.Source.Separator, "Field separator (shorthand)")
	fs.StringVar(&o.comment, "comment", "", "Comment character; lines starting with it are skipped")
	fs.StringVar(&o.quote, "quote", defaults.Source.Quote, `Quote character (only " is supported)`)
	fs.StringVar(&o.terminator, "terminator", "", "Record terminator in place of line breaks: a character or a name such as rs, sem")
	fs.StringVar(&o.trim, "trim", defaults.Source.Trim, "Trim whitespace: none, headers, fields, all")
	fs.BoolVar(&o.lazyQuotes, "lazy-quotes", false, "Accept quotes appearing in unquoted fields")

	fs.IntVar(&o.headers, "headers", defaults.Editor.HeaderRows, "Number of header rows")
	fs.IntVar(&o.headers, "H", defaults.Editor.HeaderRows, "Number of header rows (shorthand)")
	fs.IntVar(&o.widthMin, "width-min", defaults.Editor.ColumnWidthMin, "Minimum column width")
	fs.IntVar(&o.widthMax, "width-max", defaults.Editor.ColumnWidthMax, "Maximum column width")

	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "greg - modal viewer and editor for delimited tables\n\n")
		fmt.Fprintf(stderr, "Usage: greg [options] [file]\n\n")
		fmt.Fprintf(stderr, "Reads standard input when file is omitted or \"-\".\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  greg data.csv               View a CSV file\n")
		fmt.Fprintf(stderr, "  greg -s tab -H 1 data.tsv   Tab separated with one header row\n")
		fmt.Fprintf(stderr, "  greg -p data.csv            Print as a table and exit\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, errHelp
		}
		return nil, err
	}

	if showHelp {
		fs.Usage()
		return nil, errHelp
	}
	if showVersion {
		fmt.Fprintf(stdout, "greg %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return nil, errHelp
	}

	switch fs.NArg() {
	case 0:
		o.path = "-"
	case 1:
		o.path = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: expected at most one file, got %d\n", fs.NArg())
		fs.Usage()
		return nil, fmt.Errorf("too many arguments")
	}

	return o, nil
}

// apply copies every flag the user set onto cfg.
func (o *cliOptions) apply(cfg *config.Config) {
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-file":
			cfg.Log.File = o.logFile
		case "log-level":
			cfg.Log.Level = o.logLevel
		case "script":
			cfg.Script = o.script
		case "separator", "s":
			cfg.Source.Separator = o.separator
		case "comment":
			cfg.Source.Comment = o.comment
		case "quote":
			cfg.Source.Quote = o.quote
		case "terminator":
			cfg.Source.Terminator = o.terminator
		case "trim":
			cfg.Source.Trim = o.trim
		case "lazy-quotes":
			cfg.Source.LazyQuotes = o.lazyQuotes
		case "headers", "H":
			cfg.Editor.HeaderRows = o.headers
		case "width-min":
			cfg.Editor.ColumnWidthMin = o.widthMin
		case "width-max":
			cfg.Editor.ColumnWidthMax = o.widthMax
		}
	})
}
