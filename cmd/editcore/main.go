// Package main is the entry point for the editcore highlighting CLI. It
// opens a file (or stdin), tokenizes it with the configured language and
// writes styled lines to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dshills/editcore/internal/config"
	"github.com/dshills/editcore/internal/document"
	"github.com/dshills/editcore/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	language   string
	themeName  string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "editcore",
	})

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			logger.Error("loading config", "path", opts.configPath, "err", err)
			return 1
		}
	}

	themeName := cfg.Theme
	if opts.themeName != "" {
		themeName = opts.themeName
	}
	th, ok := theme.ByName(themeName)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", themeName)
		th, _ = theme.ByName("")
	}

	var content, path string
	switch args := flag.Args(); len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("reading stdin", "err", err)
			return 1
		}
		content = string(data)
	case 1:
		path = args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("reading file", "path", path, "err", err)
			return 1
		}
		content = string(data)
	default:
		flag.Usage()
		return 2
	}

	langID := opts.language
	if langID == "" && path != "" {
		langID = cfg.LanguageForPath(path)
	}

	docOpts := []document.Option{
		document.WithContent(content),
		document.WithHistoryLimit(cfg.HistoryLimit),
		document.WithCoalesceWindow(time.Duration(cfg.CoalesceWindow)),
	}
	if path != "" {
		docOpts = append(docOpts, document.WithPath(path))
	}
	if langID != "" {
		docOpts = append(docOpts, document.WithLanguage(langID))
	}

	doc := document.New(docOpts...)
	if doc.Language() == "" {
		if langID != "" {
			logger.Warn("unknown language", "language", langID)
		}
		if !doc.SetLanguage(cfg.DefaultLanguage) {
			doc.SetLanguage("text")
		}
	}
	logger.Debug("document opened",
		"id", doc.ID(), "language", doc.Language(), "lines", doc.LineCount())

	for n := 1; n <= doc.LineCount(); n++ {
		fmt.Println(th.RenderLine(doc.Line(n), doc.LineTokens(n)))
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.language, "lang", "", "Language id (overrides the file extension)")
	flag.StringVar(&opts.themeName, "theme", "", "Theme name (default, mono)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "editcore - syntax highlighting pipeline\n\n")
		fmt.Fprintf(os.Stderr, "Usage: editcore [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  editcore main.py            Highlight a file\n")
		fmt.Fprintf(os.Stderr, "  editcore -lang json data    Force a language\n")
		fmt.Fprintf(os.Stderr, "  cat a.css | editcore -lang css\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("editcore %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
