// Command journaltex builds a LaTeX digest of recent journal articles from
// RSS/Atom feed files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/riverfjs/journaltex-go"
	"github.com/riverfjs/journaltex-go/internal/config"
	"github.com/riverfjs/journaltex-go/internal/digest"
	"github.com/riverfjs/journaltex-go/internal/feed"
	"github.com/riverfjs/journaltex-go/internal/util"
)

const usage = `usage: journaltex [-config path] [-days N] [-html preview.html] [-v] <output.tex> [feed...]

Feeds given on the command line are added to the ones listed in the
configuration file, one section per feed.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("journaltex", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage); fs.PrintDefaults() }
	configPath := fs.String("config", "", "configuration file (default: $XDG_CONFIG_HOME/journaltex/config.yaml)")
	days := fs.Int("days", 0, "number of days to include (default from configuration)")
	htmlPath := fs.String("html", "", "also write an HTML preview to this file")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		// -h/--help also ends up here
		return 1
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	logger := newLogger(*verbose)
	defer logger.Sync()
	journaltex.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := build(ctx, logger, *configPath, *days, *htmlPath, fs.Arg(0), fs.Args()[1:]); err != nil {
		logger.Error("journaltex failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func build(ctx context.Context, logger *zap.Logger, configPath string, days int, htmlPath, output string, extra []string) error {
	cfg, source, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", zap.String("source", source))
	if days > 0 {
		cfg.Days = days
	}

	opts := []journaltex.Option{journaltex.WithConcurrency(cfg.Concurrency)}
	if cfg.Rules != nil {
		dialect, err := journaltex.NewDialect(cfg.Rules)
		if err != nil {
			return fmt.Errorf("rules: %w", err)
		}
		opts = append(opts, journaltex.WithDialect(dialect))
	}

	filter, err := journaltex.NewFilter(cfg.Filter.Journals, cfg.Filter.Authors, cfg.Filter.Title, cfg.Filter.Summary)
	if err != nil {
		return err
	}

	end := time.Now()
	start := end.AddDate(0, 0, -cfg.Days)

	doc := journaltex.NewDocument(start, end)
	doc.Class = cfg.Class
	doc.ClassOptions = cfg.ClassOptions
	doc.Preamble = cfg.Preamble
	doc.MaxAuthors = cfg.MaxAuthors

	feeds := cfg.Feeds
	for _, path := range extra {
		feeds = append(feeds, config.Feed{Path: path})
	}
	if len(feeds) == 0 {
		return fmt.Errorf("no feeds configured")
	}

	for _, f := range feeds {
		raws, err := feed.ParseFile(f.Path, f.Journal)
		if err != nil {
			return err
		}
		recent := raws[:0]
		for _, r := range raws {
			if util.InRange(r.Date, start, end) {
				recent = append(recent, r)
			}
		}
		logger.Debug("feed read",
			zap.String("path", f.Path),
			zap.Int("items", len(raws)),
			zap.Int("recent", len(recent)))

		articles, err := journaltex.NormalizeArticles(ctx, recent, opts...)
		if err != nil {
			return err
		}
		section := f.Section
		if section == "" && len(recent) > 0 {
			section = journaltex.EnsureLatex(recent[0].Journal, opts...)
		}
		if section == "" {
			section = f.Path
		}
		doc.AddGroup(journaltex.Group{
			Name:     section,
			Journal:  journalMode(f.ShowJournal),
			Articles: articles,
		}, filter)
	}

	if err := writeFile(output, doc); err != nil {
		return err
	}
	logger.Info("document written", zap.String("path", output))

	if htmlPath != "" {
		page, err := digest.HTML(doc.Title, sections(doc))
		if err != nil {
			return err
		}
		if err := os.WriteFile(htmlPath, page, 0o644); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		logger.Info("preview written", zap.String("path", htmlPath))
	}
	return nil
}

func writeFile(path string, doc *journaltex.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func journalMode(s string) journaltex.JournalMode {
	switch s {
	case "always":
		return journaltex.JournalAlways
	case "never":
		return journaltex.JournalNever
	default:
		return journaltex.JournalIfDifferent
	}
}

func sections(doc *journaltex.Document) []digest.Section {
	var out []digest.Section
	add := func(name string, articles []*journaltex.Article) {
		s := digest.Section{Name: name}
		for _, a := range articles {
			authors, err := a.AuthorString(doc.MaxAuthors)
			if err != nil {
				authors = ""
			}
			s.Entries = append(s.Entries, digest.Entry{
				Title:   a.Title,
				URL:     a.URL,
				Authors: authors,
				Date:    a.Date,
				Journal: a.Journal,
				Summary: a.Summary,
			})
		}
		out = append(out, s)
	}
	for _, g := range doc.Groups() {
		add(g.Name, g.Articles)
	}
	add("Unmatched Articles", doc.Unmatched())
	return out
}
