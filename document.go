package journaltex

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/riverfjs/journaltex-go/internal/util"
)

// JournalMode 决定小节中是否显示期刊名
type JournalMode int

const (
	// JournalIfDifferent shows the journal unless it equals the group name.
	JournalIfDifferent JournalMode = iota
	// JournalAlways always shows the journal.
	JournalAlways
	// JournalNever never shows the journal.
	JournalNever
)

// Group is one source section of the document.
type Group struct {
	Name     string
	Journal  JournalMode
	Articles []*Article
}

// Document 组装完整的 .tex 文档
type Document struct {
	Class        string
	ClassOptions string
	Preamble     []string
	Standalone   bool
	Title        string
	Start, End   time.Time
	MaxAuthors   int

	groups    []Group
	unmatched []*Article
}

// NewDocument creates a standalone article document for [start, end].
func NewDocument(start, end time.Time) *Document {
	return &Document{
		Class:      "article",
		Standalone: true,
		Title:      "In the Journals",
		Start:      start,
		End:        end,
		MaxAuthors: DefaultLatexOptions().MaxAuthors,
	}
}

// AddGroup adds a section holding the articles of g that match f. The others
// are collected for the final "Unmatched Articles" section.
func (d *Document) AddGroup(g Group, f *Filter) {
	matched := make([]*Article, 0, len(g.Articles))
	for _, a := range g.Articles {
		if f.Match(a) {
			matched = append(matched, a)
		} else {
			d.unmatched = append(d.unmatched, a)
		}
	}
	Logger.Info("section assembled",
		zap.String("section", g.Name),
		zap.Int("matched", len(matched)),
		zap.Int("unmatched", len(g.Articles)-len(matched)))
	g.Articles = matched
	d.groups = append(d.groups, g)
}

// Groups returns the sections added so far.
func (d *Document) Groups() []Group { return d.groups }

// Unmatched returns the articles no filter rule matched.
func (d *Document) Unmatched() []*Article { return d.unmatched }

// showJournal 根据模式判断是否显示期刊名（忽略大小写）
func showJournal(mode JournalMode, group string, a *Article) bool {
	switch mode {
	case JournalAlways:
		return true
	case JournalNever:
		return false
	default:
		fold := cases.Fold()
		return fold.String(a.Journal) != fold.String(group)
	}
}

// WriteTo writes the whole document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if d.Standalone {
		fmt.Fprintf(&b, "\\documentclass[%s]{%s}", d.ClassOptions, d.Class)
		for _, line := range d.Preamble {
			b.WriteString("\n" + line)
		}
		b.WriteString("\n\\begin{document}\n")
	}
	fmt.Fprintf(&b, "\\title{%s}\n", d.Title)
	b.WriteString(util.DateMacro(d.Start, d.End))
	b.WriteString("\\date{\\thedate}\n\n")
	b.WriteString("\\maketitle\n\n")

	opts := DefaultLatexOptions()
	opts.MaxAuthors = d.MaxAuthors

	for _, g := range d.groups {
		fmt.Fprintf(&b, "\\section{%s}\n", g.Name)
		for _, a := range g.Articles {
			opts.ShowJournal = showJournal(g.Journal, g.Name, a)
			if err := writeArticle(&b, a, opts); err != nil {
				return 0, err
			}
		}
		b.WriteString("\\clearpage\n")
	}

	b.WriteString("\\section{Unmatched Articles}\n")
	opts.ShowJournal = true
	for _, a := range d.unmatched {
		if err := writeArticle(&b, a, opts); err != nil {
			return 0, err
		}
	}
	if d.Standalone {
		b.WriteString("\\end{document}\n")
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func writeArticle(b *strings.Builder, a *Article, opts LatexOptions) error {
	tex, err := a.LaTeX(opts)
	if err != nil {
		return fmt.Errorf("article %q: %w", a.URL, err)
	}
	b.WriteString(tex)
	return nil
}
