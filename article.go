package journaltex

import (
	"fmt"
	"strings"
	"time"

	"github.com/riverfjs/journaltex-go/internal/types"
	"github.com/riverfjs/journaltex-go/internal/util"
)

// RawArticle 尚未归一化的文章字段
type RawArticle = types.RawArticle

// Article is an article whose text fields have been normalized one by one.
// A field that failed normalization holds the diagnostic text instead.
type Article struct {
	Title   string
	URL     string
	Date    time.Time
	Authors []string
	Summary string
	Journal string
}

// LatexOptions controls Article.LaTeX.
type LatexOptions struct {
	MaxAuthors  int
	ShowJournal bool
	ShowSummary bool
}

// DefaultLatexOptions returns the options used for matched articles.
func DefaultLatexOptions() LatexOptions {
	return LatexOptions{
		MaxAuthors:  3,
		ShowSummary: true,
	}
}

// NewArticle normalizes every text field of raw independently.
func NewArticle(raw RawArticle, opts ...Option) *Article {
	return newArticle(raw, applyOptions(opts...))
}

func newArticle(raw RawArticle, options *ConvertOptions) *Article {
	field := func(s string) string {
		if !options.EnsureLatex {
			return s
		}
		return ensureLatex(s, options)
	}

	authors := make([]string, 0, len(raw.Authors))
	for _, a := range raw.Authors {
		authors = append(authors, util.CleanAuthor(field(a)))
	}
	return &Article{
		Title:   field(raw.Title),
		URL:     raw.URL,
		Date:    raw.Date,
		Authors: authors,
		Summary: field(raw.Summary),
		Journal: field(raw.Journal),
	}
}

// AuthorString 生成作者列表
//
// 超过 maxAuthors 个作者时只保留第一个和最后一个。maxAuthors 必须大于 1。
func (a *Article) AuthorString(maxAuthors int) (string, error) {
	if maxAuthors < 2 {
		return "", fmt.Errorf("maxAuthors needs to be larger than 1, got %d", maxAuthors)
	}
	n := len(a.Authors)
	switch {
	case n == 0:
		return "no authors found", nil
	case n == 1:
		return a.Authors[0], nil
	case n == 2:
		return a.Authors[0] + " and " + a.Authors[1], nil
	case n <= maxAuthors:
		return strings.Join(a.Authors[:n-1], ", ") + ", and " + a.Authors[n-1], nil
	default:
		return a.Authors[0] + ", ..., and " + a.Authors[n-1], nil
	}
}

var hrefEscaper = strings.NewReplacer(`%`, `\%`, `#`, `\#`)

// LaTeX 生成文章的 LaTeX 片段：标题（带链接）、作者与日期、摘要
func (a *Article) LaTeX(opts LatexOptions) (string, error) {
	authors, err := a.AuthorString(opts.MaxAuthors)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`\subsection*{\href{` + hrefEscaper.Replace(a.URL) + `}{`)
	b.WriteString(a.Title + "}}\n")

	b.WriteString(`\subsubsection*{`)
	b.WriteString(strings.ReplaceAll(authors, "...", `\dots`))
	b.WriteString(" (" + a.Date.Format("2006-01-02"))
	if opts.ShowJournal {
		b.WriteString(" " + a.Journal)
	}
	b.WriteString(")}\n")

	if opts.ShowSummary {
		b.WriteString(a.Summary + "\n")
	}
	b.WriteString("\n")
	return b.String(), nil
}
