package journaltex

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/riverfjs/journaltex-go/internal/util"
)

// AuthorName is the part of a name used for matching.
type AuthorName struct {
	First string
	Last  string
}

// Filter decides which articles go into their source section. An article
// matches if any single rule matches.
type Filter struct {
	Journals []string
	Authors  []AuthorName
	Title    []*regexp.Regexp
	Summary  []*regexp.Regexp
}

// NewFilter compiles a filter. Title and summary patterns are matched case
// insensitively; summary patterns are also tried against the title.
func NewFilter(journals, authors, title, summary []string) (*Filter, error) {
	f := &Filter{Journals: journals}
	for _, a := range authors {
		first, last := util.SplitName(a)
		if last == "" {
			continue
		}
		f.Authors = append(f.Authors, AuthorName{First: first, Last: last})
	}

	var err error
	if f.Summary, err = compileCaseless(summary); err != nil {
		return nil, fmt.Errorf("summary filter: %w", err)
	}
	titleRes, err := compileCaseless(title)
	if err != nil {
		return nil, fmt.Errorf("title filter: %w", err)
	}
	f.Title = append(titleRes, f.Summary...)
	return f, nil
}

func compileCaseless(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Match reports whether any rule matches a.
func (f *Filter) Match(a *Article) bool {
	if f == nil {
		return false
	}
	return f.MatchJournal(a) || f.MatchAuthors(a) || f.MatchTitle(a) || f.MatchSummary(a)
}

// MatchJournal 期刊名完全一致
func (f *Filter) MatchJournal(a *Article) bool {
	journal := norm.NFC.String(a.Journal)
	for _, j := range f.Journals {
		if norm.NFC.String(j) == journal {
			return true
		}
	}
	return false
}

// MatchAuthors 只检查姓氏和名字首字母是否同时出现在某个作者中
func (f *Filter) MatchAuthors(a *Article) bool {
	for _, name := range a.Authors {
		for _, want := range f.Authors {
			r, _ := utf8.DecodeRuneInString(want.First)
			if util.ContainsNFC(name, string(r)) && util.ContainsNFC(name, want.Last) {
				return true
			}
		}
	}
	return false
}

// MatchTitle reports whether a title pattern matches.
func (f *Filter) MatchTitle(a *Article) bool {
	return matchAny(f.Title, a.Title)
}

// MatchSummary reports whether a summary pattern matches.
func (f *Filter) MatchSummary(a *Article) bool {
	return matchAny(f.Summary, a.Summary)
}

func matchAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
