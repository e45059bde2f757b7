package journaltex

import (
	"strings"
	"testing"
	"time"
)

func documentArticles() []*Article {
	return []*Article{
		{
			Title:   "A match",
			URL:     "u1",
			Date:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Authors: []string{"X"},
			Summary: "S1",
			Journal: "prl",
		},
		{
			Title:   "Other",
			URL:     "u2",
			Date:    time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			Authors: []string{"Y", "Z"},
			Summary: "S2",
			Journal: "Other",
		},
	}
}

// TestDocument_WriteTo 测试完整文档结构
func TestDocument_WriteTo(t *testing.T) {
	f, err := NewFilter(nil, nil, []string{"match"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	doc := NewDocument(
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	)
	doc.ClassOptions = "a4paper"
	doc.Preamble = []string{`\usepackage{hyperref}`}
	doc.AddGroup(Group{Name: "PRL", Articles: documentArticles()}, f)

	if len(doc.Groups()) != 1 || len(doc.Groups()[0].Articles) != 1 || len(doc.Unmatched()) != 1 {
		t.Fatalf("groups = %+v, unmatched = %+v", doc.Groups(), doc.Unmatched())
	}

	var b strings.Builder
	n, err := doc.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	want := strings.Join([]string{
		`\documentclass[a4paper]{article}`,
		`\usepackage{hyperref}`,
		`\begin{document}`,
		`\title{In the Journals}`,
		`\newcommand{\thedate}{04 to 11 Mar. 2024}`,
		`\date{\thedate}`,
		``,
		`\maketitle`,
		``,
		`\section{PRL}`,
		`\subsection*{\href{u1}{A match}}`,
		`\subsubsection*{X (2024-03-05)}`,
		`S1`,
		``,
		`\clearpage`,
		`\section{Unmatched Articles}`,
		`\subsection*{\href{u2}{Other}}`,
		`\subsubsection*{Y and Z (2024-03-06 Other)}`,
		`S2`,
		``,
		`\end{document}`,
		``,
	}, "\n")
	if b.String() != want {
		t.Errorf("WriteTo() =\n%s\nwant\n%s", b.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() n = %d, want %d", n, len(want))
	}
}

// TestDocument_NotStandalone 测试只输出正文
func TestDocument_NotStandalone(t *testing.T) {
	doc := NewDocument(time.Now(), time.Now())
	doc.Standalone = false

	var b strings.Builder
	if _, err := doc.WriteTo(&b); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	out := b.String()
	if strings.Contains(out, `\documentclass`) || strings.Contains(out, `\end{document}`) {
		t.Errorf("WriteTo() should not write the document wrapper:\n%s", out)
	}
	if !strings.HasPrefix(out, `\title{`) {
		t.Errorf("WriteTo() should start with the title:\n%s", out)
	}
}

// TestDocument_InvalidMaxAuthors 测试错误向上传递
func TestDocument_InvalidMaxAuthors(t *testing.T) {
	doc := NewDocument(time.Now(), time.Now())
	doc.MaxAuthors = 1
	doc.AddGroup(Group{Name: "PRL", Articles: documentArticles()}, nil)

	var b strings.Builder
	if _, err := doc.WriteTo(&b); err == nil {
		t.Error("WriteTo() with MaxAuthors 1 should fail")
	}
}

// TestShowJournal 测试期刊名显示模式
func TestShowJournal(t *testing.T) {
	a := &Article{Journal: "Physical Review Letters"}
	tests := []struct {
		mode  JournalMode
		group string
		want  bool
	}{
		{JournalIfDifferent, "PHYSICAL REVIEW LETTERS", false},
		{JournalIfDifferent, "Nature", true},
		{JournalAlways, "Physical Review Letters", true},
		{JournalNever, "Nature", false},
	}
	for _, tt := range tests {
		if got := showJournal(tt.mode, tt.group, a); got != tt.want {
			t.Errorf("showJournal(%v, %q) = %v, want %v", tt.mode, tt.group, got, tt.want)
		}
	}
}
