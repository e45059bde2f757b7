package digest

import (
	"strings"
	"testing"
	"time"
)

func sample() []Section {
	return []Section{{
		Name: "Physical Review Letters",
		Entries: []Entry{{
			Title:   `Spin-$\frac{1}{2}$ chains`,
			URL:     "https://example.org/prl/1",
			Authors: "Ada Lovelace and Paul Dirac",
			Date:    time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Journal: "PRL",
			Summary: `We find $T_{c} > 5$ K <script>alert(1)</script>`,
		}},
	}}
}

// TestMarkdown 测试 LaTeX 文本不被当作 Markdown 解释
func TestMarkdown(t *testing.T) {
	md := Markdown("In the Journals", sample())
	for _, want := range []string{
		"# In the Journals\n",
		"## Physical Review Letters\n",
		`### [Spin\-\$\\frac\{1\}\{2\}\$ chains](<https://example.org/prl/1>)`,
		`*Ada Lovelace and Paul Dirac (2024-03-04 PRL)*`,
		`\$T\_\{c\} \> 5\$`,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, md)
		}
	}
}

// TestHTML 测试渲染结果保留公式并经过清洗
func TestHTML(t *testing.T) {
	page, err := HTML("In the Journals", sample())
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	html := string(page)
	for _, want := range []string{
		"<h1>In the Journals</h1>",
		`href="https://example.org/prl/1"`,
		`rel="nofollow"`,
		`$\frac{1}{2}$`,
		`$T_{c} &gt; 5$`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() missing %q in:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<script") {
		t.Errorf("HTML() kept a script tag:\n%s", html)
	}
}
