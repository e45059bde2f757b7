// Package digest renders a normalized document as an HTML preview.
//
// Math stays in its $...$ form so that a client-side renderer can pick it up.
package digest

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Entry is one article of the preview.
type Entry struct {
	Title   string
	URL     string
	Authors string
	Date    time.Time
	Journal string
	Summary string
}

// Section is a titled list of entries.
type Section struct {
	Name    string
	Entries []Entry
}

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
	})
	return policy
}

// Markdown 生成预览的 Markdown 源文本
func Markdown(title string, sections []Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escape(title))
	for _, s := range sections {
		fmt.Fprintf(&b, "## %s\n\n", escape(s.Name))
		for _, e := range s.Entries {
			fmt.Fprintf(&b, "### [%s](<%s>)\n\n", escape(e.Title), e.URL)
			fmt.Fprintf(&b, "*%s (%s", escape(e.Authors), e.Date.Format("2006-01-02"))
			if e.Journal != "" {
				b.WriteString(" " + escape(e.Journal))
			}
			b.WriteString(")*\n\n")
			if e.Summary != "" {
				b.WriteString(escape(e.Summary) + "\n\n")
			}
		}
	}
	return b.String()
}

// HTML renders the preview and sanitizes the result.
func HTML(title string, sections []Section) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(title, sections)), &buf); err != nil {
		return nil, fmt.Errorf("render digest: %w", err)
	}
	return sanitizer().SanitizeBytes(buf.Bytes()), nil
}

// escape backslash-escapes ASCII punctuation so that LaTeX text is shown
// verbatim instead of being read as Markdown.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune("\\`*_{}[]()<>#+-.!|~$&^%", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
