package converter

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// escapedDollar 在扫描数学区域前代替 \$ 的私有区字符
//
// 输入中原有的该字符会先被删除，因此还原时不会产生冲突。
const escapedDollar = "\uE000"

var (
	// MathJax 用 \require 加载扩展，真正的 LaTeX 不需要
	requireRe = regexp.MustCompile(`\$\\require\{[^\]}]+\}\$`)
)

// FlattenHTML 将可能包含 HTML 标签和实体的片段转换为纯文本
//
// 不含 '<' 和 '&' 的输入原样返回。解析得到的文本按 NFC 组合。
// 没有闭合 '>' 的 '<'（如 $T<T_c$）按普通文本处理。
func FlattenHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(escapeStrayLess(s)))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	return norm.NFC.String(doc.Text())
}

// escapeStrayLess rewrites every '<' that has no '>' before the next '<' or
// the end of s as "&lt;". The HTML tokenizer would otherwise open a tag there
// and swallow the rest of the input.
func escapeStrayLess(s string) string {
	if strings.IndexByte(s, '<') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if s[i] == '<' {
			rest := s[i+1:]
			next := strings.IndexByte(rest, '<')
			if next < 0 {
				next = len(rest)
			}
			if strings.IndexByte(rest[:next], '>') < 0 {
				b.WriteString("&lt;")
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// StripRequire removes inline $\require{...}$ directives.
func StripRequire(s string) string {
	return requireRe.ReplaceAllLiteralString(s, "")
}

// ProtectEscapedDollar hides every \$ so that it can never delimit math.
func ProtectEscapedDollar(s string) string {
	s = strings.ReplaceAll(s, escapedDollar, "")
	return strings.ReplaceAll(s, `\$`, escapedDollar)
}

// RestoreEscapedDollar is the inverse of ProtectEscapedDollar.
func RestoreEscapedDollar(s string) string {
	return strings.ReplaceAll(s, escapedDollar, `\$`)
}
