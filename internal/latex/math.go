package latex

import (
	"regexp"
	"strings"
)

// EmptyMath replaces a math region whose content normalizes to nothing.
const EmptyMath = "?empty math?"

var (
	reLineBreak     = regexp.MustCompile(`\\\\`)
	reLabel         = regexp.MustCompile(`\\label\{[^}]+\}`)
	reStackrelHat   = regexp.MustCompile(`\\stackrel\{\^\}`)
	reDroppedMacros = regexp.MustCompile(`\\(?:left|right|textit)\b`)

	// frac 作为上下标参数时需要整体加括号
	reFracBare   = regexp.MustCompile(`([\^_])(\\frac\s*(?:\\[0-9a-zA-Z]+|[0-9a-zA-Z]){2})`)
	reFracBraced = regexp.MustCompile(`([\^_])(\\frac\{[^}]+\}\{[^}]+\})`)
	reScriptCmd  = regexp.MustCompile(`([\^_])(?:\\n)*\s*(\\[a-zA-Z]+)([^a-zA-Z])`)

	reDoubleSup = regexp.MustCompile(`\^([^{]|\{[^}]+\})\^([^{]|\{[^}]+\})`)
	reDoubleSub = regexp.MustCompile(`_([^{]|\{[^}]+\})_([^{]|\{[^}]+\})`)

	reBoldFont = regexp.MustCompile(`\{\\bf\s([^}]+)\}`)

	// 未转义的 ^ _ 不能出现在末尾，否则会吞掉闭合的 $
	reTrailingScript      = regexp.MustCompile(`([^\\]|^)([\^_])$`)
	reTrailingAfterBreaks = regexp.MustCompile(`([^\\]|^)((?:\\\\)+)([\^_])$`)

	reStripCommand = regexp.MustCompile(`\\([a-zA-Z0-9])`)
)

// NormalizeMath rewrites the content of one math region into the supported
// inline dialect. Steps run in a fixed order; several of them rely on the
// output of the previous ones.
func (d *Dialect) NormalizeMath(content string) string {
	s := reLineBreak.ReplaceAllLiteralString(content, `\ `)
	s = reLabel.ReplaceAllLiteralString(s, "")
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)

	s = reStackrelHat.ReplaceAllLiteralString(s, `\hat`)

	s = escapeUnescaped(s, '%')
	s = escapeUnescaped(s, '#')

	s = dropUnescaped(s, '&')
	s = reDroppedMacros.ReplaceAllLiteralString(s, "")

	s = reFracBare.ReplaceAllString(s, "${1}{${2}}")
	s = reFracBraced.ReplaceAllString(s, "${1}{${2}}")

	s = d.wrapCommand.ReplaceAllString(s, "${1}{${2}}")
	s = reScriptCmd.ReplaceAllString(s, "${1}{${2}}${3}")

	s = collapseScripts(s)

	s = reBoldFont.ReplaceAllString(s, `\mathbf{${1}}`)

	s = reTrailingScript.ReplaceAllString(s, `${1}\${2}`)
	s = reTrailingAfterBreaks.ReplaceAllString(s, `${1}${2} \${3}`)

	s = d.spaceCommands(s)
	// \\cmd survives the strip below as \cmd
	s = d.reescape.ReplaceAllString(s, `\\${1}${2}`)
	s = d.protectEnvironments(s)

	return reStripCommand.ReplaceAllString(s, "${1}")
}

// escapeUnescaped 在每个前面没有反斜杠的 c 前插入反斜杠
func escapeUnescaped(s string, c byte) string {
	if strings.IndexByte(s, c) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] == c && (i == 0 || s[i-1] != '\\') {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// dropUnescaped removes every c that is not preceded by a backslash.
func dropUnescaped(s string, c byte) string {
	if strings.IndexByte(s, c) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == c && (i == 0 || s[i-1] != '\\') {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// collapseScripts 合并相邻的同类上下标：x^a^b -> x^{ab}，x_a_b -> x_{ab}
//
// 两种模式在同一次从左到右的扫描中竞争，取最靠左的匹配。
func collapseScripts(s string) string {
	var b strings.Builder
	pos := 0
	for pos < len(s) {
		sup := reDoubleSup.FindStringSubmatchIndex(s[pos:])
		sub := reDoubleSub.FindStringSubmatchIndex(s[pos:])
		loc, mark := sup, "^"
		if loc == nil || (sub != nil && sub[0] < loc[0]) {
			loc, mark = sub, "_"
		}
		if loc == nil {
			break
		}
		b.WriteString(s[pos : pos+loc[0]])
		b.WriteString(mark + "{")
		b.WriteString(s[pos+loc[2] : pos+loc[3]])
		b.WriteString(s[pos+loc[4] : pos+loc[5]])
		b.WriteString("}")
		pos += loc[1]
	}
	if pos == 0 {
		return s
	}
	b.WriteString(s[pos:])
	return b.String()
}

// spaceCommands separates a whitelisted command from a directly following
// backslash, digit or slash. Matches consume the next backslash, so the pass
// repeats until nothing changes.
func (d *Dialect) spaceCommands(s string) string {
	for i := 0; i <= len(s); i++ {
		next := d.spaceCommand.ReplaceAllString(s, `\${1} ${2}`)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// protectEnvironments doubles the backslash of whitelisted \begin{env} and the
// nearest matching \end{env}, so both keep one backslash after the strip.
func (d *Dialect) protectEnvironments(s string) string {
	if d.envBegin == nil || !strings.Contains(s, `\begin{`) {
		return s
	}
	marks := make(map[int]bool)
	for _, loc := range d.envBegin.FindAllStringSubmatchIndex(s, -1) {
		env := s[loc[2]:loc[3]]
		from := loc[1]
		for {
			start, end, ok := findEnvEnd(s, from, env)
			if !ok {
				break
			}
			if !marks[start] {
				marks[loc[0]] = true
				marks[start] = true
				break
			}
			from = end
		}
	}
	if len(marks) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(marks))
	for i := 0; i < len(s); i++ {
		if marks[i] {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
