package converter

import (
	"strings"

	"github.com/riverfjs/journaltex-go/internal/latex"
)

// EscapeOutside 处理数学区域之外的文本
//
// 保护规则按顺序执行，每条规则的匹配都会变成受保护片段，后面的规则和反斜杠剥离都看不到它们。
// 随后执行剥离前规则，最后删除剩余文本中的全部反斜杠。
func EscapeOutside(segs Segments, d *latex.Dialect) Segments {
	for _, sub := range d.Outside() {
		segs = segs.Protect(sub)
	}
	for _, sub := range d.BeforeStrip() {
		segs = segs.MapText(sub.Apply)
	}
	return segs.MapText(stripBackslashes)
}

func stripBackslashes(s string) string {
	return strings.ReplaceAll(s, `\`, "")
}
