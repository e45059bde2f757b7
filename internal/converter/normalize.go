package converter

import (
	"fmt"
	"strings"

	"github.com/riverfjs/journaltex-go/internal/latex"
)

// Scope 花括号不平衡发生的范围
type Scope int

const (
	// ScopeWholeInput means the input as a whole is unbalanced.
	ScopeWholeInput Scope = iota
	// ScopeMathRegion means one math region is unbalanced.
	ScopeMathRegion
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeWholeInput:
		return "input"
	case ScopeMathRegion:
		return "math"
	default:
		return "unknown"
	}
}

// BraceImbalanceError is returned when normalization refuses its input.
// Error returns the diagnostic text that callers embed in place of the field.
type BraceImbalanceError struct {
	Scope Scope
	// Region is the index of the offending math region (ScopeMathRegion only).
	Region int
}

func (e *BraceImbalanceError) Error() string {
	if e.Scope == ScopeMathRegion {
		return "Curly braces not balanced in inline math."
	}
	return "Curly braces not balanced."
}

// Is matches any BraceImbalanceError of the same scope.
func (e *BraceImbalanceError) Is(target error) bool {
	t, ok := target.(*BraceImbalanceError)
	return ok && t.Scope == e.Scope
}

// Options 控制预处理
type Options struct {
	// FlattenHTML strips tags and decodes entities before anything else.
	FlattenHTML bool
}

// Normalize 将任意文本片段转换为可以安全编译的 LaTeX 文本
//
// 步骤顺序是约定的一部分：
//  1. 展平 HTML，删除 \require，保护 \$
//  2. 整体花括号检查，扫描数学区域并逐个检查
//  3. 数学区域独立归一化，区域外文本转义并剥离反斜杠
//  4. 重新拼装，执行最终替换，还原 \$，去除首尾空白
func Normalize(raw string, d *latex.Dialect, opts Options) (string, error) {
	s := raw
	if opts.FlattenHTML {
		s = FlattenHTML(s)
	}
	s = StripRequire(s)
	s = ProtectEscapedDollar(s)

	if !latex.Balanced(s) {
		return "", &BraceImbalanceError{Scope: ScopeWholeInput}
	}

	regions := d.FindMath(s)
	for i, r := range regions {
		if !latex.Balanced(r.Whole) {
			return "", &BraceImbalanceError{Scope: ScopeMathRegion, Region: i}
		}
	}

	segs := Split(s, regions)
	if n := segs.MathCount(); n != len(regions) {
		return "", fmt.Errorf("split kept %d of %d math regions", n, len(regions))
	}
	math := make([]string, len(regions))
	for i, r := range regions {
		math[i] = d.NormalizeMath(r.Content)
	}

	segs = EscapeOutside(segs, d)

	out, restored := segs.Assemble(math)
	if restored != len(regions) {
		return "", fmt.Errorf("reassembly restored %d of %d math regions", restored, len(regions))
	}

	for _, sub := range d.Final() {
		out = sub.Apply(out)
	}
	out = RestoreEscapedDollar(out)
	return strings.TrimSpace(out), nil
}
