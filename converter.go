package journaltex

import (
	"errors"

	"go.uber.org/zap"

	"github.com/riverfjs/journaltex-go/internal/converter"
)

// BraceImbalanceError 花括号不平衡，Error() 即应嵌入文档的诊断文本
type BraceImbalanceError = converter.BraceImbalanceError

// Scope 不平衡发生的范围
type Scope = converter.Scope

const (
	ScopeWholeInput = converter.ScopeWholeInput
	ScopeMathRegion = converter.ScopeMathRegion
)

var (
	// ErrBracesUnbalanced matches (errors.Is) a whole-input imbalance.
	ErrBracesUnbalanced error = &BraceImbalanceError{Scope: ScopeWholeInput}
	// ErrMathBracesUnbalanced matches (errors.Is) an imbalance inside a math region.
	ErrMathBracesUnbalanced error = &BraceImbalanceError{Scope: ScopeMathRegion}
)

// Normalize 将一个文本片段转换为可安全嵌入 LaTeX 文档的字符串
//
// 参数:
//   - raw: 原始文本（可能包含 HTML 和数学公式）
//   - opts: 可选配置，见 WithHTML、WithDialect
//
// 返回:
//   - string: 归一化后的文本
//   - error: 输入被拒绝时为 *BraceImbalanceError
func Normalize(raw string, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	return normalize(raw, options)
}

// EnsureLatex 与 Normalize 相同，但失败时返回诊断文本而不是错误
//
// 诊断文本本身就是合法的纯文本，可以直接写入文档。
func EnsureLatex(raw string, opts ...Option) string {
	options := applyOptions(opts...)
	return ensureLatex(raw, options)
}

func normalize(raw string, options *ConvertOptions) (string, error) {
	return converter.Normalize(raw, options.Dialect, converter.Options{
		FlattenHTML: options.FlattenHTML,
	})
}

func ensureLatex(raw string, options *ConvertOptions) string {
	out, err := normalize(raw, options)
	if err == nil {
		return out
	}
	var imbalance *BraceImbalanceError
	if errors.As(err, &imbalance) {
		Logger.Debug("input rejected",
			zap.Stringer("scope", imbalance.Scope),
			zap.Int("length", len(raw)))
		return imbalance.Error()
	}
	Logger.Error("normalization failed", zap.Error(err))
	return err.Error()
}
