package journaltex

import (
	"sync"

	"github.com/riverfjs/journaltex-go/internal/latex"
	"github.com/riverfjs/journaltex-go/internal/types"
)

// 导出类型别名
type Rule = types.Rule
type Rules = types.Rules
type Dialect = latex.Dialect

var (
	defaultDialect     *Dialect
	defaultDialectOnce sync.Once
)

// DefaultRules returns a fresh copy of the default rule tables. Callers may
// modify it and pass it to NewDialect.
func DefaultRules() *Rules {
	return types.DefaultRules()
}

// NewDialect compiles rule tables into an immutable Dialect.
func NewDialect(rules *Rules) (*Dialect, error) {
	return latex.Compile(rules)
}

// DefaultDialect returns the dialect compiled from DefaultRules (singleton).
func DefaultDialect() *Dialect {
	defaultDialectOnce.Do(func() {
		defaultDialect = latex.MustCompile(types.DefaultRules())
	})
	return defaultDialect
}
