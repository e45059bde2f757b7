// Package latex holds the math-aware parts of the normalizer: the brace
// balancer, the math region scanner and the inside-math normalizer.
//
// All behaviour is driven by a compiled Dialect. A Dialect is immutable after
// Compile and safe for concurrent use.
package latex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/riverfjs/journaltex-go/internal/types"
)

// Substitution 编译后的替换规则
type Substitution struct {
	Pattern     *regexp.Regexp
	Replacement string
	Literal     bool
}

// Apply runs the substitution over text in a single left-to-right pass.
func (s Substitution) Apply(text string) string {
	if s.Literal {
		return s.Pattern.ReplaceAllLiteralString(text, s.Replacement)
	}
	return s.Pattern.ReplaceAllString(text, s.Replacement)
}

// Dialect 由 types.Rules 编译得到的只读正则集合
type Dialect struct {
	candidates   *regexp.Regexp
	envBegin     *regexp.Regexp
	wrapCommand  *regexp.Regexp
	spaceCommand *regexp.Regexp
	reescape     *regexp.Regexp

	outside []Substitution
	before  []Substitution
	final   []Substitution
}

// Compile 编译规则表
//
// 所有名称都会被转义，因此白名单中可以包含任意字符；规则中的 Pattern 按 RE2 语法解析。
func Compile(rules *types.Rules) (*Dialect, error) {
	if rules == nil {
		rules = types.DefaultRules()
	}
	if len(rules.MathEnvironments) == 0 {
		return nil, fmt.Errorf("compile dialect: no math environments configured")
	}
	commands := append(append([]string{}, rules.CommandsWithArgs...), rules.CommandsNoArgs...)
	if len(commands) == 0 {
		return nil, fmt.Errorf("compile dialect: empty command whitelist")
	}

	d := &Dialect{}

	d.candidates = regexp.MustCompile(`(?s)\\begin\{(` + alternation(rules.MathEnvironments) + `)\*?\}` +
		`|\\\[(.+?)\\\]` +
		`|\\\((.+?)\\\)` +
		`|\$\$([^$]+)\$\$` +
		`|\$([^$]+)\$`)

	if len(rules.Environments) > 0 {
		d.envBegin = regexp.MustCompile(`\\begin\{(` + alternation(rules.Environments) + `)\*?\}`)
	}

	cmds := alternation(commands)
	wrap := `([\^_])(?:\\n)*\s*(\\[a-zA-Z]+(?:\{[^}]+\})+`
	if len(rules.CommandsWithArgs) > 0 {
		wrap += `|\\(?:` + alternation(rules.CommandsWithArgs) + `)\s*\S+`
	}
	d.wrapCommand = regexp.MustCompile(wrap + `)`)
	d.spaceCommand = regexp.MustCompile(`\\(` + cmds + `)(\\|[0-9]|/)`)
	d.reescape = regexp.MustCompile(`\\(` + cmds + `)(\s|\^|_|\{|\}|\(|\)|\[|\]|=|\z)`)

	var err error
	if d.outside, err = compileRules("outside_math", rules.OutsideMath); err != nil {
		return nil, err
	}
	if d.before, err = compileRules("before_strip", rules.BeforeStrip); err != nil {
		return nil, err
	}
	if d.final, err = compileRules("final", rules.Final); err != nil {
		return nil, err
	}
	return d, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(rules *types.Rules) *Dialect {
	d, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return d
}

// Outside returns the outside-math protection rules in order. The slice must not be modified.
func (d *Dialect) Outside() []Substitution { return d.outside }

// BeforeStrip returns the rules applied right before the backslash strip.
func (d *Dialect) BeforeStrip() []Substitution { return d.before }

// Final returns the rules applied to the reassembled string.
func (d *Dialect) Final() []Substitution { return d.final }

func compileRules(table string, rules []types.Rule) ([]Substitution, error) {
	out := make([]Substitution, 0, len(rules))
	for i, r := range rules {
		if r.Pattern == "" {
			continue
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile %s rule %d (%q): %w", table, i, r.Pattern, err)
		}
		out = append(out, Substitution{Pattern: re, Replacement: r.Replacement, Literal: r.Literal})
	}
	return out, nil
}

// alternation 生成 a|b|c，保持原有顺序（先匹配的分支优先）
func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(quoted, "|")
}
