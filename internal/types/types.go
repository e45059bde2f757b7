package types

import (
	"regexp"
	"time"
)

// Rule 表示一条有序替换规则
//
// Pattern 是 RE2 正则表达式；Replacement 可以通过 ${1} 引用捕获组。
// Literal 为 true 时 Replacement 按字面量插入（不展开 $）。
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Literal     bool   `yaml:"literal,omitempty"`
}

// Rules 归一化器使用的全部配置表
//
// 表中顺序即应用顺序，调整顺序会改变输出。
type Rules struct {
	// MathEnvironments are the named display environments treated as math regions.
	MathEnvironments []string `yaml:"math_environments"`
	// CommandsNoArgs keep their backslash inside math (greek letters, relations, arrows).
	CommandsNoArgs []string `yaml:"commands_no_args"`
	// CommandsWithArgs keep their backslash and get braced when used as a script argument.
	CommandsWithArgs []string `yaml:"commands_with_args"`
	// Environments keep their \begin/\end wrapper inside math.
	Environments []string `yaml:"environments"`
	// OutsideMath rules are protected from the backslash strip; Replacement is inserted after it.
	OutsideMath []Rule `yaml:"outside_math"`
	// BeforeStrip rules run on text outside math right before the backslash strip.
	BeforeStrip []Rule `yaml:"before_strip"`
	// Final rules run on the reassembled string.
	Final []Rule `yaml:"final"`
}

// prependBackslash 在数学环境外没有反斜杠就没有意义（或危险）的序列
var prependBackslash = []string{"emph{", "textit{", "textbf{", "_", "&", "$", "%"}

// DefaultRules 返回默认的规则表
func DefaultRules() *Rules {
	outside := []Rule{
		{Pattern: `\^`, Replacement: `{\textasciicircum}`, Literal: true},
		{Pattern: `\{\\deg\}`, Replacement: `$^{\circ}$`, Literal: true},
		{Pattern: `#`, Replacement: `\#`, Literal: true},
		{Pattern: `\\'`, Replacement: `\'`, Literal: true},
	}
	for _, seq := range prependBackslash {
		outside = append(outside, Rule{
			Pattern:     `\\*` + regexp.QuoteMeta(seq),
			Replacement: `\` + seq,
			Literal:     true,
		})
	}

	return &Rules{
		MathEnvironments: []string{"equation", "align"},
		CommandsNoArgs: []string{
			"alpha", "aleph", "beta", "chi", "delta", "partial", "epsilon", "varepsilon", "exists", "eta", "gamma", "kappa", "lambda", "mu", "nu", "nabla", "omega", "pi", "varpi", "psi", "varphi", "phi", "tau", "theta", "vartheta", "rho", "varrho", "sigma", "upsilon", "varsigma", "vee", "xi", "zeta",
			"ell",
			"ll", "leq", "le", "gg", "geq", "ge", "approx", "equiv", "simeq", "sim",
			"pm", "mp",
			"cdot", "cdots", "dots", "ldots",
			"dag", "infty", "hbar",
			"Delta", "Gamma", "Omega", "Lambda", "Phi", "Pi", "Psi", "Sigma", "Theta", "Upsilon", "Xi", "Zeta",
			"Re", "Im", "Vert",
			"Leftrightarrow", "Leftarrow", "Rightarrow", "Longleftrightarrow", "Longleftarrow", "Longrightarrow", "wedge",
			"to", "leftrightarrow", "leftarrow", "rightarrow", "longleftrightarrow", "longleftarrow", "longrightarrow", "uparrow", "downarrow",
			"parallel", "perp", "mapsto", "longmapsto", "not", "prime",
			"langle", "rangle",
			"in",
			"cup", "times", "prod", "otimes", "propto", "circ", "setminus", "forall", "emptyset", "subset", "supset",
			"quad", "qquad", "hat", "widehat",
		},
		CommandsWithArgs: []string{
			"binom", "sqrt", "overset", "int", "frac",
			"exp", "ln", "log", "cos", "sin", "tan",
			"sum",
			"mathrm", "text", "ensuremath", "mathbf", "mathbb", "mathcal", "overline",
		},
		Environments: []string{"cases", "matrix", "pmatrix", "array"},
		OutsideMath:  outside,
		BeforeStrip: []Rule{
			{Pattern: `\\"o`, Replacement: "ö", Literal: true},
			{Pattern: `\\"a`, Replacement: "ä", Literal: true},
			{Pattern: `\\"u`, Replacement: "ü", Literal: true},
			{Pattern: `\\"O`, Replacement: "Ö", Literal: true},
			{Pattern: `\\"A`, Replacement: "Ä", Literal: true},
			{Pattern: `\\"U`, Replacement: "Ü", Literal: true},
		},
		Final: []Rule{
			// no bibliography is available, keep the key readable
			{Pattern: `cite\{([^}]+)\}`, Replacement: `[${1}]`},
			{Pattern: `\\*mathbit`, Replacement: ``},
			// a bare _ or ^ would eat the closing brace
			{Pattern: `\{([_^])\}`, Replacement: `{\${1}}`},
		},
	}
}

// RawArticle 从 feed 中提取、尚未归一化的文章字段
type RawArticle struct {
	Title   string
	URL     string
	Date    time.Time
	Authors []string
	Summary string
	Journal string
}
