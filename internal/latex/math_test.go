package latex

import "testing"

// TestNormalizeMath 每个用例对应一个曾经出错的真实摘要片段
func TestNormalizeMath(t *testing.T) {
	d := testDialect(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		// 上下标
		{"double superscript", `6{s}^{2}^{1}`, `6{s}^{{2}{1}}`},
		{"double subscript", `x_a_b`, `x_{ab}`},
		{"bare frac exponent", `x^\frac 12`, `x^{\frac 12}`},
		{"braced frac exponent", `x^\frac{1}{2}`, `x^{\frac{1}{2}}`},
		{"command with braced argument in subscript", `x_\mathrm{eff}`, `x_{\mathrm{eff}}`},
		{"whitelisted argument command in exponent", `x^\sqrt 2`, `x^{\sqrt 2}`},
		{"bare command in exponent", `x^\alpha + 1`, `x^{\alpha} + 1`},
		{"strange exponent", `\mathcal{U}^\mathcal{H}`, `\mathcal{U}^{\mathcal{H}}`},
		{"trailing superscript", `x^`, `x\^`},
		{"trailing subscript", `x_`, `x\_`},
		{"already escaped trailing subscript", `\_`, `\_`},
		{"trailing superscript after line break", `x\\^`, `x\ \^`},

		// 字符转义与删除
		{"html entity already decoded", `\text{spin}>1/2`, `\text{spin}>1/2`},
		{"percent", `50%`, `50\%`},
		{"escaped percent", `50\%`, `50\%`},
		{"hash at start", `#1`, `\#1`},
		{"consecutive hashes", `##`, `\#\#`},
		{"alignment dropped", `a & b`, `a  b`},
		{"escaped ampersand kept", `a \& b`, `a \& b`},
		{"left right dropped", `\left( x \right)`, `( x )`},
		{"leftarrow kept", `a \leftarrow b`, `a \leftarrow b`},
		{"textit dropped", `\textit{x}`, `{x}`},

		// 结构
		{"line break", `x\\y`, `x\ y`},
		{"label", `a\label{eq:1}`, `a`},
		{"only label", `\label{eq:1}`, ``},
		{"newline", "a\nb", `a b`},
		{"stackrel hat", `\stackrel{^}{p}`, `\hat{p}`},
		{"bold font", `{\bf x}`, `\mathbf{x}`},

		// 命令白名单
		{"space before backslash", `\hbar\omega`, `\hbar \omega`},
		{"space before digit", `\alpha2`, `\alpha 2`},
		{"space before slash", `m\Omega/\hbar k_{\ell}^2<1`, `m\Omega /\hbar k_{\ell}^2<1`},
		{"nested argument commands", `\text{\ensuremath{\sqrt{q}}}`, `\text{\ensuremath{\sqrt{q}}}`},
		{"fractions", `\frac{J_z}{J_{\perp}}=-\frac{1}{2}`, `\frac{J_z}{J_{\perp}}=-\frac{1}{2}`},
		{"relation", `E \simeq 152`, `E \simeq 152`},
		{"command before space", `{\mathbb C}`, `{\mathbb C}`},
		{"mathrm subscript", `T_{\mathrm{N1}}`, `T_{\mathrm{N1}}`},
		{"unknown command degraded", `\mycmd{x}`, `mycmd{x}`},
		{"tag degraded", ` R = 1 \tag{A2} `, ` R = 1 tag{A2} `},

		// 环境
		{"whitelisted environment", `\begin{pmatrix} a & b \end{pmatrix}`, `\begin{pmatrix} a  b \end{pmatrix}`},
		{"unknown environment degraded", `\begin{bmatrix}x\end{bmatrix}`, `begin{bmatrix}xend{bmatrix}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.NormalizeMath(tt.in); got != tt.want {
				t.Errorf("NormalizeMath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestNormalizeMath_NestedEnvironments 测试嵌套的同名环境各自配对
func TestNormalizeMath_NestedEnvironments(t *testing.T) {
	d := testDialect(t)
	in := `\begin{matrix}\begin{matrix}a\end{matrix}\end{matrix}`
	if got := d.NormalizeMath(in); got != in {
		t.Errorf("NormalizeMath(%q) = %q, want unchanged", in, got)
	}
}

// TestCollapseScripts 测试上下标合并取最靠左的匹配
func TestCollapseScripts(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`a^b^c`, `a^{bc}`},
		{`a_b_c`, `a_{bc}`},
		{`a_b_c^d^e`, `a_{bc}^{de}`},
		{`a^{12}^{3}`, `a^{{12}{3}}`},
		{`a^b_c`, `a^b_c`},
		{``, ``},
	}
	for _, tt := range tests {
		if got := collapseScripts(tt.in); got != tt.want {
			t.Errorf("collapseScripts(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
