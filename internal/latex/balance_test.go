package latex

import "testing"

// TestBalanced 测试花括号平衡检查
func TestBalanced(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"simple pair", "{a}", true},
		{"nested", "{a{b}c}", true},
		{"unmatched closer", "a}", false},
		{"closer before opener", "}{", false},
		{"unmatched opener", "{a", false},
		{"escaped pair", `\{a\}`, true},
		{"escaped opener only", `\{a`, false},
		{"escaped closer inside group", `{\}}`, false},
		{"double backslash does not escape", `\\{a}`, true},
		{"triple backslash escapes", `\\\{a\\\}`, true},
		{"math", `$\frac{J_z}{J_{\perp}}$`, true},
		{"text only", "no braces at all", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Balanced(tt.in); got != tt.want {
				t.Errorf("Balanced(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
