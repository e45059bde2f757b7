package latex

// Balanced reports whether the curly braces in s are structurally balanced.
//
// A brace preceded by an odd run of backslashes is escaped. Escaped braces do
// not take part in nesting, but \{ and \} must still occur equally often.
func Balanced(s string) bool {
	var (
		depth       int
		escapedOpen int
		escapedShut int
		backslashes int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' {
			backslashes++
			continue
		}
		escaped := backslashes%2 == 1
		backslashes = 0

		switch c {
		case '{':
			if escaped {
				escapedOpen++
			} else {
				depth++
			}
		case '}':
			if escaped {
				escapedShut++
				continue
			}
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0 && escapedOpen == escapedShut
}
