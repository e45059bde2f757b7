package latex

import "strings"

// MathRegion 文本中的一个数学区域
type MathRegion struct {
	Whole   string // 完整匹配，包括定界符
	Open    string
	Content string
	Close   string
	Env     string // 仅 \begin{...} 形式有值
	Start   int    // Whole 在输入中的字节偏移
	End     int
}

// 候选正则中的捕获组
const (
	groupEnv = 1 + iota
	groupBracket
	groupParen
	groupDisplay
	groupInline
)

var delimiters = map[int][2]string{
	groupBracket: {`\[`, `\]`},
	groupParen:   {`\(`, `\)`},
	groupDisplay: {`$$`, `$$`},
	groupInline:  {`$`, `$`},
}

// FindMath 返回 s 中所有互不重叠的数学区域，按出现顺序排列
//
// 同一位置上按优先级尝试：命名环境、\[...\]、\(...\)、$$...$$、$...$。
// 命名环境的结束标记必须与开始标记同名（允许带 *），找不到时该位置不算匹配。
func (d *Dialect) FindMath(s string) []MathRegion {
	var regions []MathRegion
	pos := 0
	for pos < len(s) {
		loc := d.candidates.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if loc[2*groupEnv] >= 0 {
			env := s[pos+loc[2*groupEnv] : pos+loc[2*groupEnv+1]]
			closeStart, closeEnd, ok := findEnvEnd(s, end+1, env)
			if !ok {
				pos = start + 1
				continue
			}
			regions = append(regions, MathRegion{
				Whole:   s[start:closeEnd],
				Open:    s[start:end],
				Content: s[end:closeStart],
				Close:   s[closeStart:closeEnd],
				Env:     env,
				Start:   start,
				End:     closeEnd,
			})
			pos = closeEnd
			continue
		}

		for group, delim := range delimiters {
			if loc[2*group] < 0 {
				continue
			}
			regions = append(regions, MathRegion{
				Whole:   s[start:end],
				Open:    delim[0],
				Content: s[pos+loc[2*group] : pos+loc[2*group+1]],
				Close:   delim[1],
				Start:   start,
				End:     end,
			})
			break
		}
		pos = end
	}
	return regions
}

// findEnvEnd 从 from 开始查找最近的 \end{env} 或 \end{env*}
func findEnvEnd(s string, from int, env string) (int, int, bool) {
	if from > len(s) {
		return 0, 0, false
	}
	best, bestLen := -1, 0
	for _, marker := range []string{`\end{` + env + `}`, `\end{` + env + `*}`} {
		if i := strings.Index(s[from:], marker); i >= 0 && (best < 0 || from+i < best) {
			best, bestLen = from+i, len(marker)
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, best + bestLen, true
}
