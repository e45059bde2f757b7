package converter

import (
	"github.com/riverfjs/journaltex-go/internal/buffer"
	"github.com/riverfjs/journaltex-go/internal/latex"
)

// SegmentKind 片段类型
type SegmentKind int

const (
	// SegmentText is text outside math that later passes may still rewrite.
	SegmentText SegmentKind = iota
	// SegmentMath stands for the math region with index Region.
	SegmentMath
	// SegmentProtected holds final text that no later pass may touch.
	SegmentProtected
)

// Segment 工作字符串中的一段
//
// 用有序片段列表代替字符串内嵌的占位符：受保护内容不在任何文本片段中，
// 因此后续替换不可能与它冲突。
type Segment struct {
	Kind   SegmentKind
	Text   string
	Region int
}

// Segments 按文档顺序排列的片段
type Segments []Segment

// Split cuts s around the given regions, which must be ordered and
// non-overlapping as returned by Dialect.FindMath.
func Split(s string, regions []latex.MathRegion) Segments {
	segs := make(Segments, 0, 2*len(regions)+1)
	pos := 0
	for i, r := range regions {
		if r.Start > pos {
			segs = append(segs, Segment{Kind: SegmentText, Text: s[pos:r.Start]})
		}
		segs = append(segs, Segment{Kind: SegmentMath, Region: i})
		pos = r.End
	}
	if pos < len(s) {
		segs = append(segs, Segment{Kind: SegmentText, Text: s[pos:]})
	}
	return segs
}

// Protect replaces every match of sub inside text segments by a protected
// segment holding the expanded replacement.
func (ss Segments) Protect(sub latex.Substitution) Segments {
	out := make(Segments, 0, len(ss))
	for _, seg := range ss {
		if seg.Kind != SegmentText {
			out = append(out, seg)
			continue
		}
		matches := sub.Pattern.FindAllStringSubmatchIndex(seg.Text, -1)
		pos := 0
		for _, m := range matches {
			if m[0] == m[1] {
				continue
			}
			if m[0] > pos {
				out = append(out, Segment{Kind: SegmentText, Text: seg.Text[pos:m[0]]})
			}
			replacement := sub.Replacement
			if !sub.Literal {
				replacement = string(sub.Pattern.ExpandString(nil, sub.Replacement, seg.Text, m))
			}
			out = append(out, Segment{Kind: SegmentProtected, Text: replacement})
			pos = m[1]
		}
		if pos < len(seg.Text) {
			out = append(out, Segment{Kind: SegmentText, Text: seg.Text[pos:]})
		}
	}
	return out
}

// MapText applies f to every text segment.
func (ss Segments) MapText(f func(string) string) Segments {
	for i := range ss {
		if ss[i].Kind == SegmentText {
			ss[i].Text = f(ss[i].Text)
		}
	}
	return ss
}

// MathCount returns the number of math segments.
func (ss Segments) MathCount() int {
	n := 0
	for _, seg := range ss {
		if seg.Kind == SegmentMath {
			n++
		}
	}
	return n
}

// Assemble writes all segments into one string; math segments take their
// normalized content from math by index.
func (ss Segments) Assemble(math []string) (string, int) {
	tb := buffer.New()
	for _, seg := range ss {
		switch seg.Kind {
		case SegmentMath:
			tb.WriteMath(math[seg.Region])
		default:
			tb.Write(seg.Text)
		}
	}
	return tb.String(), tb.MathCount()
}
