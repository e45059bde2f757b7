package buffer

import "github.com/riverfjs/journaltex-go/internal/latex"

// TextBuffer accumulates the reassembled output and counts the math regions
// written into it.
type TextBuffer struct {
	parts     []string
	byteLen   int
	mathCount int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends plain text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.byteLen += len(text)
}

// WriteMath appends a normalized math region as inline math. Empty content is
// written as latex.EmptyMath instead of an empty $$.
func (tb *TextBuffer) WriteMath(content string) {
	tb.mathCount++
	if content == "" {
		tb.Write(latex.EmptyMath)
		return
	}
	tb.Write("$" + content + "$")
}

// MathCount returns the number of math regions written so far.
func (tb *TextBuffer) MathCount() int {
	return tb.mathCount
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	result := make([]byte, 0, tb.byteLen)
	for _, p := range tb.parts {
		result = append(result, p...)
	}
	return string(result)
}
