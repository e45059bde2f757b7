package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	braceRemover = strings.NewReplacer("{", "", "}", "")
	// {\textasciicircum} and friends are emitted by the escaper and must
	// stay grouped, otherwise the macro swallows the following letters.
	macroGroup = regexp.MustCompile(`\{\\[a-zA-Z]+\}`)
)

// CleanAuthor removes grouping braces from a normalized author name. Names
// are short and never contain math worth keeping.
func CleanAuthor(name string) string {
	var b strings.Builder
	pos := 0
	for _, m := range macroGroup.FindAllStringIndex(name, -1) {
		b.WriteString(braceRemover.Replace(name[pos:m[0]]))
		b.WriteString(name[m[0]:m[1]])
		pos = m[1]
	}
	b.WriteString(braceRemover.Replace(name[pos:]))
	return b.String()
}

// SplitName reduces a full name to its first and last word.
func SplitName(full string) (first, last string) {
	fields := strings.Fields(norm.NFC.String(full))
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], fields[0]
	default:
		return fields[0], fields[len(fields)-1]
	}
}

// ContainsNFC reports whether substr is within s after composing both.
func ContainsNFC(s, substr string) bool {
	return strings.Contains(norm.NFC.String(s), norm.NFC.String(substr))
}
