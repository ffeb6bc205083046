package common

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitList splits a comma separated list, trimming blanks and dropping
// empty items. An empty or blank input yields nil.
func SplitList(s string) []string {
	var out []string

	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// UpperFirst returns s with its first rune upper-cased.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// Cut splits s around the first sep, trimming both halves. found reports
// whether sep was present.
func Cut(s, sep string) (before, after string, found bool) {
	before, after, found = strings.Cut(s, sep)

	return strings.TrimSpace(before), strings.TrimSpace(after), found
}
