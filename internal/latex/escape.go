// Package latex assembles LaTeX sources and drives the external
// pdflatex compiler.
package latex

import "strings"

var escapes = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
	'<':  `\textless{}`,
	'>':  `\textgreater{}`,
}

// Escape makes plain text safe for LaTeX, character by character.
// Values that already start with a backslash are trusted as markup
// fragments and pass through untouched.
func Escape(s string) string {
	if strings.HasPrefix(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if esc, ok := escapes[r]; ok {
			sb.WriteString(esc)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
