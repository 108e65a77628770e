// Package search holds helpers for building SQL pattern-match arguments.
package search

import "strings"

// EscapeChar is the escape character used with LIKE/ILIKE ... ESCAPE.
const EscapeChar = `\`

var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLike escapes LIKE wildcards so the keyword matches literally.
func EscapeLike(keyword string) string {
	return likeEscaper.Replace(keyword)
}

// ContainsPattern returns a LIKE pattern matching any value that contains keyword.
//
//	ContainsPattern("50%")  // "%50\%%"
func ContainsPattern(keyword string) string {
	return "%" + EscapeLike(keyword) + "%"
}
