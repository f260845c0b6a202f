package ui

import "regexp"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[mK]`)

// stripANSI removes SGR color codes and erase-line sequences.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
