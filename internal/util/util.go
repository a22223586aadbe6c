package util

import "strings"

// SplitNames splits a comma separated list of names, trimming whitespace and dropping blanks
func SplitNames(s string) []string {
	names := make([]string, 0)
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		names = append(names, name)
	}

	return names
}
