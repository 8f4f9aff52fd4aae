package shell

import "strings"

// Tokenize trims leading and trailing spaces from line and splits it on
// single spaces, dropping the empty tokens left by repeated spaces.
// Only the space character separates tokens; tabs stay part of a token.
func Tokenize(line string) []string {
	line = strings.Trim(line, " ")
	if line == "" {
		return nil
	}

	fields := strings.Split(line, " ")
	tokens := fields[:0]
	for _, f := range fields {
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
