package tree

import "strings"

// SplitPath splits a path into its key tokens. Empty tokens produced by
// leading, trailing, or doubled separators are dropped, so "0A..0B." and
// "0A.0B" resolve identically.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, PathSeparator)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// JoinPath joins keys with the reserved separator.
func JoinPath(keys ...string) string {
	return strings.Join(keys, PathSeparator)
}

// NormalizePath re-joins the meaningful tokens of path, discarding empty
// segments.
func NormalizePath(path string) string {
	return JoinPath(SplitPath(path)...)
}
