package engine

// isIdentChar reports whether c can appear in a tag or method name:
// ASCII letters, digits, underscore, dollar, and period.
func isIdentChar(c int) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_' || c == '$' || c == '.'
}

// precedesRegex reports whether a slash seen after left starts a regexp
// literal rather than a division operator. Telling the two apart for sure
// would need a full parse, so the convention is that a regexp must have one
// of a small set of characters to its left.
func precedesRegex(left int) bool {
	switch left {
	case '(', ',', '=', ':', '[', '!', '&', '|', '?', '{', '}', ';':
		return true
	}
	return false
}
