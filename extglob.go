// Package extglob matches path-like strings against extended glob patterns.
//
// Besides *, ?, ** and [ ] bracket expressions, patterns may contain brace
// expansions ({a,b}, {1..10}), bare groups with postfix quantifiers
// ((a|b)+), and the extglob groups @( ), ?( ), *( ), +( ) and !( ).
// Matching is anchored: the whole candidate must match.
//
// Nothing here touches the filesystem. Malformed patterns are never an
// error; unclosed groups and brackets match their characters literally.
package extglob

// IsMatch reports whether the candidate matches the pattern. Compiled
// patterns are kept in a process-wide cache (see ClearCache).
func IsMatch(candidate, pattern string, opts ...Option) bool {
	return Parse(pattern, opts...).Match(candidate)
}
