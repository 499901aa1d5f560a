package assets

import (
	"regexp"
	"strings"
)

// Pattern is a compiled glob used for asset path routing.
//
// Grammar:
//
//	**  any run of characters, including '/'
//	*   any run of characters except '/'
//	?   exactly one character except '/'
//
// Everything else matches literally. A pattern always matches the whole path.
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// CompilePattern compiles a glob into a Pattern. Every input is a valid glob,
// so compilation cannot fail.
func CompilePattern(glob string) *Pattern {
	var b strings.Builder
	b.WriteString("^")

	for i := 0; i < len(glob); {
		switch {
		case strings.HasPrefix(glob[i:], "**"):
			b.WriteString(".*")
			i += 2
		case glob[i] == '*':
			b.WriteString("[^/]*")
			i++
		case glob[i] == '?':
			b.WriteString("[^/]")
			i++
		default:
			// Copy the literal run up to the next wildcard in one go so
			// multi-byte characters stay intact.
			j := i
			for j < len(glob) && glob[j] != '*' && glob[j] != '?' {
				j++
			}
			b.WriteString(regexp.QuoteMeta(glob[i:j]))
			i = j
		}
	}

	b.WriteString("$")

	return &Pattern{
		raw: glob,
		re:  regexp.MustCompile(b.String()),
	}
}

// CompilePatterns compiles a list of globs, preserving order.
func CompilePatterns(globs []string) []*Pattern {
	patterns := make([]*Pattern, 0, len(globs))
	for _, g := range globs {
		patterns = append(patterns, CompilePattern(g))
	}
	return patterns
}

// Match reports whether the whole path matches the pattern.
func (p *Pattern) Match(path string) bool {
	return p.re.MatchString(path)
}

// String returns the original glob.
func (p *Pattern) String() string {
	return p.raw
}

// MatchAny reports whether any pattern matches path.
func MatchAny(patterns []*Pattern, path string) bool {
	for _, p := range patterns {
		if p.Match(path) {
			return true
		}
	}
	return false
}
