package rules

import (
	"bytes"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// maxPasses bounds how many times a single rule is re-applied to its own
// output. Insertion rules need extra passes when consecutive matches share a
// boundary; the cap keeps a pathological pattern from looping forever.
const maxPasses = 16

// Rule is one ordered rewrite: a compiled matcher plus a replacement
// template that may reference capture groups ($1, ${name}).
type Rule struct {
	name        string
	re          *regexp.Regexp
	replacement string
	note        string
}

// New compiles pattern into a rule. The replacement template follows
// regexp.Regexp.Expand syntax.
func New(name, pattern, replacement string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, errors.Errorf("compiling rule %q: %w", name, err)
	}

	return Rule{name: name, re: re, replacement: replacement}, nil
}

func mustRule(name, pattern, replacement, note string) Rule {
	return Rule{name: name, re: regexp.MustCompile(pattern), replacement: replacement, note: note}
}

// Name returns the rule's identifier, used in reports and rule listings.
func (r Rule) Name() string {
	return r.name
}

// Pattern returns the source text of the compiled matcher.
func (r Rule) Pattern() string {
	return r.re.String()
}

// Replacement returns the replacement template.
func (r Rule) Replacement() string {
	return r.replacement
}

// Note returns the rule's scope note, empty when the rule has none.
func (r Rule) Note() string {
	return r.note
}

// Apply rewrites every non-overlapping match in content, re-scanning its own
// output until the rule stops matching (bounded by maxPasses). It returns
// the resulting buffer and the number of match sites rewritten. content is
// never mutated; an unmatched rule returns it untouched.
func (r Rule) Apply(content []byte) ([]byte, int) {
	buf := content
	applied := 0

	for i := 0; i < maxPasses; i++ {
		sites := r.re.FindAllIndex(buf, -1)
		if len(sites) == 0 {
			break
		}

		next := r.re.ReplaceAll(buf, []byte(r.replacement))
		if bytes.Equal(next, buf) {
			// Matched but rewrote to identical text, nothing to count.
			break
		}

		applied += len(sites)
		buf = next
	}

	return buf, applied
}
