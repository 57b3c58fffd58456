package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// builtin is the general repair table, in application order. The ordering
// carries real constraints:
//
//   - stray-comma-before-close must precede empty-date-call and
//     call-missing-close-paren, or `foo(bar,\n)` gets a second closer
//     instead of losing the comma.
//   - empty-date-call must precede call-missing-close-paren, which would
//     otherwise turn `new Date(,` into `new Date()` and eat the comma.
//   - template-literal-stray-update must precede update-field-close-normalize,
//     whose inserted space destroys the template rule's context.
//   - update-field-close-normalize must precede open-brace-comma so that
//     `{, updatedAt: new Date()}` ends up spaced on both sides.
var builtin = RuleSet{
	// A property line with no trailing comma directly followed by another
	// property line. The value portion may still contain an unmatched paren;
	// that cannot be verified textually.
	mustRule("missing-comma-between-properties",
		"([A-Za-z_][A-Za-z0-9_]*:[ \t]*[^,\n{}]+)\n([ \t]*)([A-Za-z_][A-Za-z0-9_]*:)",
		"$1,\n$2$3",
		"value must be comma- and brace-free on one line"),

	// A closing brace or paren followed by a property line. No check that
	// the bracket closes the object the property belongs to.
	mustRule("missing-comma-after-close",
		"([})])\n([ \t]*)([A-Za-z_][A-Za-z0-9_]*:)",
		"$1,\n$2$3",
		""),

	// A comma left dangling before a closing paren, including across a line
	// break. Cannot distinguish a legitimate trailing argument.
	mustRule("stray-comma-before-close",
		`,\s*\)`,
		")",
		"applies globally"),

	// `new Date(` glued to a following comma where the closer went missing.
	mustRule("empty-date-call",
		`new Date\(,`,
		"new Date(),",
		""),

	// A template literal interpolation that swallowed the neighboring
	// update field.
	mustRule("template-literal-stray-update",
		`\$\{([^}]+),\s*updatedAt:\s*new Date\(\)\}`,
		"${$1}",
		""),

	// Normalize the spacing of an update field jammed against its closing
	// brace.
	mustRule("update-field-close-normalize",
		`,\s*updatedAt:\s*new Date\(\)\}`,
		", updatedAt: new Date() }",
		""),

	// An open brace immediately followed by a comma.
	mustRule("open-brace-comma",
		`\{,\s*`,
		"{ ",
		""),

	// A call expression ending in a comma at end of line with no closer in
	// between. The argument span may cross lines; only the absence of `)`
	// scopes the match.
	mustRule("call-missing-close-paren",
		`(?m)([A-Za-z_][A-Za-z0-9_]*\([^)]*),[ \t]*$`,
		"$1)",
		""),

	// Three consecutive closers collapse to two. Assumes a triple close is
	// always one too many; nesting depth is never confirmed.
	mustRule("triple-close-paren",
		`\)\s*\)\s*\)`,
		"))",
		"re-applied until fewer than three remain"),
}

// Builtin returns a copy of the general repair table. Callers may append to
// the result without affecting later calls.
func Builtin() RuleSet {
	out := make(RuleSet, len(builtin))
	copy(out, builtin)

	return out
}

// CallCloseRules builds one rule per call target closing a call expression
// that was left dangling by a trailing comma at end of line, e.g.
// `getPaginationMeta(total, limit,` becoming `getPaginationMeta(total, limit)`.
// Targets are matched literally. An empty target list yields an empty set.
func CallCloseRules(targets ...string) RuleSet {
	out := make(RuleSet, 0, len(targets))
	for _, target := range targets {
		if target == "" {
			continue
		}

		out = append(out, mustRule(
			fmt.Sprintf("close-call-%s", target),
			`(`+regexp.QuoteMeta(target)+`\([^)]*),[ \t]*\n`,
			"$1)\n",
			"scoped to one call target"))
	}

	return out
}

// PropertyCommaRules builds a single rule restricting missing-comma
// insertion to the named leading properties, for files where the general
// pattern is too eager. Property names are matched literally; the follower
// property is unrestricted. Spacing after the property name is normalized
// to a single space. An empty name list yields an empty set.
func PropertyCommaRules(names ...string) RuleSet {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(name))
	}
	if len(quoted) == 0 {
		return nil
	}

	return RuleSet{mustRule(
		"named-property-comma",
		"([ \t]+)("+strings.Join(quoted, "|")+"):[ \t]*([^,\n{}]+)\n([ \t]*)([A-Za-z_][A-Za-z0-9_]*:)",
		"$1$2: $3,\n$4$5",
		"scoped to a named property set")}
}
