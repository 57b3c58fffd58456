package rules

// RuleSet is an ordered list of rules. Order is semantically significant:
// each rule sees the output of the rules before it, and reordering a set
// changes what it repairs.
type RuleSet []Rule

// Names returns the rule names in application order.
func (s RuleSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, r := range s {
		names = append(names, r.name)
	}

	return names
}

// Append returns a new set with extra appended after s, preserving both
// orders. The receiver's backing array is never shared with the result, so
// per-file sets built from a common base cannot alias each other.
func (s RuleSet) Append(extra ...Rule) RuleSet {
	out := make(RuleSet, 0, len(s)+len(extra))
	out = append(out, s...)
	out = append(out, extra...)

	return out
}
