package rewrite

// balanced counts paren, brace, and bracket pairs independently. It has no
// lexical awareness: delimiters inside string literals and comments count
// like any other byte, which keeps the check cheap and exactly as naive as
// the rules it guards.
func balanced(content []byte) bool {
	var paren, brace, bracket int

	for _, b := range content {
		switch b {
		case '(':
			paren++
		case ')':
			paren--
		case '{':
			brace++
		case '}':
			brace--
		case '[':
			bracket++
		case ']':
			bracket--
		}

		if paren < 0 || brace < 0 || bracket < 0 {
			return false
		}
	}

	return paren == 0 && brace == 0 && bracket == 0
}
