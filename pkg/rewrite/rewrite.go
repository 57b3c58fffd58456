package rewrite

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fixrc/pkg/rules"
)

// Application records how often one rule fired during a run.
type Application struct {
	Rule  string
	Count int
}

// Result is the outcome of folding a rule set over one buffer.
type Result struct {
	// OriginalContent is the buffer before any rule ran.
	OriginalContent []byte

	// Content is the buffer after the full fold.
	Content []byte

	// Changed reports whether Content differs from OriginalContent, by
	// exact byte equality.
	Changed bool

	// Applications lists the rules that fired, in application order.
	// Rules that did not match are omitted.
	Applications []Application
}

// TotalApplications returns the number of rewrites across all rules.
func (r *Result) TotalApplications() int {
	total := 0
	for _, a := range r.Applications {
		total += a.Count
	}

	return total
}

// Options tunes the optional post-fold verifiers. The zero value runs no
// verification, matching the engine's default trust-the-rules posture.
type Options struct {
	// VerifyBalance rejects a changed result whose bracket counts no
	// longer balance when the original buffer's did. Counting is naive:
	// brackets inside strings and comments count too.
	VerifyBalance bool

	// VerifyFixpoint rejects a changed result that a second full fold
	// would change again, which means the rule set oscillates or creeps
	// instead of converging.
	VerifyFixpoint bool
}

// Run folds set over content in order, each rule consuming the previous
// rule's output. It is pure: no I/O, no retained state, and the same
// buffer always produces the same result. Verifier rejections are the only
// error paths.
func Run(ctx context.Context, content []byte, set rules.RuleSet, opts Options) (*Result, error) {
	final, applications := fold(set, content)

	result := &Result{
		OriginalContent: content,
		Content:         final,
		Changed:         !bytes.Equal(final, content),
		Applications:    applications,
	}

	if result.Changed {
		zerolog.Ctx(ctx).Trace().
			Int("rules_fired", len(applications)).
			Int("rewrites", result.TotalApplications()).
			Msg("buffer changed")
	}

	if !result.Changed {
		return result, nil
	}

	if opts.VerifyBalance && balanced(content) && !balanced(final) {
		return nil, errors.Errorf("verifying balance: rewrite unbalanced a balanced buffer")
	}

	if opts.VerifyFixpoint {
		again, _ := fold(set, final)
		if !bytes.Equal(again, final) {
			return nil, errors.Errorf("verifying fixpoint: rule set did not converge after one pass")
		}
	}

	return result, nil
}

func fold(set rules.RuleSet, content []byte) ([]byte, []Application) {
	buf := content
	var applications []Application

	for _, rule := range set {
		next, count := rule.Apply(buf)
		if count > 0 {
			applications = append(applications, Application{Rule: rule.Name(), Count: count})
		}

		buf = next
	}

	return buf, applications
}
