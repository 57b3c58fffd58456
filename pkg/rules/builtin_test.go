package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyAll(set RuleSet, content string) string {
	buf := []byte(content)
	for _, rule := range set {
		buf, _ = rule.Apply(buf)
	}

	return string(buf)
}

func TestBuiltin_Repairs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing_comma_between_properties",
			content: "gte: startDate\nlte: endDate\n",
			want:    "gte: startDate,\nlte: endDate\n",
		},
		{
			name:    "missing_comma_between_indented_properties",
			content: "const where = {\n  createdAt: {\n    gte: startDate\n    lte: endDate\n  }\n}\n",
			want:    "const where = {\n  createdAt: {\n    gte: startDate,\n    lte: endDate\n  }\n}\n",
		},
		{
			name:    "missing_comma_after_close_brace",
			content: "  where: {}\n  skip: 10\n",
			want:    "  where: {},\n  skip: 10\n",
		},
		{
			name:    "stray_comma_before_close",
			content: "foo(bar,\n)\n",
			want:    "foo(bar)\n",
		},
		{
			name:    "empty_date_call",
			content: "createdAt: new Date(,\n",
			want:    "createdAt: new Date(),\n",
		},
		{
			name:    "open_brace_comma_with_update_field",
			content: "const x = {, updatedAt: new Date()}\n",
			want:    "const x = { updatedAt: new Date() }\n",
		},
		{
			name:    "template_literal_stray_update_field",
			content: "const msg = `${user.name, updatedAt: new Date()}`\n",
			want:    "const msg = `${user.name}`\n",
		},
		{
			name:    "dangling_call_comma_at_end_of_line",
			content: "sendRequest(payload,\n",
			want:    "sendRequest(payload)\n",
		},
		{
			name:    "triple_close_paren_collapsed",
			content: "foo(a, b)))\n",
			want:    "foo(a, b))\n",
		},
		{
			name:    "quadruple_close_paren_collapsed",
			content: "foo(a, b))))\n",
			want:    "foo(a, b))\n",
		},
		{
			name:    "well_formed_unchanged",
			content: "const x = { a: 1, b: 2 }\n",
			want:    "const x = { a: 1, b: 2 }\n",
		},
		{
			name:    "empty_content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Builtin()

			got := applyAll(set, tt.content)
			assert.Equal(t, tt.want, got)

			again := applyAll(set, got)
			assert.Equal(t, got, again, "second pass must leave the buffer alone")
		})
	}
}

func TestCallCloseRules(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		content string
		want    string
	}{
		{
			name:    "closes_named_target",
			targets: []string{"getPaginationMeta"},
			content: "const meta = getPaginationMeta(total, limit,\n",
			want:    "const meta = getPaginationMeta(total, limit)\n",
		},
		{
			name:    "ignores_other_calls",
			targets: []string{"getPaginationMeta"},
			content: "other(value,\n",
			want:    "other(value,\n",
		},
		{
			name:    "empty_targets_yield_empty_set",
			targets: nil,
			content: "anything(value,\n",
			want:    "anything(value,\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := CallCloseRules(tt.targets...)
			if len(tt.targets) == 0 {
				require.Empty(t, set)
			}

			got := applyAll(set, tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertyCommaRules(t *testing.T) {
	tests := []struct {
		name    string
		props   []string
		content string
		want    string
	}{
		{
			name:    "named_property_gets_comma",
			props:   []string{"gte", "lte"},
			content: "  gte: startDate\n  lte: endDate\n",
			want:    "  gte: startDate,\n  lte: endDate\n",
		},
		{
			name:    "spacing_normalized",
			props:   []string{"gte", "lte"},
			content: "  gte:startDate\n  lte: endDate\n",
			want:    "  gte: startDate,\n  lte: endDate\n",
		},
		{
			name:    "unlisted_property_untouched",
			props:   []string{"gte", "lte"},
			content: "  foo: bar\n  lte: endDate\n",
			want:    "  foo: bar\n  lte: endDate\n",
		},
		{
			name:    "unindented_property_untouched",
			props:   []string{"gte", "lte"},
			content: "gte: startDate\nlte: endDate\n",
			want:    "gte: startDate\nlte: endDate\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := PropertyCommaRules(tt.props...)
			require.NotEmpty(t, set)

			got := applyAll(set, tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertyCommaRules_EmptyNames(t *testing.T) {
	assert.Nil(t, PropertyCommaRules())
	assert.Nil(t, PropertyCommaRules(""))
}
