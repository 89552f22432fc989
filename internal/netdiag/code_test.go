package netdiag

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestToCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Library Cloud", "library_cloud"},
		{"ILS", "ils"},
		{"dspace.example.edu", "dspace_example_edu"},
		{"Inter Library Loan 2.0", "inter_library_loan_2_0"},
		{"", ""},
		{"already_coded", "already_coded"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToCode(tt.name), "ToCode(%q)", tt.name)
	}
}

// TestToCodeProperties checks the identifier-derivation invariants over
// arbitrary spreadsheet-style display names.
func TestToCodeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Display names as they appear in the sheets: words, digits,
	// spaces, periods.
	displayName := gen.RegexMatch(`[A-Za-z0-9 .]*`)

	properties.Property("codes contain no upper-case letters", prop.ForAll(
		func(name string) bool {
			return !strings.ContainsFunc(ToCode(name), unicode.IsUpper)
		},
		displayName,
	))

	properties.Property("codes contain no spaces or periods", prop.ForAll(
		func(name string) bool {
			return !strings.ContainsAny(ToCode(name), " .")
		},
		displayName,
	))

	properties.Property("same name always yields the same code", prop.ForAll(
		func(name string) bool {
			return ToCode(name) == ToCode(name)
		},
		displayName,
	))

	properties.Property("coding is idempotent", prop.ForAll(
		func(name string) bool {
			code := ToCode(name)
			return ToCode(code) == code
		},
		displayName,
	))

	properties.TestingRun(t)
}
