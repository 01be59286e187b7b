package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", sanitizer.Trim("  hello\t\n"))
	assert.Equal(t, "", sanitizer.Trim("   "))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Ann@X.COM", "ann@x.com"},
		{"trims whitespace", "  ann@x.com  ", "ann@x.com"},
		{"consolidates dots", "a..nn@x.com", "a.nn@x.com"},
		{"strips edge dots", ".ann.@x.com", "ann@x.com"},
		{"not an email", "Not An Email", "not an email"},
		{"multiple at signs", "a@b@c", "a@b@c"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, sanitizer.NormalizeEmail(tc.input))
		})
	}
}
