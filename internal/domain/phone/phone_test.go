package phone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "mobile 11 digits", input: "01012345678", want: true},
		{name: "mobile 10 digits", input: "0111234567", want: true},
		{name: "mobile hyphenated", input: "010-1234-5678", want: true},
		{name: "mobile spaced", input: "010 1234 5678", want: true},
		{name: "seoul 9 digits", input: "02-123-4567", want: true},
		{name: "seoul 10 digits", input: "02-1234-5678", want: true},
		{name: "regional", input: "031-123-4567", want: true},
		{name: "internet phone", input: "070-1234-5678", want: true},
		{name: "empty", input: "", want: false},
		{name: "too short", input: "010-123-456", want: false},
		{name: "too long", input: "010-12345-67890", want: false},
		{name: "unknown prefix 080", input: "080-123-4567", want: false},
		{name: "unknown prefix 07 without 0", input: "071-123-4567", want: false},
		{name: "missing leading zero", input: "10-1234-5678", want: false},
		{name: "letters only", input: "phone", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsValid(tt.input))
		})
	}
}

func TestIsValid_FormattingDoesNotChangeDecision(t *testing.T) {
	t.Parallel()

	digitSequences := []string{
		"01012345678", "0212345678", "021234567", "0311234567", "07012345678",
		"0801234567", "010123", "123456789012", "0101234567890",
	}
	decorate := []func(string) string{
		func(s string) string { return s },
		func(s string) string { return strings.Join(strings.Split(s, ""), "-") },
		func(s string) string { return " " + strings.Join(strings.Split(s, ""), " ") + " " },
		func(s string) string {
			if len(s) < 7 {
				return "(" + s + ")"
			}

			return s[:3] + "-" + s[3:7] + "-" + s[7:]
		},
		func(s string) string { return "tel:" + s },
	}

	for _, digits := range digitSequences {
		want := IsValid(digits)
		for i, fn := range decorate {
			decorated := fn(digits)
			assert.Equalf(t, want, IsValid(decorated), "digits %s variant %d (%q)", digits, i, decorated)
		}
	}
}

func TestFormatAndMask(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "010-1234-5678", Format("01012345678"))
	assert.Equal(t, "02-123-4567", Format("021234567"))
	assert.Equal(t, "031-123-4567", Format("031 123 4567"))
	assert.Equal(t, "not-a-phone", Format("not-a-phone"))

	assert.Equal(t, "010-****-5678", Mask("010-1234-5678"))
	assert.Equal(t, "02-***-4567", Mask("021234567"))
	assert.Equal(t, "***", Mask("123"))
}
