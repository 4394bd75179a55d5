// Package phone holds the Korean phone number predicate shared by every validator in
// the service. Request binding, the submission orchestrator and the lookup gateway all
// call IsValid so their accept/reject decisions cannot drift apart.
package phone

import (
	"regexp"
	"strings"
	"unicode"
)

// pattern accepts mobile (01X), Seoul (02), regional (03X-06X) and internet (070)
// prefixes followed by a 3-4 digit and a 4 digit group.
var pattern = regexp.MustCompile(`^(01[0-9]|02|0[3-6][0-9]|070)[0-9]{3,4}[0-9]{4}$`)

// Normalize strips every non-digit character.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsValid reports whether raw, after normalization, is an acceptable phone number.
func IsValid(raw string) bool {
	return pattern.MatchString(Normalize(raw))
}

// Format renders normalized digits with hyphens for messages (010-1234-5678).
// Invalid input is returned unchanged.
func Format(raw string) string {
	digits := Normalize(raw)
	if !pattern.MatchString(digits) {
		return raw
	}

	prefixLen := 3
	if strings.HasPrefix(digits, "02") {
		prefixLen = 2
	}

	rest := digits[prefixLen:]
	middle := len(rest) - 4

	return digits[:prefixLen] + "-" + rest[:middle] + "-" + rest[middle:]
}

// Mask hides the middle group for logs and partner dashboards (010-****-5678).
func Mask(raw string) string {
	formatted := Format(raw)
	parts := strings.Split(formatted, "-")
	if len(parts) != 3 {
		return strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return '*'
			}

			return r
		}, raw)
	}

	return parts[0] + "-" + strings.Repeat("*", len(parts[1])) + "-" + parts[2]
}
