// Package phone canonicalizes customer phone numbers to digits-only form.
// All persistence and dedupe keys operate on the canonical form so that
// "+55 (11) 99999-0000" and "5511999990000" refer to the same customer.
package phone

import "strings"

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

func IsValid(raw string) bool {
	n := Normalize(raw)
	return len(n) >= 8 && len(n) <= 15
}
