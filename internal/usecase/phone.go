package usecase

import (
	"regexp"
	"strings"
)

const phoneCountryPrefix = "254"

// Accepts Kenyan mobile numbers after non-digits are stripped:
// 2547XXXXXXXX / 2541XXXXXXXX, 07XXXXXXXX / 01XXXXXXXX, 7XXXXXXXX / 1XXXXXXXX.
var phonePattern = regexp.MustCompile(`^(?:254|0)?[17]\d{8}$`)

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isValidPhone(s string) bool {
	return phonePattern.MatchString(stripNonDigits(s))
}

// normalizePhone canonicalizes a user-supplied number into the
// country-code-prefixed form Daraja expects. Input must already have passed
// isValidPhone; unrecognized shapes are returned digit-stripped unchanged.
func normalizePhone(s string) string {
	digits := stripNonDigits(s)
	switch {
	case strings.HasPrefix(digits, phoneCountryPrefix) && len(digits) == 12:
		return digits
	case strings.HasPrefix(digits, "0") && len(digits) == 10:
		return phoneCountryPrefix + digits[1:]
	case len(digits) == 9:
		return phoneCountryPrefix + digits
	}
	return digits
}
