package ocfl

import (
	"regexp"
	"strings"
)

// phoneRe matches the canonical directory form "(407) 836-9000". Whitespace
// between the area code and the exchange is optional.
var phoneRe = regexp.MustCompile(`\((\d{3})\)\s*(\d{3})-(\d{4})`)

// loosePhoneRe matches common alternate spellings such as "407-836-9000",
// "407.836.9000" and "(407)836-9000".
var loosePhoneRe = regexp.MustCompile(`(?:\((\d{3})\)\s*|\b(\d{3})[.\- ])(\d{3})[.\-](\d{4})\b`)

// FormatPhone assembles a phone number in the canonical "(XXX) XXX-XXXX" form.
func FormatPhone(area, exchange, line string) string {
	return "(" + area + ") " + exchange + "-" + line
}

// FindPhone returns the first canonical phone number in s, formatted.
func FindPhone(s string) (string, bool) {
	m := phoneRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return FormatPhone(m[1], m[2], m[3]), true
}

// FindPhones returns every canonical phone number in s, formatted, in order
// of appearance. Duplicates are kept.
func FindPhones(s string) []string {
	matches := phoneRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	phones := make([]string, 0, len(matches))
	for _, m := range matches {
		phones = append(phones, FormatPhone(m[1], m[2], m[3]))
	}
	return phones
}

// PhoneDigits returns only the decimal digits of s.
func PhoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone converts a table cell or free-form value into the canonical
// phone form when it holds a ten-digit number (an optional leading country
// code 1 is dropped). Values that are not ten-digit numbers, such as "311",
// are returned trimmed but otherwise unchanged.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	if p, ok := FindPhone(s); ok {
		return p
	}
	if strings.Trim(s, "0123456789()-.+ ") != "" {
		return s
	}
	digits := PhoneDigits(s)
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return s
	}
	return FormatPhone(digits[:3], digits[3:6], digits[6:])
}

// NormalizePhones rewrites alternate phone spellings in text into the
// canonical form so that the directory extractors recognize them.
func NormalizePhones(text string) string {
	return loosePhoneRe.ReplaceAllStringFunc(text, func(match string) string {
		m := loosePhoneRe.FindStringSubmatch(match)
		area := m[1]
		if area == "" {
			area = m[2]
		}
		return FormatPhone(area, m[3], m[4])
	})
}
