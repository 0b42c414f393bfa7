package utils

import (
	"regexp"
	"strings"
)

// Cyrillic letters that look identical to Latin ones. Plates get typed in
// either alphabet, so both spellings must collapse to the same key.
var cyrillicToLatin = map[rune]rune{
	'А': 'A', 'В': 'B', 'Е': 'E', 'К': 'K', 'М': 'M', 'Н': 'H',
	'О': 'O', 'Р': 'P', 'С': 'C', 'Т': 'T', 'У': 'Y', 'Х': 'X',
}

var plateFormat = regexp.MustCompile(`^[A-Z]\d{3}[A-Z]{2}\d{2,3}$`)

// NormalizePlate uppercases the input, maps Cyrillic look-alikes to their
// Latin counterparts and strips everything that is not A-Z or 0-9.
// An empty result means the input was not a plate at all.
func NormalizePlate(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if latin, ok := cyrillicToLatin[r]; ok {
			r = latin
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPlate reports whether a normalized plate has the standard shape:
// a letter, 3 digits, 2 letters and a 2-3 digit region code.
func IsValidPlate(normalized string) bool {
	return plateFormat.MatchString(normalized)
}

// NormalizePhone strips every non-digit character and keeps the last 10
// digits, dropping country-code prefixes such as a leading 7 or 8.
func NormalizePhone(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

// LooksLikePhone reports whether the input plausibly encodes a phone
// number: 10 to 12 digits once formatting is removed.
func LooksLikePhone(raw string) bool {
	n := len(digitsOnly(raw))
	return n >= 10 && n <= 12
}

// MaskOwnerName hides the surname (first whitespace-separated token),
// keeping only its first letter. The remaining tokens pass through as is.
func MaskOwnerName(full string) string {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return ""
	}
	surname := []rune(tokens[0])
	if len(surname) > 1 {
		tokens[0] = string(surname[0]) + strings.Repeat("*", len(surname)-1)
	}
	return strings.Join(tokens, " ")
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
