package security

import (
	"strings"
	"unicode/utf8"
)

// MinPasswordLen is the minimum number of characters a password must have.
const MinPasswordLen = 8

// SpecialChars is the fixed set of characters accepted as "special".
const SpecialChars = "!@#$%^&*()<>?/"

// Length counts characters (code points), not bytes.
func Length(password string) int {
	return utf8.RuneCountInString(password)
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsUpper reports whether r is an uppercase Latin letter.
func IsUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsLower reports whether r is a lowercase Latin letter.
func IsLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsSpecial reports whether r belongs to SpecialChars.
func IsSpecial(r rune) bool {
	return strings.ContainsRune(SpecialChars, r)
}

// ContainsAny reports whether any character of password satisfies class.
func ContainsAny(password string, class func(rune) bool) bool {
	for _, r := range password {
		if class(r) {
			return true
		}
	}
	return false
}
