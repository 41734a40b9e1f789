package ndb

import "strconv"

// Classify maps a value token to its typed Value. The checks run in a
// fixed order and the first match wins:
//
//  1. "true" and "false" are booleans
//  2. a token that is entirely a base-10 int64 is an integer ("01" is 1)
//  3. anything else is returned unchanged as a string ("9glenda")
//
// Classify never fails. Digit runs that overflow int64 fall back to strings.
func Classify(token string) Value {
	switch token {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if isDigits(token) {
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return Int(n)
		}
	}
	return String(token)
}

// isDigits reports whether s is a non-empty run of ASCII digits.
// strconv.ParseInt alone would also accept a leading sign.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isValueToken reports whether s is a non-empty run of ASCII letters and digits.
func isValueToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && (s[i] < '0' || s[i] > '9') {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ValidKey reports whether key is a valid identifier: one or more ASCII letters.
func ValidKey(key string) bool {
	return invalidKeyIndex(key) < 0 && key != ""
}

// invalidKeyIndex returns the byte offset of the first non-letter in key, or -1.
func invalidKeyIndex(key string) int {
	for i := 0; i < len(key); i++ {
		if !isLetter(key[i]) {
			return i
		}
	}
	return -1
}
