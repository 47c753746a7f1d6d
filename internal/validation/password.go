package validation

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

var (
	ErrPasswordTooShort         = errors.New("password must be at least 8 characters")
	ErrPasswordForbiddenPattern = errors.New("password contains disallowed characters or patterns")
	ErrPasswordMissingClasses   = errors.New("password must contain at least one letter and one digit")
)

var (
	sqlKeywordPattern     = regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|CREATE)\b`)
	boolInjectionPattern  = regexp.MustCompile(`(?i)\bUNION\b|\bOR\b.*=.*|\bAND\b.*=.*`)
	forbiddenCharPattern  = regexp.MustCompile("['\"`;\\\\]")
	whitespaceOnlyPattern = regexp.MustCompile(`^\s+$`)
	letterPattern         = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern          = regexp.MustCompile(`[0-9]`)
)

// ValidatePassword applies the credential policy. Rules run in a fixed
// order and the first failing rule determines the returned error, so the
// message a caller sees for a given password is stable across releases.
//
// This is the single policy codepath: registration and password reset both
// call it, and any future credential-rotation entry point must too.
//
// Length is counted in characters, not bytes. No maximum length is imposed
// and no Unicode normalization is applied; visually equivalent strings with
// different encodings are distinct passwords. Accepted limitation.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}

	if sqlKeywordPattern.MatchString(password) ||
		boolInjectionPattern.MatchString(password) ||
		forbiddenCharPattern.MatchString(password) ||
		whitespaceOnlyPattern.MatchString(password) {
		return ErrPasswordForbiddenPattern
	}

	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return ErrPasswordMissingClasses
	}

	return nil
}

// IsPolicyViolation reports whether err is a password-policy error. Policy
// errors describe the rules, not account state, and are safe to return to
// clients verbatim.
func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPasswordForbiddenPattern) ||
		errors.Is(err, ErrPasswordMissingClasses)
}
