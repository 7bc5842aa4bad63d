package users

import "unicode"

// StrengthLabel is a coarse password quality bucket shown next to the
// registration form.
type StrengthLabel string

const (
	StrengthWeak     StrengthLabel = "Weak password"
	StrengthModerate StrengthLabel = "Moderate password"
	StrengthStrong   StrengthLabel = "Strong password"
)

// PasswordStrength scores a password in 25-point steps: length of at least
// 8, an uppercase letter, a digit, and a non-alphanumeric character each add
// 25. Scores below 50 are weak, below 75 moderate, the rest strong.
func PasswordStrength(password string) (int, StrengthLabel) {
	score := 0
	if len(password) >= minPasswordLen {
		score += 25
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}
	if hasUpper {
		score += 25
	}
	if hasDigit {
		score += 25
	}
	if hasSymbol {
		score += 25
	}

	switch {
	case score < 50:
		return score, StrengthWeak
	case score < 75:
		return score, StrengthModerate
	default:
		return score, StrengthStrong
	}
}
