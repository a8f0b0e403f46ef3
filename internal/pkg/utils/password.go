package utils

import (
	"arogyanetra-service/internal/pkg/constvars"
	"regexp"
)

const (
	PasswordScorePerCriterion = 20
	MinimumPasswordStrength   = 60
	passwordMinLength         = 8
)

var passwordCriteria = []*regexp.Regexp{
	regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase),
	regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase),
	regexp.MustCompile(constvars.RegexContainAtLeastOneDigit),
	regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar),
}

// PasswordStrength scores 20 points for each of: length of at least 8,
// an uppercase letter, a lowercase letter, a digit and a special character.
func PasswordStrength(password string) int {
	score := 0
	if len(password) >= passwordMinLength {
		score += PasswordScorePerCriterion
	}
	for _, criterion := range passwordCriteria {
		if criterion.MatchString(password) {
			score += PasswordScorePerCriterion
		}
	}
	return score
}
