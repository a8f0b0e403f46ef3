package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		expected int
	}{
		{"", 0},
		{"a", 20},
		{"abcdefgh", 40},
		{"Abcdefgh", 60},
		{"Abcdefg1", 80},
		{"Str0ng!Pass", 100},
		{"!", 20},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.expected, PasswordStrength(tt.password))
		})
	}
}

func TestPasswordStrength_Monotonic(t *testing.T) {
	steps := []string{"a", "aB", "aB1", "aB1!", "aB1!xxxx"}
	previous := -1
	for _, password := range steps {
		score := PasswordStrength(password)
		assert.GreaterOrEqual(t, score, previous, "adding a criterion must never lower the score")
		assert.Contains(t, []int{0, 20, 40, 60, 80, 100}, score)
		previous = score
	}
	assert.Equal(t, 100, previous)
}
