package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Valid card", input: "4561261212345467", expected: true},
		{name: "Valid short number", input: "79927398713", expected: true},
		{name: "Wrong check digit", input: "4561261212345464", expected: false},
		{name: "Letters", input: "4561abc", expected: false},
		{name: "Empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLuhn(tt.input))
		})
	}
}
