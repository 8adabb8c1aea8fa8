package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "comma delimited",
			input:    "go,web,api",
			expected: []string{"go", "web", "api"},
		},
		{
			name:     "whitespace trimmed",
			input:    " go , web ,  api ",
			expected: []string{"go", "web", "api"},
		},
		{
			name:     "empty entries dropped",
			input:    "go,,web,  ,",
			expected: []string{"go", "web"},
		},
		{
			name:     "single tag",
			input:    "golang",
			expected: []string{"golang"},
		},
		{
			name:     "empty input yields empty slice",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTags(tt.input)
			assert.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}
