package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/format"
)

func TestRemoveAccents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "french accents",
			input:    "naïve café",
			expected: "naive cafe",
		},
		{
			name:     "spanish characters",
			input:    "señor jalapeño",
			expected: "senor jalapeno",
		},
		{
			name:     "german umlauts",
			input:    "über schön",
			expected: "uber schon",
		},
		{
			name:     "plain ascii untouched",
			input:    "hello world",
			expected: "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, format.RemoveAccents(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "accents and ampersand",
			input:    "Café & Bar",
			expected: "cafe-bar",
		},
		{
			name:     "surrounding and internal whitespace",
			input:    "  Hello   World  ",
			expected: "hello-world",
		},
		{
			name:     "underscores become hyphens",
			input:    "snake_case_title",
			expected: "snake-case-title",
		},
		{
			name:     "already slugged",
			input:    "already-slugged",
			expected: "already-slugged",
		},
		{
			name:     "punctuation stripped",
			input:    "What's New? (2024 Edition!)",
			expected: "whats-new-2024-edition",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, format.Slugify(tt.input))
		})
	}
}
