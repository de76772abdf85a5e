package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/format"
)

func TestPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		template string
		expected string
	}{
		{
			name:     "bare digits into US template",
			input:    "5551234567",
			template: "(XXX) XXX-XXXX",
			expected: "(555) 123-4567",
		},
		{
			name:     "pre-formatted input is stripped first",
			input:    "555.123.4567",
			template: "XXX-XXX-XXXX",
			expected: "555-123-4567",
		},
		{
			name:     "international template",
			input:    "442079460958",
			template: "+XX XX XXXX XXXX",
			expected: "+44 20 7946 0958",
		},
		{
			name:     "too few digits returns input unchanged",
			input:    "12345",
			template: "(XXX) XXX-XXXX",
			expected: "12345",
		},
		{
			name:     "too many digits returns input unchanged",
			input:    "55512345678",
			template: "(XXX) XXX-XXXX",
			expected: "55512345678",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, format.Phone(tt.input, tt.template))
		})
	}
}

func TestCreditCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		sep      string
		expected string
	}{
		{
			name:     "sixteen digits in blocks of four",
			input:    "4532015112830366",
			sep:      " ",
			expected: "4532 0151 1283 0366",
		},
		{
			name:     "existing formatting is stripped first",
			input:    "4532-0151-1283-0366",
			sep:      " ",
			expected: "4532 0151 1283 0366",
		},
		{
			name:     "odd length leaves short final block",
			input:    "45320151128303661",
			sep:      "-",
			expected: "4532-0151-1283-0366-1",
		},
		{
			name:     "too short returns input unchanged",
			input:    "123456",
			sep:      " ",
			expected: "123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, format.CreditCard(tt.input, tt.sep))
		})
	}
}
