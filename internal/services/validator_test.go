package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidResume(t *testing.T) {
	validator := NewValidatorService()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "two indicators",
			text: "Experience at Acme Corp. Education: BSc Computing.",
			want: true,
		},
		{
			name: "one indicator",
			text: "Experience at Acme Corp and nothing else.",
			want: false,
		},
		{
			name: "no indicators",
			text: "A shopping list: milk, eggs, bread.",
			want: false,
		},
		{
			name: "empty text",
			text: "",
			want: false,
		},
		{
			name: "mixed case indicators",
			text: "SKILLS and EDUCATION sections in caps.",
			want: true,
		},
		{
			name: "indicators inside larger words still count",
			text: "An experienced historian.",
			want: true,
		},
		{
			name: "all indicators",
			text: "summary experience education skills projects history",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsValidResume(tt.text))
		})
	}
}
