package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finboard/pkg/contracts/domain"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name   string
		cell   domain.Cell
		want   float64
		wantOK bool
	}{
		{
			name:   "native number passes through",
			cell:   domain.NumberCell(42),
			want:   42,
			wantOK: true,
		},
		{
			name:   "plain string",
			cell:   domain.StringCell("150"),
			want:   150,
			wantOK: true,
		},
		{
			name:   "thousands separator stripped",
			cell:   domain.StringCell("1,234"),
			want:   1234,
			wantOK: true,
		},
		{
			name:   "multiple separators",
			cell:   domain.StringCell("1,234,567.5"),
			want:   1234567.5,
			wantOK: true,
		},
		{
			name:   "percent suffix divides by 100",
			cell:   domain.StringCell("12%"),
			want:   0.12,
			wantOK: true,
		},
		{
			name:   "negative percent",
			cell:   domain.StringCell("-4.5%"),
			want:   -0.045,
			wantOK: true,
		},
		{
			name:   "percent with unparseable body",
			cell:   domain.StringCell("abc%"),
			wantOK: false,
		},
		{
			name:   "parenthesized negative",
			cell:   domain.StringCell("(50)"),
			want:   -50,
			wantOK: true,
		},
		{
			name:   "parenthesized with separator",
			cell:   domain.StringCell("(1,250.75)"),
			want:   -1250.75,
			wantOK: true,
		},
		{
			name:   "parenthesized garbage",
			cell:   domain.StringCell("(abc)"),
			wantOK: false,
		},
		{
			name:   "leading prefix wins over trailing garbage",
			cell:   domain.StringCell("123abc"),
			want:   123,
			wantOK: true,
		},
		{
			name:   "scientific notation",
			cell:   domain.StringCell("1.5e3"),
			want:   1500,
			wantOK: true,
		},
		{
			name:   "no numeric prefix",
			cell:   domain.StringCell("abc"),
			wantOK: false,
		},
		{
			name:   "empty string",
			cell:   domain.StringCell(""),
			wantOK: false,
		},
		{
			name:   "empty cell",
			cell:   domain.Cell{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumeric(tt.cell)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseNumeric_PercentBeatsParentheses(t *testing.T) {
	// Percent handling takes priority; "(50)%" is not a negative percent,
	// its body "(50" has no numeric prefix.
	_, ok := ParseNumeric(domain.StringCell("(50)%"))
	assert.False(t, ok)
}
