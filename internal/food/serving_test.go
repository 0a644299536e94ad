package food

import "testing"

func TestFormatServing(t *testing.T) {
	tests := []struct {
		name string
		size string
		unit string
		want string
	}{
		{
			name: "grams with decimal size",
			size: "100.0",
			unit: "g",
			want: "100g",
		},
		{
			name: "grams integer size",
			size: "30",
			unit: "g",
			want: "30g",
		},
		{
			name: "non-gram unit keeps original size text",
			size: "1",
			unit: "medium",
			want: "1medium",
		},
		{
			name: "cup",
			size: "1",
			unit: "cup",
			want: "1cup",
		},
		{
			name: "one gram is outside the truncation guard",
			size: "1",
			unit: "g",
			want: "1g",
		},
		{
			name: "fractional grams truncating to 1 keep original text",
			size: "1.5",
			unit: "g",
			want: "1.5g",
		},
		{
			name: "fractional grams below 1 keep original text",
			size: "0.5",
			unit: "g",
			want: "0.5g",
		},
		{
			name: "fractional grams above the guard are truncated",
			size: "2.7",
			unit: "g",
			want: "2g",
		},
		{
			name: "decimal non-gram size keeps original text",
			size: "2.5",
			unit: "oz",
			want: "2.5oz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatServing(tt.size, tt.unit); got != tt.want {
				t.Errorf("FormatServing(%q, %q) = %q, want %q", tt.size, tt.unit, got, tt.want)
			}
		})
	}
}
