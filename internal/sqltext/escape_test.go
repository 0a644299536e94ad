package sqltext

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no quotes",
			input: "Bench Press",
			want:  "Bench Press",
		},
		{
			name:  "single quote",
			input: "Farmer's Walk",
			want:  "Farmer''s Walk",
		},
		{
			name:  "multiple quotes",
			input: "O'Brien's",
			want:  "O''Brien''s",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("O'Brien"); got != "'O''Brien'" {
		t.Errorf("Quote() = %q, want %q", got, "'O''Brien'")
	}
}
