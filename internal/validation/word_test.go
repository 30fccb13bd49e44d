package validation

import (
	"errors"
	"testing"
)

func TestCleanWord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "plain word",
			input: "ocean",
			want:  "ocean",
		},
		{
			name:  "word with quotes",
			input: `"ocean"`,
			want:  "ocean",
		},
		{
			name:  "word with punctuation",
			input: "c@t!",
			want:  "ct",
		},
		{
			name:  "digits only pass through",
			input: "42",
			want:  "42",
		},
		{
			name:  "mixed letters and digits keeps letters",
			input: "cat42",
			want:  "cat",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmptyWord,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: ErrEmptyWord,
		},
		{
			name:    "multiple words",
			input:   "two words",
			wantErr: ErrMultipleWords,
		},
		{
			name:    "only special characters",
			input:   "@#$%",
			wantErr: ErrInvalidWord,
		},
		{
			name:    "only quotes",
			input:   `""`,
			wantErr: ErrInvalidWord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanWord(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CleanWord(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("CleanWord(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("CleanWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
