package plate

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		formatted  string
		regionCode string
	}{
		{
			name:       "spaces and dashes",
			input:      "ku - 123 xy",
			formatted:  "KU123XY",
			regionCode: "KU",
		},
		{
			name:       "single dash",
			input:      "W-789",
			formatted:  "W789",
			regionCode: "W",
		},
		{
			name:       "lowercase",
			input:      "w789",
			formatted:  "W789",
			regionCode: "W",
		},
		{
			name:       "leading and trailing spaces",
			input:      "  am 42 b ",
			formatted:  "AM42B",
			regionCode: "AM",
		},
		{
			name:       "trailing letters",
			input:      "l-123-abc",
			formatted:  "L123ABC",
			regionCode: "L",
		},
		{
			name:       "already normalized",
			input:      "KU123XY",
			formatted:  "KU123XY",
			regionCode: "KU",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got.Formatted != tt.formatted {
				t.Errorf("Formatted = %q, want %q", got.Formatted, tt.formatted)
			}
			if got.RegionCode != tt.regionCode {
				t.Errorf("RegionCode = %q, want %q", got.RegionCode, tt.regionCode)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "empty",
			input: "",
			want:  ErrLength,
		},
		{
			name:  "separators only",
			input: " -- - ",
			want:  ErrLength,
		},
		{
			name:  "too short",
			input: "W-1",
			want:  ErrLength,
		},
		{
			name:  "too long",
			input: "AB-1234567",
			want:  ErrLength,
		},
		{
			name:  "no digits",
			input: "ABCDEF",
			want:  ErrPattern,
		},
		{
			name:  "leading digit",
			input: "123-ABC",
			want:  ErrPattern,
		},
		{
			name:  "digits after trailing letters",
			input: "A1B2C3",
			want:  ErrPattern,
		},
		{
			name:  "three letter region",
			input: "XYZ123",
			want:  ErrRegion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	first, err := Parse("ku - 123 xy")
	if err != nil {
		t.Fatalf("first Parse returned error: %v", err)
	}

	second, err := Parse(first.Formatted)
	if err != nil {
		t.Fatalf("reparse of %q returned error: %v", first.Formatted, err)
	}
	if second != first {
		t.Errorf("reparse = %+v, want %+v", second, first)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "with spaces",
			input:    "123 ABC 02",
			expected: "123ABC02",
		},
		{
			name:     "with dashes",
			input:    "123-ABC-02",
			expected: "123ABC02",
		},
		{
			name:     "mixed case",
			input:    "123 AbC 02",
			expected: "123ABC02",
		},
		{
			name:     "punctuation",
			input:    "w.789!",
			expected: "W789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
