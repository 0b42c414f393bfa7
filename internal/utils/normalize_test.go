package utils

import (
	"testing"
)

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "cyrillic letters",
			input:    "А643ЕЕ77",
			expected: "A643EE77",
		},
		{
			name:     "lowercase with dashes",
			input:    "a-777-aa-777",
			expected: "A777AA777",
		},
		{
			name:     "lowercase cyrillic",
			input:    "а643ее77",
			expected: "A643EE77",
		},
		{
			name:     "with spaces",
			input:    "A 643 EE 77",
			expected: "A643EE77",
		},
		{
			name:     "all confusable letters",
			input:    "АВЕКМНОРСТУХ",
			expected: "ABEKMHOPCTYX",
		},
		{
			name:     "already normalized",
			input:    "A643EE77",
			expected: "A643EE77",
		},
		{
			name:     "punctuation only",
			input:    "?!, —",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizePlate(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizePlate(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizePlateIdempotent(t *testing.T) {
	inputs := []string{"А643ЕЕ77", "a-777-aa-777", "привет", "X004XX116", ""}
	for _, input := range inputs {
		once := NormalizePlate(input)
		twice := NormalizePlate(once)
		if once != twice {
			t.Errorf("NormalizePlate not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestIsValidPlate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "three digit region", input: "A777AA777", valid: true},
		{name: "two digit region", input: "A777AA77", valid: true},
		{name: "missing letter", input: "A777A77", valid: false},
		{name: "too long", input: "A777AA7777", valid: false},
		{name: "letters in digits", input: "AB77AA77", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "free-form chatter", input: "KAKDELA", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPlate(tt.input); got != tt.valid {
				t.Errorf("IsValidPlate(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "formatted with country code",
			input:    "+7 (915) 123-45-67",
			expected: "9151234567",
		},
		{
			name:     "leading eight",
			input:    "89151234567",
			expected: "9151234567",
		},
		{
			name:     "bare ten digits",
			input:    "9151234567",
			expected: "9151234567",
		},
		{
			name:     "short number kept as is",
			input:    "12345",
			expected: "12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizePhone(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, result, tt.expected)
			}
			if again := NormalizePhone(result); again != result {
				t.Errorf("NormalizePhone not idempotent for %q: %q != %q", tt.input, result, again)
			}
		})
	}
}

func TestLooksLikePhone(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"+7 (915) 123-45-67", true},
		{"89151234567", true},
		{"9151234567", true},
		{"123456789012", true},
		{"12345", false},
		{"1234567890123", false},
		{"привет", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikePhone(tt.input); got != tt.want {
			t.Errorf("LooksLikePhone(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMaskOwnerName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full russian name",
			input:    "Иванов Иван Иванович",
			expected: "И***** Иван Иванович",
		},
		{
			name:     "single character surname",
			input:    "А",
			expected: "А",
		},
		{
			name:     "surname only",
			input:    "Петров",
			expected: "П*****",
		},
		{
			name:     "extra whitespace",
			input:    "  Сидоров   Пётр  ",
			expected: "С****** Пётр",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MaskOwnerName(tt.input)
			if result != tt.expected {
				t.Errorf("MaskOwnerName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
