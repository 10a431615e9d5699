package surveydoc

import (
	"reflect"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Ada Lovelace", "Ada Lovelace"},
		{"O'Brien, Pat", "OBrien Pat"},
		{"a/b\\c:d*e?f", "abcdef"},
		{"  spaced  ", "spaced"},
		{"José Núñez - Show_1", "José Núñez - Show_1"},
		{"<>|", ""},
		{" . leading", "leading"},
	}

	for _, tt := range tests {
		once := SanitizeFileName(tt.input)
		if once != tt.expected {
			t.Errorf("SanitizeFileName(%q) = %q, expected %q", tt.input, once, tt.expected)
		}
		if twice := SanitizeFileName(once); twice != once {
			t.Errorf("SanitizeFileName not idempotent for %q: %q then %q", tt.input, once, twice)
		}
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name     string
		group    string
		rowIndex int
		expected string
	}{
		{"Ada Lovelace", "Spring Show", 0, "Ada Lovelace - Spring Show"},
		{"Ada Lovelace", "", 0, "Ada Lovelace"},
		{"", "Spring Show", 0, "Spring Show"},
		{"", "", 4, "row_5"},
		{"???", "", 1, "row_2"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.name, tt.group, " - ", tt.rowIndex); got != tt.expected {
			t.Errorf("OutputName(%q, %q) = %q, expected %q", tt.name, tt.group, got, tt.expected)
		}
	}
}

func TestSplitMatchedFiles(t *testing.T) {
	tests := []struct {
		value    string
		expected []string
	}{
		{"", nil},
		{"   ", nil},
		{"./a.pdf", []string{"./a.pdf"}},
		{"./a.pdf| ./b.pdf", []string{"./a.pdf", "./b.pdf"}},
		{"./a.pdf| | ./b.pdf| ", []string{"./a.pdf", "./b.pdf"}},
	}

	for _, tt := range tests {
		if got := SplitMatchedFiles(tt.value, "| "); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitMatchedFiles(%q) = %#v, expected %#v", tt.value, got, tt.expected)
		}
	}
}
