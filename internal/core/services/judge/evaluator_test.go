package judge

import "testing"

func TestOutputsMatch(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		want     bool
	}{
		{"exact match", "4", "4", true},
		{"trailing newline ignored", "4", "4\n", true},
		{"surrounding whitespace ignored both sides", " 4 ", "\t4\n", true},
		{"empty matches whitespace only", "", "  \n", true},
		{"wrong value", "4", "8", false},
		{"internal whitespace significant", "a b", "a  b", false},
		{"case significant", "Yes", "yes", false},
		{"trailing text", "4", "4 x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputsMatch(tt.expected, tt.actual); got != tt.want {
				t.Fatalf("OutputsMatch(%q, %q) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}
