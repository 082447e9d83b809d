package utils

import "testing"

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"01712345678", true},
		{"+8801712345678", true},
		{"0171234567", false},    // one digit short
		{"017123456789", false},  // one digit long
		{"+880171234567", false}, // one digit short
		{"02712345678", false},   // not a mobile prefix
		{"8801712345678", false}, // missing plus
		{"1712345678", false},
		{"", false},
		{"01712 345678", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
