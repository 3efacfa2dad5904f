package utils

import "testing"

func TestValidateUsername(t *testing.T) {
	valid := []string{"ada", "user_42", "A1b2C3", "abcdefghij0123456789"}
	for _, name := range valid {
		if err := ValidateUsername(name); err != nil {
			t.Errorf("ValidateUsername(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "ab", "_leading", "has space", "has-dash", "héllo", "abcdefghij0123456789x"}
	for _, name := range invalid {
		if err := ValidateUsername(name); err == nil {
			t.Errorf("ValidateUsername(%q) = nil, want error", name)
		}
	}
}

func TestNormalizeUsername(t *testing.T) {
	if got := NormalizeUsername("  MoodFan42 "); got != "moodfan42" {
		t.Errorf("NormalizeUsername = %q, want %q", got, "moodfan42")
	}
}
