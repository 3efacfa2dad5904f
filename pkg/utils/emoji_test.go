package utils

import "testing"

func TestIsEmojiOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"single emoji", "😀", true},
		{"multiple emoji", "😀😢", true},
		{"skin tone modifier", "👍🏽", true},
		{"zwj family sequence", "👨‍👩‍👧", true},
		{"heart with variation selector", "❤️", true},
		{"plain text", "abc", false},
		{"emoji then letter", "😀a", false},
		{"letter then emoji", "a😀", false},
		{"digit", "1", false},
		{"empty", "", false},
		{"whitespace between emoji", "😀 😢", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmojiOnly(tt.in); got != tt.want {
				t.Errorf("IsEmojiOnly(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
