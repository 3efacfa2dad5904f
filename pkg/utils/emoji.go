package utils

import (
	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// IsEmojiOnly reports whether text is non-empty and consists solely of emoji.
// Validation runs per grapheme cluster so multi-codepoint emoji (skin tones,
// ZWJ sequences, flags) count as a single character while any interleaved
// letter or digit fails the whole string ("😀a" is rejected).
func IsEmojiOnly(text string) bool {
	if text == "" {
		return false
	}

	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if !gomoji.ContainsEmoji(cluster) {
			return false
		}
	}
	return true
}
