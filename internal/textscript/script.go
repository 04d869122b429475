// Package textscript classifies text by the scripts it contains.
// The retrieval layer uses it to decide whether a snippet should be
// translated before display.
package textscript

// HasCJK reports whether s contains at least one codepoint in the CJK
// Unified Ideographs block (U+4E00–U+9FFF).
func HasCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

// HasLatin reports whether s contains at least one ASCII letter (A-Z or a-z).
func HasLatin(s string) bool {
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return true
		}
	}
	return false
}
