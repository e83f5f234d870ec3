package layout

// Per-rune width classes, in canvas pixels. Scheme names and feature tags
// mix CJK and Latin text, and CJK glyphs render roughly twice as wide, so
// the card-sizing heuristic classifies each rune instead of counting them.
const (
	wideRuneWidth   = 16.0
	narrowRuneWidth = 8.5
)

// isWideRune reports whether r falls in a common CJK block. Anything
// unrecognized (including control characters) takes the narrow class;
// the heuristic never rejects input.
func isWideRune(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK Extension A
		return true
	case r >= 0x3000 && r <= 0x303F: // CJK punctuation
		return true
	case r >= 0xFF00 && r <= 0xFFEF: // full-width forms
		return true
	case r >= 0x3040 && r <= 0x30FF: // kana
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // hangul
		return true
	}
	return false
}

// TextWidth estimates the rendered width of s in canvas pixels.
func TextWidth(s string) float64 {
	var w float64
	for _, r := range s {
		if isWideRune(r) {
			w += wideRuneWidth
		} else {
			w += narrowRuneWidth
		}
	}
	return w
}
