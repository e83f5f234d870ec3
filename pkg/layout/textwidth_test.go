package layout

import "testing"

func TestTextWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0},
		{"latin", "abc", 3 * narrowRuneWidth},
		{"cjk", "形碼", 2 * wideRuneWidth},
		{"mixed", "a形", narrowRuneWidth + wideRuneWidth},
		{"kana", "かな", 2 * wideRuneWidth},
		{"hangul", "한", wideRuneWidth},
		{"fullwidth", "Ａ", wideRuneWidth},
		{"cjk punctuation", "、", wideRuneWidth},
		{"control char falls back narrow", "\x01", narrowRuneWidth},
		{"digits", "19830000", 8 * narrowRuneWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextWidth(tt.text); got != tt.want {
				t.Errorf("TextWidth(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
