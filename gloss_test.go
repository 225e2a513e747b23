package signhands

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Hello", []string{"HELLO"}},
		{"hello qx", []string{"HELLO", "CHAR_Q", "CHAR_X"}},
		{"Thank you!", []string{"THANK-YOU"}},
		{"thank-you", []string{"THANK-YOU"}},
		{"Hello, my name is Qx.", []string{"HELLO", "MY", "NAME", "CHAR_I", "CHAR_S", "CHAR_Q", "CHAR_X"}},
		{"don't", []string{"CHAR_D", "CHAR_O", "CHAR_N", "CHAR_T"}},
		{"R2-D2", []string{"CHAR_R", "CHAR_2", "CHAR_D", "CHAR_2"}},
		{"eat food", []string{"EAT", "FOOD"}},
		{"naïve", []string{"CHAR_N", "CHAR_A", "CHAR_V", "CHAR_E"}},
		{"", nil},
		{"?!", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.text)
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestTokenizeOutputPlays(t *testing.T) {
	// Every token either names a catalog gesture or spells a known letter.
	for _, tok := range Tokenize("Good morning, I love you 2 much") {
		if ch, ok := ParseLetterToken(tok); ok {
			if _, ok := LookupPose(ch); !ok {
				t.Errorf("letter token %q has no pose", tok)
			}
			continue
		}
		if _, ok := LookupGesture(tok); !ok {
			t.Errorf("word token %q not in catalog", tok)
		}
	}
}
