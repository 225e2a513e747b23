package signhands

import (
	"strings"
	"unicode"
)

// Tokenize converts English text into gloss tokens. Words found in the
// gesture catalog become word tokens (two-word phrases such as "thank you"
// match hyphenated keywords); every other word is fingerspelled letter by
// letter. Punctuation is dropped.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToUpper(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '\''
	})
	for i, w := range words {
		words[i] = strings.Trim(strings.ReplaceAll(w, "'", ""), "-")
	}

	var tokens []string
	for i := 0; i < len(words); i++ {
		w := words[i]
		if w == "" {
			continue
		}
		if i+1 < len(words) {
			if phrase := w + "-" + words[i+1]; isKeyword(phrase) {
				tokens = append(tokens, phrase)
				i++
				continue
			}
		}
		if isKeyword(w) {
			tokens = append(tokens, w)
			continue
		}
		for _, r := range w {
			if _, ok := LookupPose(r); ok {
				tokens = append(tokens, LetterToken(r))
			}
		}
	}
	return tokens
}

func isKeyword(w string) bool {
	_, ok := catalog[w]
	return ok
}
