package torcontactinfo

import "strings"

// Token is one candidate name:value pair extracted from a contact line. Raw
// may be empty but never absent.
type Token struct {
	Name string
	Raw  string
}

// Tokenize splits a contact line into candidate tokens. The line is split on
// single space characters; each word is then split once on its first colon.
// Words without a colon are free-text commentary (such as a human name ahead
// of the structured fields) and are dropped, which also disposes of the empty
// words produced by consecutive spaces.
//
// Only the first colon splits a word: a value may itself contain colons (URLs
// for example) and they stay part of Raw intact.
func Tokenize(line string) []Token {
	words := strings.Split(line, " ")
	toks := make([]Token, 0, len(words))
	for _, w := range words {
		name, raw, ok := strings.Cut(w, ":")
		if !ok {
			continue
		}
		toks = append(toks, Token{Name: name, Raw: raw})
	}
	return toks
}
