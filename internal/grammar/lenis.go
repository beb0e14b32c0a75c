package grammar

import "unicode/utf8"

// lenisMap pairs each fortis consonant with its lenis counterpart. The
// alternation applies only word-initially, after a morpheme boundary.
var lenisMap = map[rune]string{
	'p': "b",
	't': "d",
	'k': "g",
	's': "z",
	'm': "w̃",
}

// lenisOrder keeps the pair listing stable for prompt text.
var lenisOrder = []rune{'p', 't', 'k', 's', 'm'}

// ToLenis replaces a word-initial fortis consonant with its lenis form and
// leaves the rest of the word untouched. Words starting with any other
// character pass through unchanged.
func ToLenis(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	lenis, ok := lenisMap[first]
	if !ok {
		return word
	}
	return lenis + word[size:]
}

// LenisPair is a fortis consonant and its lenis counterpart.
type LenisPair struct {
	Fortis string
	Lenis  string
}

// LenisPairs returns the full fortis/lenis table in a stable order.
func LenisPairs() []LenisPair {
	pairs := make([]LenisPair, 0, len(lenisOrder))
	for _, f := range lenisOrder {
		pairs = append(pairs, LenisPair{Fortis: string(f), Lenis: lenisMap[f]})
	}
	return pairs
}
