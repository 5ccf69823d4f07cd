package textnorm

import "strings"

// Rune classes for token extraction. ASCII alphanumerics and runes in the
// Arabic Unicode block form tokens; everything else separates.
const (
	classOther = iota
	classASCII
	classArabic
)

func runeClass(r rune) int {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return classASCII
	case r >= 0x0600 && r <= 0x06ff:
		return classArabic
	default:
		return classOther
	}
}

// Tokens extracts word-like tokens from normalized text: maximal runs of
// ASCII letters/digits, or maximal runs of characters in the Persian/Arabic
// Unicode block, left to right. Separator runes produce no token, and a
// script change ends the current token.
func Tokens(s string) []string {
	var tokens []string
	var current strings.Builder
	currentClass := classOther

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		class := runeClass(r)
		if class == classOther {
			flush()
			currentClass = classOther
			continue
		}
		if class != currentClass {
			flush()
			currentClass = class
		}
		current.WriteRune(r)
	}
	flush()

	return tokens
}

// NGrams produces every contiguous rune window of length n from s via a
// sliding window of step 1. A string shorter than n yields itself as the
// single n-gram; the empty string yields no n-grams.
func NGrams(s string, n int) []string {
	if s == "" {
		return nil
	}
	if n < 1 {
		n = 1
	}

	runes := []rune(s)
	if len(runes) < n {
		return []string{s}
	}

	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}
