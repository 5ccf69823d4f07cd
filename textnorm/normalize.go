package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// unifier maps script and punctuation variants to a single canonical form.
// Arabic-style yeh and kaf become their Persian counterparts, zero-width
// joiners become plain spaces, and Arabic comma/semicolon become ASCII.
var unifier = strings.NewReplacer(
	"ي", "ی", // ARABIC LETTER YEH -> FARSI YEH
	"ك", "ک", // ARABIC LETTER KAF -> KEHEH
	"‌", " ", // ZERO WIDTH NON-JOINER
	"‍", " ", // ZERO WIDTH JOINER
	"،", ",", // ARABIC COMMA
	"؛", ";", // ARABIC SEMICOLON
)

// Normalize canonicalizes raw text so downstream comparisons are script-
// and format-insensitive.
//
// Steps, in order: trim, NFKC compatibility normalization (folds Arabic
// presentation forms to base letters), Unicode case folding (non-Latin runes
// pass through unchanged), script and punctuation unification, whitespace
// collapse.
//
// Normalize is total over all string inputs and idempotent: normalizing an
// already-normalized string yields the same string. Empty or whitespace-only
// input normalizes to the empty string.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	s = unifier.Replace(s)

	return strings.Join(strings.Fields(s), " ")
}
