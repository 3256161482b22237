// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS
// ═══════════════════════════════════════════════════════════════════════════════
// Analyze turns raw text into an ordered sequence of tokens through a fixed,
// deterministic pipeline:
//
//  1. Lowercase
//  2. Extract maximal [a-z0-9]+ runs (anything else is a separator)
//  3. Drop stopwords and tokens of length < 2
//  4. Stem what's left
//
// Example:
//
//	Analyze("The Quick Brown Fox Jumps!") → ["quick", "brown", "fox", "jump"]
//
// The Index Builder and the Query Parser both call through this single
// function, and the scorers only see the terms it produced, so correctness
// here is load-bearing for the whole
// core: a change to tokenization or stemming invalidates any index already
// built with the old behavior.
// ═══════════════════════════════════════════════════════════════════════════════
package ember

import "strings"

// minTokenLength is the shortest token Analyze keeps after stopword
// filtering. It isn't read from Config: tokenization must stay identical
// between Build and Search, so it's a fixed part of the pipeline rather
// than a tunable.
const minTokenLength = 2

// Analyze runs the full analysis pipeline over text and returns the
// resulting token sequence, in order.
func Analyze(text string) []string {
	tokens := tokenizeAlphanumeric(text)
	tokens = filterStopwordsAndLength(tokens, minTokenLength)
	return stemAll(tokens)
}

// tokenizeAlphanumeric lowercases text and extracts maximal runs of
// lowercase ASCII letters and digits. Anything else — punctuation,
// whitespace, non-ASCII letters that survived lowercasing unchanged — is a
// separator and is dropped, never a token character.
func tokenizeAlphanumeric(text string) []string {
	lower := strings.ToLower(text)
	var tokens []string
	start := -1
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		isAlnum := (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
		if isAlnum {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			tokens = append(tokens, lower[start:i])
			start = -1
		}
	}
	if start != -1 {
		tokens = append(tokens, lower[start:])
	}
	return tokens
}

// filterStopwordsAndLength drops tokens that are stopwords or shorter than
// minLength. Order is preserved.
func filterStopwordsAndLength(tokens []string, minLength int) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t) < minLength {
			continue
		}
		if isStopword(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// stemAll applies the reduced Porter stemmer (stemmer.go) to every token.
func stemAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = stem(t)
	}
	return out
}
