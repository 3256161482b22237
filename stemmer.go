// ═══════════════════════════════════════════════════════════════════════════════
// STEMMING
// ═══════════════════════════════════════════════════════════════════════════════
// stem implements a reduced Porter-style stemmer: a handful of ordered
// suffix-stripping steps, each gated by a "measure" (count of vowel→consonant
// transitions in the stem) rather than a dictionary. It is deliberately NOT
// the textbook Porter algorithm and NOT Porter2/Snowball — several of the
// classic suffix rules and gating conditions are trimmed or simplified, so it
// has to be implemented from scratch rather than delegated to a stemming
// library. Swapping in a library stemmer here would silently change which
// documents a stemmed query term matches, since this index was built with
// these exact (non-standard) reductions.
// ═══════════════════════════════════════════════════════════════════════════════
package ember

import "strings"

const vowelSet = "aeiouy"

// isVowel reports whether b counts as a vowel. 'y' is always a vowel here:
// there is no "y after consonant" distinction like the full Porter
// algorithm makes — y is simply a member of the vowel set, matching the
// source algorithm's plain `ch in "aeiouy"` test.
func isVowel(b byte) bool {
	for i := 0; i < len(vowelSet); i++ {
		if vowelSet[i] == b {
			return true
		}
	}
	return false
}

// hasVowel reports whether s contains at least one vowel.
func hasVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if isVowel(s[i]) {
			return true
		}
	}
	return false
}

// measure counts vowel-to-consonant transitions in s, reading left to
// right: "tr", "ee" and "tree" measure 0, "oats" and "trees" measure 1, and
// so on.
// This is the gate nearly every step below checks before firing.
func measure(s string) int {
	count := 0
	prevVowel := false
	for i := 0; i < len(s); i++ {
		v := isVowel(s[i])
		if prevVowel && !v {
			count++
		}
		prevVowel = v
	}
	return count
}

// step4Suffixes is the reduced Step 4 derivational-ending table, checked in
// this exact order; the first suffix that matches AND clears the measure
// gate wins.
var step4Suffixes = []struct {
	suffix, replacement string
}{
	{"ational", "ate"},
	{"tional", "tion"},
	{"enci", "ence"},
	{"anci", "ance"},
	{"izer", "ize"},
	{"ator", "ate"},
	{"alli", "al"},
	{"ousli", "ous"},
	{"entli", "ent"},
	{"eli", "e"},
	{"fulness", "ful"},
	{"iveness", "ive"},
	{"ization", "ize"},
	{"ation", "ate"},
	{"ness", ""},
	{"ment", ""},
}

// stem reduces word to its root form. Words shorter than 3 characters are
// returned unchanged.
func stem(word string) string {
	if len(word) < 3 {
		return word
	}

	// Step 1: plurals & possessive-ish endings.
	switch {
	case strings.HasSuffix(word, "sses"):
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "ies"):
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "ss"):
		// "caress" stays.
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "us") && !strings.HasSuffix(word, "ss"):
		word = word[:len(word)-1]
	}

	// Step 2: "-eed" / "-ed" / "-ing".
	switch {
	case strings.HasSuffix(word, "eed"):
		if measure(word[:len(word)-3]) > 0 {
			word = word[:len(word)-1] // "agreed" → "agree"
		}
	case strings.HasSuffix(word, "ed"):
		stemPart := word[:len(word)-2]
		if hasVowel(stemPart) {
			word = applyEdIngCleanup(stemPart)
		}
	case strings.HasSuffix(word, "ing"):
		stemPart := word[:len(word)-3]
		if hasVowel(stemPart) {
			word = applyEdIngCleanup(stemPart)
		}
	}

	// Step 3: trailing "y" becomes "i" when the part before it contains a
	// vowel ("happy" → "happi").
	if strings.HasSuffix(word, "y") && len(word) > 2 && hasVowel(word[:len(word)-1]) {
		word = word[:len(word)-1] + "i"
	}

	// Step 4: derivational endings, first table match with measure > 0 wins.
	for _, rule := range step4Suffixes {
		if strings.HasSuffix(word, rule.suffix) && measure(word[:len(word)-len(rule.suffix)]) > 0 {
			word = word[:len(word)-len(rule.suffix)] + rule.replacement
			break
		}
	}

	// Step 5: final cleanup.
	if strings.HasSuffix(word, "e") && measure(word[:len(word)-1]) > 1 {
		word = word[:len(word)-1]
	}
	if strings.HasSuffix(word, "l") && len(word) >= 2 && word[len(word)-2:] == "ll" && measure(word[:len(word)-1]) > 1 {
		word = word[:len(word)-1]
	}

	return word
}

// applyEdIngCleanup runs the post-strip fixup shared by the "-ed" and
// "-ing" branches of Step 2: an "at"/"bl"/"iz" ending gets an "e" appended
// back, otherwise a doubled consonant other than l/s/z is collapsed to one.
func applyEdIngCleanup(word string) string {
	switch {
	case strings.HasSuffix(word, "at"), strings.HasSuffix(word, "bl"), strings.HasSuffix(word, "iz"):
		return word + "e"
	case len(word) >= 2 && word[len(word)-1] == word[len(word)-2] && !isLSZ(word[len(word)-1]):
		return word[:len(word)-1]
	}
	return word
}

func isLSZ(b byte) bool {
	return b == 'l' || b == 's' || b == 'z'
}
