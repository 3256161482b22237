// ═══════════════════════════════════════════════════════════════════════════════
// SNIPPET GENERATION
// ═══════════════════════════════════════════════════════════════════════════════
// Finds the window of text around the first query-term hit and returns it
// as a short preview with matches bold-highlighted.
//
// ALGORITHM:
// ----------
//  1. Locate the earliest (lowest-offset) case-insensitive substring match
//     of any raw query word in the document text. If none is found, anchor
//     at position 0.
//  2. Center a window of at most maxLen characters on that position.
//  3. Trim the window to the nearest word boundary on each side that was
//     actually cut.
//  4. Highlight every whole-word, case-insensitive occurrence of a query
//     word, longest word first ("networks" is marked before "network" is
//     tried).
//  5. Prefix/suffix "..." wherever the window was trimmed.
// ═══════════════════════════════════════════════════════════════════════════════
package ember

import (
	"regexp"
	"sort"
	"strings"
)

// GenerateSnippet builds a highlighted preview of text around the earliest
// occurrence of any word in queryWords.
func GenerateSnippet(text string, queryWords []string, maxLen int) string {
	lower := strings.ToLower(text)

	bestPos := 0
	found := false
	for _, word := range queryWords {
		idx := strings.Index(lower, strings.ToLower(word))
		if idx == -1 {
			continue
		}
		if !found || idx < bestPos {
			bestPos = idx
			found = true
		}
	}

	half := maxLen / 2
	start := bestPos - half
	if start < 0 {
		start = 0
	}
	end := bestPos + half
	if end > len(text) {
		end = len(text)
	}
	window := text[start:end]

	trimmedStart := start > 0
	trimmedEnd := end < len(text)

	if trimmedStart {
		if sp := strings.Index(window, " "); sp != -1 {
			window = window[sp+1:]
		}
	}
	if trimmedEnd {
		if sp := strings.LastIndex(window, " "); sp != -1 {
			window = window[:sp]
		}
	}

	window = highlightTerms(window, queryWords)

	if trimmedStart {
		window = "..." + window
	}
	if trimmedEnd {
		window = window + "..."
	}

	return window
}

// highlightTerms wraps every whole-word, case-insensitive occurrence of a
// query word in window with ** markers, longest word first so a longer
// phrase word is fully marked before a shorter word it contains.
func highlightTerms(window string, queryWords []string) string {
	ordered := append([]string(nil), queryWords...)
	sort.Slice(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	for _, word := range ordered {
		if len(word) < 2 {
			continue // skip single-char noise like "a"
		}
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		window = pattern.ReplaceAllStringFunc(window, func(match string) string {
			return "**" + match + "**"
		})
	}
	return window
}
