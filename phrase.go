// ═══════════════════════════════════════════════════════════════════════════════
// PHRASE SEARCH: Finding Multi-Word Sequences
// ═══════════════════════════════════════════════════════════════════════════════
// Phrase search finds documents where a sequence of terms appears at
// consecutive positions, in order — "brown fox" matches a document
// containing "...quick brown fox jumps..." but not one with "brown" and
// "fox" ten words apart.
//
// ALGORITHM:
// ----------
// Candidate documents come from the first term's postings. For each
// position that term occurs at in a candidate document, check whether
// every subsequent phrase term occurs at the next consecutive position in
// that same document — a simple membership test against that term's
// (already sorted) position list. One confirmed match is enough to accept
// the document; its score is the first term's single-term BM25 for that
// document, the same as a single-term hit, whichever position matched.
// ═══════════════════════════════════════════════════════════════════════════════
package ember

// ScorePhrase finds documents in which phraseTerms occur at consecutive
// positions, scored by the BM25 contribution of the phrase's first term.
func ScorePhrase(idx *InvertedIndex, phraseTerms []string, cfg Config) []Scored {
	if len(phraseTerms) == 0 {
		return nil
	}

	first := phraseTerms[0]
	firstEntry, ok := idx.Terms[first]
	if !ok {
		return nil
	}
	firstIDF := idf(firstEntry.DocFreq, idx.NumDocs)

	totals := make(map[int]float64)
	for docID, posting := range firstEntry.Postings {
		for _, start := range posting.Positions {
			if !phraseContinuesAt(idx, phraseTerms, docID, start) {
				continue
			}
			totals[docID] = firstIDF * tfNorm(posting.TermFreq, idx.DocLengths[docID], idx.AvgDocLength, cfg.BM25K1, cfg.BM25B)
			break // one confirmed match per document is enough
		}
	}

	return sortedScores(totals)
}

// phraseContinuesAt checks whether, starting at start in docID, every
// term in phraseTerms[1:] appears at the next consecutive position.
func phraseContinuesAt(idx *InvertedIndex, phraseTerms []string, docID, start int) bool {
	for offset, term := range phraseTerms[1:] {
		entry, ok := idx.Terms[term]
		if !ok {
			return false
		}
		posting, ok := entry.Postings[docID]
		if !ok {
			return false
		}
		if !containsPosition(posting.Positions, start+offset+1) {
			return false
		}
	}
	return true
}

// containsPosition reports whether target is present in positions, a
// sorted ascending slice, via binary search.
func containsPosition(positions []int, target int) bool {
	lo, hi := 0, len(positions)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case positions[mid] == target:
			return true
		case positions[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return false
}
