// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS AN INVERTED INDEX?
// ═══════════════════════════════════════════════════════════════════════════════
// An inverted index is like the index at the back of a book, but for search engines.
//
// Example: Given these documents:
//
//	Doc 1: "the quick brown fox"
//	Doc 2: "the lazy dog"
//	Doc 3: "quick brown dogs"
//
// The inverted index would look like:
//
//	"quick"  → Doc1:[0], Doc3:[0]
//	"brown"  → Doc1:[1], Doc3:[1]
//	"fox"    → Doc1:[2]
//	"lazi"   → Doc2:[0]
//	"dog"    → Doc2:[1], Doc3:[2]
//
// This allows us to:
//  1. Find documents containing a word instantly (without scanning all docs)
//  2. Find phrases by checking if word positions are consecutive
//  3. Rank results by relevance (BM25) using term frequency and document length
//
// ═══════════════════════════════════════════════════════════════════════════════
package ember

// Posting records one term's occurrence within a single document: how many
// times it appears (TermFreq) and at which token offsets (Positions, kept
// sorted ascending — the Phrase Matcher depends on this ordering).
type Posting struct {
	TermFreq  int   `json:"term_freq"`
	Positions []int `json:"positions"`
}

// TermEntry is everything the index tracks about one term: how many
// documents it appears in, and the per-document Postings.
type TermEntry struct {
	DocFreq  int             `json:"doc_freq"`
	Postings map[int]Posting `json:"postings"`
}

// InvertedIndex is the complete searchable structure built by Build and
// persisted by Save/Load. It never stores original document text — that
// lives separately in a DocumentSnapshot — only token statistics.
type InvertedIndex struct {
	NumDocs      int                  `json:"-"`
	AvgDocLength float64              `json:"-"`
	DocLengths   map[int]int          `json:"-"`
	Terms        map[string]TermEntry `json:"-"`
}

// NewInvertedIndex returns an empty index ready to be populated by a
// single Build call.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		DocLengths: make(map[int]int),
		Terms:      make(map[string]TermEntry),
	}
}

// docFreq returns how many documents contain term, or 0 if the term was
// never indexed.
func (idx *InvertedIndex) docFreq(term string) int {
	entry, ok := idx.Terms[term]
	if !ok {
		return 0
	}
	return entry.DocFreq
}

// posting returns the Posting for term in doc, and whether it exists.
func (idx *InvertedIndex) posting(term string, docID int) (Posting, bool) {
	entry, ok := idx.Terms[term]
	if !ok {
		return Posting{}, false
	}
	p, ok := entry.Postings[docID]
	return p, ok
}

// docsContaining returns the set of document ids that contain term, in no
// particular order.
// Used by the Boolean Evaluator to seed a term's bitmap.
func (idx *InvertedIndex) docsContaining(term string) []int {
	entry, ok := idx.Terms[term]
	if !ok {
		return nil
	}
	ids := make([]int, 0, len(entry.Postings))
	for docID := range entry.Postings {
		ids = append(ids, docID)
	}
	return ids
}

// allDocIDs returns every document id known to the index, derived from
// DocLengths — the universe NOT draws its complement from.
func (idx *InvertedIndex) allDocIDs() []int {
	ids := make([]int, 0, len(idx.DocLengths))
	for docID := range idx.DocLengths {
		ids = append(ids, docID)
	}
	return ids
}
