// ═══════════════════════════════════════════════════════════════════════════════
// INDEX BUILDING
// ═══════════════════════════════════════════════════════════════════════════════
// Build takes a fixed document collection and produces the complete
// InvertedIndex plus a DocumentSnapshot in one pass. There is no incremental
// update path — a new collection means a new Build.
// ═══════════════════════════════════════════════════════════════════════════════
package ember

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrDuplicateDocumentID is returned when two documents in the same Build
// call share an id — this is a fatal, not a skip-and-continue, condition:
// the index can't say which of the two a posting belongs to.
var ErrDuplicateDocumentID = errors.New("duplicate document id")

// BuildResult bundles everything one Build call produces.
type BuildResult struct {
	Index    *InvertedIndex
	Snapshot map[int]DocumentSnapshot
	Skipped  []error // one error per document that failed validation
}

// Build validates, tokenizes, and indexes documents, returning the
// resulting index and document snapshot together with a list of errors for
// any documents that were skipped because they failed validation.
//
// A document that fails validation (missing title or url) is logged and
// excluded from both the index and the snapshot — it never influences
// NumDocs or AvgDocLength. A duplicate document id within the same call is
// fatal: Build returns immediately with a nil result and an error wrapping
// ErrDuplicateDocumentID.
func Build(documents []Document) (*BuildResult, error) {
	seen := make(map[int]struct{}, len(documents))
	valid := make([]Document, 0, len(documents))
	var skipped []error

	for _, d := range documents {
		if err := validateDocument(d); err != nil {
			slog.Warn("skipping invalid document", slog.Int("docID", d.ID), slog.Any("error", err))
			skipped = append(skipped, fmt.Errorf("document %d: %w", d.ID, err))
			continue
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("document %d: %w", d.ID, ErrDuplicateDocumentID)
		}
		seen[d.ID] = struct{}{}
		valid = append(valid, d)
	}

	idx := NewInvertedIndex()
	var totalTokens int

	for _, d := range valid {
		tokens := Analyze(d.Text)
		idx.DocLengths[d.ID] = len(tokens)
		totalTokens += len(tokens)

		positions := make(map[string][]int)
		for pos, tok := range tokens {
			positions[tok] = append(positions[tok], pos)
		}

		for term, pos := range positions {
			entry, ok := idx.Terms[term]
			if !ok {
				entry = TermEntry{Postings: make(map[int]Posting)}
			}
			entry.DocFreq++
			entry.Postings[d.ID] = Posting{TermFreq: len(pos), Positions: pos}
			idx.Terms[term] = entry
		}

		slog.Info("indexed document",
			slog.Int("docID", d.ID),
			slog.String("title", d.Title),
			slog.Int("tokens", len(tokens)),
			slog.Int("uniqueTerms", len(positions)),
		)
	}

	idx.NumDocs = len(valid)
	if idx.NumDocs > 0 {
		idx.AvgDocLength = roundTo2(float64(totalTokens) / float64(idx.NumDocs))
	}

	slog.Info("index built", slog.Int("docs", idx.NumDocs), slog.Int("terms", len(idx.Terms)))

	return &BuildResult{
		Index:    idx,
		Snapshot: buildSnapshot(valid),
		Skipped:  skipped,
	}, nil
}

// roundTo2 rounds f to two decimal places, matching the persisted
// avg_doc_length field's precision.
func roundTo2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
