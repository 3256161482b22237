package ember

import "github.com/go-playground/validator/v10"

// Document is one indexable record, shaped after the crawler's JSON output:
// id, title, url, text. Extra fields are ignored by the decoder that
// produces this struct.
//
// Title and URL are required for a document to be usable by the Snippet
// Builder and Search results; Text may be empty (an empty document indexes
// to zero tokens, which is valid). ID has no "required" tag since its zero
// value, 0, is a legitimate document id.
type Document struct {
	ID    int    `json:"id"`
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required"`
	Text  string `json:"text"`
}

// documentValidator is shared across Build calls; validator.Validate is safe
// for concurrent use once constructed, which is all the Builder needs since
// building is single-writer.
var documentValidator = validator.New()

// validateDocument checks a Document against the required-field rules.
// Returns nil when the document is fit to index.
func validateDocument(d Document) error {
	return documentValidator.Struct(d)
}

// DocumentSnapshot is the separate id→(title,url,text) mapping the Snippet
// Builder reads from. The index itself never duplicates original document
// text.
type DocumentSnapshot struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}

// buildSnapshot extracts the snapshot view from an already-validated
// document list. Build is the only caller: it filters out malformed
// documents first, so a document that fails validation never reaches here
// and is absent from both the index and the snapshot.
func buildSnapshot(documents []Document) map[int]DocumentSnapshot {
	snapshot := make(map[int]DocumentSnapshot, len(documents))
	for _, d := range documents {
		snapshot[d.ID] = DocumentSnapshot{Title: d.Title, URL: d.URL, Text: d.Text}
	}
	return snapshot
}
