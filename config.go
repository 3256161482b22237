package ember

// Config holds the compile-time tunables for the search core: a plain
// struct with a Default constructor, passed in explicitly rather than read
// from the environment.
type Config struct {
	BM25K1        float64 // term-frequency saturation
	BM25B         float64 // length normalization
	DefaultTopK   int     // results returned by SearchDefault
	SnippetMaxLen int     // max characters in a generated snippet
	IndexPath     string  // on-disk path for the persisted index
	SnapshotPath  string  // on-disk path for the document snapshot
}

// DefaultConfig returns the standard configuration used throughout the core.
func DefaultConfig() Config {
	return Config{
		BM25K1:        1.5,
		BM25B:         0.75,
		DefaultTopK:   5,
		SnippetMaxLen: 200,
		IndexPath:     "index.json.zst",
		SnapshotPath:  "documents.json",
	}
}
