// ═══════════════════════════════════════════════════════════════════════════════
// SEARCH ENGINE
// ═══════════════════════════════════════════════════════════════════════════════
// Engine owns one loaded InvertedIndex and its matching DocumentSnapshot and
// answers ranked queries against them. It loads its backing files at most
// once, on first use, via sync.Once rather than package globals, since a
// long-lived process may want more than one Engine open at a time.
// ═══════════════════════════════════════════════════════════════════════════════
package ember

import (
	"fmt"
	"log/slog"
	"sync"
)

// Result is a single ranked search hit.
type Result struct {
	Rank    int     `json:"rank"`
	DocID   int     `json:"doc_id"`
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
}

// Engine answers Search calls against a lazily-loaded index and document
// snapshot.
type Engine struct {
	cfg          Config
	indexPath    string
	snapshotPath string

	once     sync.Once
	loadErr  error
	index    *InvertedIndex
	snapshot map[int]DocumentSnapshot
}

// NewEngine returns an Engine that will load its index and snapshot from
// indexPath/snapshotPath the first time Search is called.
func NewEngine(indexPath, snapshotPath string, cfg Config) *Engine {
	return &Engine{cfg: cfg, indexPath: indexPath, snapshotPath: snapshotPath}
}

// NewEngineFromConfig is NewEngine with the paths taken from cfg.
func NewEngineFromConfig(cfg Config) *Engine {
	return NewEngine(cfg.IndexPath, cfg.SnapshotPath, cfg)
}

// ensureLoaded loads the index and snapshot exactly once, regardless of how
// many goroutines call Search concurrently.
func (e *Engine) ensureLoaded() error {
	e.once.Do(func() {
		idx, err := Load(e.indexPath)
		if err != nil {
			e.loadErr = fmt.Errorf("load index: %w", err)
			return
		}
		snap, err := LoadSnapshot(e.snapshotPath)
		if err != nil {
			e.loadErr = fmt.Errorf("load snapshot: %w", err)
			return
		}
		e.index = idx
		e.snapshot = snap
		slog.Info("engine loaded", slog.Int("docs", idx.NumDocs), slog.Int("terms", len(idx.Terms)))
	})
	return e.loadErr
}

// Search parses raw, routes it to the matching scorer, and returns the top
// topK results. topK must be >= 1; a non-positive topK yields no results,
// matching up-front rather than after doing any scoring work.
func (e *Engine) Search(raw string, topK int) ([]Result, error) {
	if err := e.ensureLoaded(); err != nil {
		return nil, err
	}
	if topK <= 0 {
		return nil, nil
	}

	query := ParseQuery(raw)

	var scored []Scored
	switch query.Mode {
	case ModePhrase:
		scored = ScorePhrase(e.index, query.Terms, e.cfg)
	case ModeBoolean:
		scored = ScoreBoolean(e.index, query.AST, e.cfg)
	default:
		scored = ScoreSimple(e.index, query.Terms, e.cfg)
	}

	if len(scored) > topK {
		scored = scored[:topK]
	}

	rawWords := tokenizeAlphanumeric(raw)
	results := make([]Result, 0, len(scored))
	for i, s := range scored {
		title, url, text := "Unknown", "", ""
		if doc, ok := e.snapshot[s.DocID]; ok {
			title, url, text = doc.Title, doc.URL, doc.Text
		}
		results = append(results, Result{
			Rank:    i + 1,
			DocID:   s.DocID,
			Title:   title,
			URL:     url,
			Score:   roundTo4(s.Score),
			Snippet: GenerateSnippet(text, rawWords, e.cfg.SnippetMaxLen),
		})
	}
	return results, nil
}

// SearchDefault runs Search with the configured default result count.
func (e *Engine) SearchDefault(raw string) ([]Result, error) {
	return e.Search(raw, e.cfg.DefaultTopK)
}

// roundTo4 rounds f to four decimal places of reported result score.
func roundTo4(f float64) float64 {
	const scale = 10000.0
	return float64(int(f*scale+0.5)) / scale
}
