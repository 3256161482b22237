// ═══════════════════════════════════════════════════════════════════════════════
// PERSISTENCE: Saving and Loading the Index
// ═══════════════════════════════════════════════════════════════════════════════
// Why serialize?
// - Save the index to disk once and reload it on every later run
// - Ship a prebuilt index alongside a binary
//
// WIRE FORMAT:
// ------------
// The on-disk format is a canonical JSON shape:
//
//	{
//	  "metadata": {"num_docs": N, "avg_doc_length": 12.34},
//	  "doc_lengths": {"1": 42, ...},
//	  "index": {
//	    "term": {
//	      "doc_freq": 2,
//	      "postings": {"1": {"term_freq": 3, "positions": [0, 5, 9]}}
//	    }
//	  }
//	}
//
// That JSON is then zstd-compressed before it touches disk — the logical
// format is unaffected, only the bytes written to/read from the file.
// ═══════════════════════════════════════════════════════════════════════════════
package ember

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/klauspost/compress/zstd"
)

// ErrCorruptIndex is returned by Load when the decoded index fails the
// invariants it's supposed to uphold: doc_freq must equal the number of
// postings for a term, term_freq must equal the number of recorded
// positions, every posting must reference a known document, num_docs must
// equal the doc_lengths count, and avg_doc_length must be recomputable
// from doc_lengths to within its stored precision.
var ErrCorruptIndex = errors.New("corrupt index")

// onDiskMetadata mirrors the "metadata" object of the persisted format.
type onDiskMetadata struct {
	NumDocs      int     `json:"num_docs"`
	AvgDocLength float64 `json:"avg_doc_length"`
}

// onDiskIndex mirrors the full persisted JSON shape; field order is chosen
// so hand-inspecting a decompressed dump reads naturally.
type onDiskIndex struct {
	Metadata   onDiskMetadata        `json:"metadata"`
	DocLengths map[string]int        `json:"doc_lengths"`
	Index      map[string]onDiskTerm `json:"index"`
}

type onDiskTerm struct {
	DocFreq  int                      `json:"doc_freq"`
	Postings map[string]onDiskPosting `json:"postings"`
}

type onDiskPosting struct {
	TermFreq  int   `json:"term_freq"`
	Positions []int `json:"positions"`
}

// Save writes idx to path as zstd-compressed JSON.
func Save(idx *InvertedIndex, path string) error {
	disk := onDiskIndex{
		Metadata: onDiskMetadata{
			NumDocs:      idx.NumDocs,
			AvgDocLength: idx.AvgDocLength,
		},
		DocLengths: make(map[string]int, len(idx.DocLengths)),
		Index:      make(map[string]onDiskTerm, len(idx.Terms)),
	}
	for docID, length := range idx.DocLengths {
		disk.DocLengths[strconv.Itoa(docID)] = length
	}
	for term, entry := range idx.Terms {
		postings := make(map[string]onDiskPosting, len(entry.Postings))
		for docID, p := range entry.Postings {
			postings[strconv.Itoa(docID)] = onDiskPosting{TermFreq: p.TermFreq, Positions: p.Positions}
		}
		disk.Index[term] = onDiskTerm{DocFreq: entry.DocFreq, Postings: postings}
	}

	raw, err := json.Marshal(disk)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}
	defer enc.Close()
	compressed := enc.EncodeAll(raw, nil)

	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return fmt.Errorf("write index file %s: %w", path, err)
	}

	slog.Info("index saved", slog.String("path", path), slog.Int("bytes", len(compressed)))
	return nil
}

// Load reads and decompresses the index at path, validating it against its
// structural invariants before returning it.
func Load(path string) (*InvertedIndex, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index file %s: %w", path, err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress index file %s: %w", path, err)
	}

	var disk onDiskIndex
	if err := json.Unmarshal(raw, &disk); err != nil {
		return nil, fmt.Errorf("unmarshal index: %w", err)
	}

	idx := NewInvertedIndex()
	idx.NumDocs = disk.Metadata.NumDocs
	idx.AvgDocLength = disk.Metadata.AvgDocLength

	for docIDStr, length := range disk.DocLengths {
		docID, err := strconv.Atoi(docIDStr)
		if err != nil {
			return nil, fmt.Errorf("%w: doc_lengths key %q is not an integer", ErrCorruptIndex, docIDStr)
		}
		idx.DocLengths[docID] = length
	}

	if idx.NumDocs != len(idx.DocLengths) {
		return nil, fmt.Errorf("%w: num_docs is %d but doc_lengths has %d entries",
			ErrCorruptIndex, idx.NumDocs, len(idx.DocLengths))
	}
	if idx.NumDocs > 0 {
		var total int
		for _, length := range idx.DocLengths {
			total += length
		}
		recomputed := float64(total) / float64(idx.NumDocs)
		if math.Abs(recomputed-idx.AvgDocLength) > 0.011 {
			return nil, fmt.Errorf("%w: avg_doc_length %v does not match recomputed mean %v",
				ErrCorruptIndex, idx.AvgDocLength, recomputed)
		}
	}

	for term, onDiskEntry := range disk.Index {
		if onDiskEntry.DocFreq != len(onDiskEntry.Postings) {
			return nil, fmt.Errorf("%w: term %q has doc_freq %d but %d postings",
				ErrCorruptIndex, term, onDiskEntry.DocFreq, len(onDiskEntry.Postings))
		}
		entry := TermEntry{DocFreq: onDiskEntry.DocFreq, Postings: make(map[int]Posting, len(onDiskEntry.Postings))}
		for docIDStr, p := range onDiskEntry.Postings {
			docID, err := strconv.Atoi(docIDStr)
			if err != nil {
				return nil, fmt.Errorf("%w: posting key %q is not an integer", ErrCorruptIndex, docIDStr)
			}
			if _, known := idx.DocLengths[docID]; !known {
				return nil, fmt.Errorf("%w: term %q has a posting for unknown doc %d",
					ErrCorruptIndex, term, docID)
			}
			if p.TermFreq != len(p.Positions) {
				return nil, fmt.Errorf("%w: term %q doc %d has term_freq %d but %d positions",
					ErrCorruptIndex, term, docID, p.TermFreq, len(p.Positions))
			}
			entry.Postings[docID] = Posting{TermFreq: p.TermFreq, Positions: p.Positions}
		}
		idx.Terms[term] = entry
	}

	slog.Info("index loaded", slog.String("path", path), slog.Int("docs", idx.NumDocs), slog.Int("terms", len(idx.Terms)))
	return idx, nil
}

// LoadDocuments reads a crawler-produced JSON array of documents — the
// input Build consumes. Fields beyond id/title/url/text are ignored.
func LoadDocuments(path string) ([]Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read documents file %s: %w", path, err)
	}
	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("unmarshal documents: %w", err)
	}
	return docs, nil
}

// LoadSnapshot reads a document snapshot previously written by
// SaveSnapshot. It is plain JSON (no compression) since the snapshot
// doubles as a human-inspectable source-of-truth for titles and URLs.
func LoadSnapshot(path string) (map[int]DocumentSnapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file %s: %w", path, err)
	}
	var onDisk map[string]DocumentSnapshot
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	snapshot := make(map[int]DocumentSnapshot, len(onDisk))
	for docIDStr, s := range onDisk {
		docID, err := strconv.Atoi(docIDStr)
		if err != nil {
			return nil, fmt.Errorf("snapshot key %q is not an integer", docIDStr)
		}
		snapshot[docID] = s
	}
	return snapshot, nil
}

// SaveSnapshot writes a document snapshot as plain JSON.
func SaveSnapshot(snapshot map[int]DocumentSnapshot, path string) error {
	onDisk := make(map[string]DocumentSnapshot, len(snapshot))
	for docID, s := range snapshot {
		onDisk[strconv.Itoa(docID)] = s
	}
	raw, err := json.MarshalIndent(onDisk, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot file %s: %w", path, err)
	}
	return nil
}
