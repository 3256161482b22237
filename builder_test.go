package ember

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// INDEX BUILDER TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestBuild_SingleDocument(t *testing.T) {
	docs := []Document{
		{ID: 1, Title: "Fox", URL: "https://example.com/fox", Text: "The quick brown fox"},
	}

	result, err := Build(docs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if result.Index.NumDocs != 1 {
		t.Errorf("NumDocs = %d, want 1", result.Index.NumDocs)
	}
	for _, term := range []string{"quick", "brown", "fox"} {
		if _, ok := result.Index.Terms[term]; !ok {
			t.Errorf("term %q was not indexed", term)
		}
	}
	if len(result.Skipped) != 0 {
		t.Errorf("Skipped = %v, want empty", result.Skipped)
	}
}

func TestBuild_SkipsInvalidDocuments(t *testing.T) {
	docs := []Document{
		{ID: 1, Title: "", URL: "https://example.com", Text: "missing title"},
		{ID: 2, Title: "Valid", URL: "https://example.com/valid", Text: "valid document"},
	}

	result, err := Build(docs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if result.Index.NumDocs != 1 {
		t.Errorf("NumDocs = %d, want 1 (invalid doc skipped)", result.Index.NumDocs)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("Skipped = %v, want 1 entry", result.Skipped)
	}
	if _, ok := result.Snapshot[1]; ok {
		t.Error("invalid document 1 should be absent from the snapshot")
	}
	if _, ok := result.Snapshot[2]; !ok {
		t.Error("valid document 2 should be present in the snapshot")
	}
}

func TestBuild_ZeroIDIsValid(t *testing.T) {
	docs := []Document{
		{ID: 0, Title: "Zero", URL: "https://example.com/0", Text: "first document"},
	}

	result, err := Build(docs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(result.Skipped) != 0 {
		t.Fatalf("Skipped = %v, want empty (id 0 is a legitimate id)", result.Skipped)
	}
	if _, ok := result.Snapshot[0]; !ok {
		t.Error("document 0 should be present in the snapshot")
	}
}

func TestBuild_DuplicateDocumentIDIsFatal(t *testing.T) {
	docs := []Document{
		{ID: 1, Title: "A", URL: "https://example.com/a", Text: "first"},
		{ID: 1, Title: "B", URL: "https://example.com/b", Text: "second"},
	}

	_, err := Build(docs)
	if err == nil {
		t.Fatal("Build() error = nil, want ErrDuplicateDocumentID")
	}
}

func TestBuild_AvgDocLengthRounding(t *testing.T) {
	docs := []Document{
		{ID: 1, Title: "One", URL: "https://example.com/1", Text: "alpha beta gamma"},
		{ID: 2, Title: "Two", URL: "https://example.com/2", Text: "alpha"},
	}

	result, err := Build(docs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	// doc 1 has 3 tokens, doc 2 has 1 token → avg 2.0
	if result.Index.AvgDocLength != 2.0 {
		t.Errorf("AvgDocLength = %v, want 2.0", result.Index.AvgDocLength)
	}
}

func TestBuild_EmptyCollection(t *testing.T) {
	result, err := Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if result.Index.NumDocs != 0 {
		t.Errorf("NumDocs = %d, want 0", result.Index.NumDocs)
	}
	if result.Index.AvgDocLength != 0 {
		t.Errorf("AvgDocLength = %v, want 0", result.Index.AvgDocLength)
	}
}
