package ember

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// BOOLEAN EVALUATION TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func booleanTestCorpus(t *testing.T) *InvertedIndex {
	t.Helper()
	docs := []Document{
		{ID: 1, Title: "A", URL: "https://example.com/1", Text: "python machine learning"},
		{ID: 2, Title: "B", URL: "https://example.com/2", Text: "python snakes reptiles"},
		{ID: 3, Title: "C", URL: "https://example.com/3", Text: "machine learning robotics"},
	}
	result, err := Build(docs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return result.Index
}

func TestEvalBoolean_And(t *testing.T) {
	idx := booleanTestCorpus(t)
	ast := Node{Kind: NodeAnd,
		Left:  &Node{Kind: NodeTerm, Term: "python"},
		Right: &Node{Kind: NodeTerm, Term: "machin"},
	}
	bm := EvalBoolean(idx, ast)
	if bm.GetCardinality() != 1 || !bm.Contains(1) {
		t.Errorf("EvalBoolean(AND) = %v, want {1}", bm.ToArray())
	}
}

func TestEvalBoolean_Or(t *testing.T) {
	idx := booleanTestCorpus(t)
	ast := Node{Kind: NodeOr,
		Left:  &Node{Kind: NodeTerm, Term: "snake"},
		Right: &Node{Kind: NodeTerm, Term: "robotic"},
	}
	bm := EvalBoolean(idx, ast)
	if bm.GetCardinality() != 2 {
		t.Errorf("EvalBoolean(OR) = %v, want 2 docs", bm.ToArray())
	}
}

func TestEvalBoolean_Not(t *testing.T) {
	idx := booleanTestCorpus(t)
	ast := Node{Kind: NodeNot, Operand: &Node{Kind: NodeTerm, Term: "snake"}}
	bm := EvalBoolean(idx, ast)
	if bm.Contains(2) {
		t.Error("EvalBoolean(NOT snake) should exclude doc 2")
	}
	if !bm.Contains(1) || !bm.Contains(3) {
		t.Errorf("EvalBoolean(NOT snake) = %v, want {1, 3}", bm.ToArray())
	}
}

func TestCollectLeafTerms_IncludesTermsUnderNot(t *testing.T) {
	ast := Node{Kind: NodeAnd,
		Left:  &Node{Kind: NodeTerm, Term: "python"},
		Right: &Node{Kind: NodeNot, Operand: &Node{Kind: NodeTerm, Term: "snake"}},
	}
	terms := collectLeafTerms(ast)
	if len(terms) != 2 {
		t.Fatalf("collectLeafTerms() = %v, want 2 terms (including the NOT operand)", terms)
	}
}

func TestScoreBoolean_PureNotIncludesUnscoredDocs(t *testing.T) {
	idx := booleanTestCorpus(t)
	ast := Node{Kind: NodeNot, Operand: &Node{Kind: NodeTerm, Term: "python"}}
	scored := ScoreBoolean(idx, ast, DefaultConfig())
	// Doc 3 is the only one without "python". No leaf term scores it, so it
	// comes back at score zero rather than being dropped.
	if len(scored) != 1 || scored[0].DocID != 3 {
		t.Fatalf("ScoreBoolean(NOT python) = %v, want exactly doc 3", scored)
	}
	if scored[0].Score != 0 {
		t.Errorf("Score = %v, want 0 for a doc no leaf term touches", scored[0].Score)
	}
}

func TestScoreBoolean_FiltersToMatchingSet(t *testing.T) {
	idx := booleanTestCorpus(t)
	ast := Node{Kind: NodeAnd,
		Left:  &Node{Kind: NodeTerm, Term: "python"},
		Right: &Node{Kind: NodeNot, Operand: &Node{Kind: NodeTerm, Term: "snake"}},
	}
	scored := ScoreBoolean(idx, ast, DefaultConfig())
	if len(scored) != 1 || scored[0].DocID != 1 {
		t.Fatalf("ScoreBoolean(python AND NOT snake) = %v, want exactly doc 1", scored)
	}
}
