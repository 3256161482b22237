package ember

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY PARSING TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestParseQuery_Simple(t *testing.T) {
	q := ParseQuery("machine learning")
	if q.Mode != ModeSimple {
		t.Fatalf("Mode = %v, want ModeSimple", q.Mode)
	}
	if len(q.Terms) != 2 {
		t.Errorf("Terms = %v, want 2 terms", q.Terms)
	}
}

func TestParseQuery_Phrase(t *testing.T) {
	q := ParseQuery(`"machine learning"`)
	if q.Mode != ModePhrase {
		t.Fatalf("Mode = %v, want ModePhrase", q.Mode)
	}
	if len(q.Terms) != 2 {
		t.Errorf("Terms = %v, want 2 terms", q.Terms)
	}
}

func TestParseQuery_Boolean(t *testing.T) {
	q := ParseQuery("python AND (ml OR robotics) NOT snakes")
	if q.Mode != ModeBoolean {
		t.Fatalf("Mode = %v, want ModeBoolean", q.Mode)
	}
	if q.AST.Kind != NodeAnd {
		t.Fatalf("AST.Kind = %v, want NodeAnd", q.AST.Kind)
	}
}

func TestParseQuery_LowercaseOperatorsAreNotBoolean(t *testing.T) {
	q := ParseQuery("cats and dogs")
	if q.Mode != ModeSimple {
		t.Fatalf("Mode = %v, want ModeSimple (operators must be uppercase)", q.Mode)
	}
	// "and" is a stopword, so only the two real terms survive analysis.
	if len(q.Terms) != 2 {
		t.Errorf("Terms = %v, want 2 terms", q.Terms)
	}
}

func TestParseQuery_OperatorInsideWordIsNotBoolean(t *testing.T) {
	q := ParseQuery("ANDROID phones")
	if q.Mode != ModeSimple {
		t.Fatalf("Mode = %v, want ModeSimple (AND must be word-bounded)", q.Mode)
	}
}

func TestParseQuery_BareParensWithoutKeywordIsSimple(t *testing.T) {
	q := ParseQuery("(hello)")
	if q.Mode != ModeSimple {
		t.Fatalf("Mode = %v, want ModeSimple (no AND/OR/NOT keyword present)", q.Mode)
	}
}

func TestParseBoolean_NotBindsTighterThanAnd(t *testing.T) {
	q := ParseQuery("cat AND NOT dog")
	if q.AST.Kind != NodeAnd {
		t.Fatalf("AST.Kind = %v, want NodeAnd", q.AST.Kind)
	}
	if q.AST.Right.Kind != NodeNot {
		t.Fatalf("AST.Right.Kind = %v, want NodeNot", q.AST.Right.Kind)
	}
}

func TestParseBoolean_UnmatchedClosingParenIgnored(t *testing.T) {
	q := ParseQuery("cat OR dog)")
	if q.AST.Kind != NodeOr {
		t.Fatalf("AST.Kind = %v, want NodeOr", q.AST.Kind)
	}
}

func TestParseBoolean_UnmatchedOpeningParenConsumesRest(t *testing.T) {
	q := ParseQuery("cat AND (dog OR bird")
	if q.AST.Kind != NodeAnd {
		t.Fatalf("AST.Kind = %v, want NodeAnd", q.AST.Kind)
	}
	if q.AST.Right.Kind != NodeOr {
		t.Fatalf("AST.Right.Kind = %v, want NodeOr", q.AST.Right.Kind)
	}
}

func TestAnalyzeTermWord_StopwordFallsBackToLowercase(t *testing.T) {
	// "the" analyzes to nothing (it's a stopword), so the bare-word fallback
	// is the lowercased word itself.
	if got := analyzeTermWord("THE"); got != "the" {
		t.Errorf("analyzeTermWord(THE) = %q, want \"the\"", got)
	}
}
