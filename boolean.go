// ═══════════════════════════════════════════════════════════════════════════════
// BOOLEAN QUERY EVALUATION
// ═══════════════════════════════════════════════════════════════════════════════
// Walks the Boolean AST bottom-up, computing a set of matching document ids
// at every node via roaring-bitmap set algebra:
//
//	Term → the bitmap of documents containing that term
//	Not  → complement against the universe of all known document ids
//	And  → bitmap intersection
//	Or   → bitmap union
//
// The resulting bitmap is the candidate set; it is then ranked by BM25
// using every leaf Term in the AST, including ones nested under a Not —
// scoring runs off all of the query's terms regardless of where they sit
// in the tree, rather than some more elaborate per-branch weighting scheme.
// ═══════════════════════════════════════════════════════════════════════════════
package ember

import "github.com/RoaringBitmap/roaring"

// EvalBoolean evaluates ast against idx and returns the matching document
// ids as a roaring bitmap.
func EvalBoolean(idx *InvertedIndex, ast Node) *roaring.Bitmap {
	switch ast.Kind {
	case NodeTerm:
		bm := roaring.NewBitmap()
		for _, docID := range idx.docsContaining(ast.Term) {
			bm.Add(uint32(docID))
		}
		return bm
	case NodeNot:
		universe := roaring.NewBitmap()
		for _, docID := range idx.allDocIDs() {
			universe.Add(uint32(docID))
		}
		universe.AndNot(EvalBoolean(idx, *ast.Operand))
		return universe
	case NodeAnd:
		left := EvalBoolean(idx, *ast.Left)
		left.And(EvalBoolean(idx, *ast.Right))
		return left
	case NodeOr:
		left := EvalBoolean(idx, *ast.Left)
		left.Or(EvalBoolean(idx, *ast.Right))
		return left
	}
	return roaring.NewBitmap()
}

// collectLeafTerms walks ast and returns every leaf Term, including ones
// nested under a Not — used to select which terms rank the Boolean match
// set via BM25.
func collectLeafTerms(ast Node) []string {
	switch ast.Kind {
	case NodeTerm:
		return []string{ast.Term}
	case NodeNot:
		return collectLeafTerms(*ast.Operand)
	case NodeAnd, NodeOr:
		return append(collectLeafTerms(*ast.Left), collectLeafTerms(*ast.Right)...)
	}
	return nil
}

// ScoreBoolean evaluates ast to get the matching document set, then ranks
// those documents by BM25 over the AST's leaf terms. Matching documents
// that no leaf term touches — a pure "NOT x" query matches plenty of
// documents BM25 never scores — still appear in the result, at score zero,
// after every scored document, in ascending id order.
func ScoreBoolean(idx *InvertedIndex, ast Node, cfg Config) []Scored {
	matching := EvalBoolean(idx, ast)
	if matching.IsEmpty() {
		return nil
	}

	leafTerms := collectLeafTerms(ast)
	allScored := ScoreSimple(idx, leafTerms, cfg)

	out := make([]Scored, 0, matching.GetCardinality())
	scored := make(map[int]struct{}, len(allScored))
	for _, s := range allScored {
		if matching.Contains(uint32(s.DocID)) {
			out = append(out, s)
			scored[s.DocID] = struct{}{}
		}
	}

	it := matching.Iterator()
	for it.HasNext() {
		docID := int(it.Next())
		if _, ok := scored[docID]; !ok {
			out = append(out, Scored{DocID: docID})
		}
	}
	return out
}
