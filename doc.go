// ═══════════════════════════════════════════════════════════════════════════════
// EMBER: A SINGLE-NODE FULL-TEXT SEARCH CORE
// ═══════════════════════════════════════════════════════════════════════════════
// ember builds a positional inverted index over a fixed collection of documents
// and answers ranked queries against it. It does not crawl, does not serve HTTP,
// and does not update an index incrementally — it is the indexing/retrieval
// core that those things wrap.
//
// PIPELINE:
// ---------
//
//	documents  →  Analyze  →  Build  →  (Save/Load)  →  Engine.Search
//	                                                        │
//	                                         Query Parser ──┤
//	                                                        │
//	                               Scorer / PhraseMatch / BooleanEval
//	                                                        │
//	                                              Snippet Builder
//
// Three query syntaxes are supported: plain multi-term ("neural networks"),
// quoted phrase ("\"neural networks\""), and boolean ("python AND (ml OR
// robotics) AND NOT snakes"). All three share the same Analyzer and the same
// underlying InvertedIndex.
// ═══════════════════════════════════════════════════════════════════════════════
package ember
