package ember

// englishStopwords is the closed, literal stopword list used by the Analyzer.
// Standard English function words plus a block of high-frequency "corpus
// noise" words added after seeing them dominate a Wikipedia-sourced test
// corpus.
//
// A handful of entries are contraction remnants ("aren't", "doesn't", ...)
// that can never actually match a token, since the Analyzer's tokenizer only
// ever emits runs of [a-z0-9] — apostrophes are separators, not token
// characters. They're kept here anyway, unchanged from the source list,
// because the set is a literal compile-time constant, not a derived one;
// trimming "dead" entries would be an unrequested behavior change.
// Each word appears once across the two blocks: a Go map literal rejects
// duplicate keys at compile time.
var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "aren't": {},
	"as": {}, "at": {}, "be": {}, "because": {}, "been": {}, "before": {},
	"being": {}, "below": {}, "between": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "can't": {}, "cannot": {}, "could": {}, "couldn't": {}, "d": {},
	"did": {}, "didn't": {}, "do": {}, "does": {}, "doesn't": {}, "doing": {},
	"don": {}, "don't": {}, "down": {}, "during": {}, "each": {}, "few": {},
	"for": {}, "from": {}, "further": {}, "had": {}, "hadn't": {}, "has": {},
	"hasn't": {}, "have": {}, "haven't": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "isn't": {},
	"it": {}, "it's": {}, "its": {}, "itself": {}, "just": {}, "ll": {}, "m": {},
	"ma": {}, "me": {}, "mightn": {}, "mightn't": {}, "more": {}, "most": {},
	"mustn": {}, "mustn't": {}, "my": {}, "myself": {}, "needn": {}, "needn't": {},
	"no": {}, "nor": {}, "not": {}, "now": {}, "o": {}, "of": {}, "off": {},
	"on": {}, "once": {}, "only": {}, "or": {}, "other": {}, "our": {}, "ours": {},
	"ourselves": {}, "out": {}, "over": {}, "own": {}, "re": {}, "s": {},
	"same": {}, "shan": {}, "shan't": {}, "she": {}, "she's": {}, "should": {},
	"should've": {}, "shouldn": {}, "shouldn't": {}, "so": {}, "some": {},
	"such": {}, "t": {}, "than": {}, "that": {}, "that'll": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "themselves": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"to": {}, "too": {}, "under": {}, "until": {}, "up": {}, "ve": {}, "very": {},
	"was": {}, "wasn": {}, "wasn't": {}, "we": {}, "were": {}, "weren": {},
	"weren't": {}, "what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "whom": {}, "why": {}, "will": {}, "with": {}, "won": {},
	"won't": {}, "wouldn": {}, "wouldn't": {}, "y": {}, "you": {}, "you'd": {},
	"you'll": {}, "you're": {}, "you've": {}, "your": {}, "yours": {},
	"yourself": {}, "yourselves": {},

	// corpus-noise extras: words that show up a lot in Wikipedia-sourced text
	// without carrying much retrieval signal.
	"also": {}, "one": {}, "two": {}, "new": {}, "like": {}, "many": {},
	"may": {}, "would": {}, "use": {}, "using": {}, "used": {}, "much": {},
	"well": {}, "even": {}, "still": {}, "known": {}, "often": {}, "however": {},
	"though": {}, "another": {}, "every": {}, "since": {}, "first": {},
	"last": {}, "around": {}, "called": {}, "based": {}, "became": {},
	"according": {}, "although": {}, "including": {}, "several": {},
	"various": {}, "within": {},
}

func isStopword(token string) bool {
	_, exists := englishStopwords[token]
	return exists
}
