package analysis

// scoreMessage computes the net sentiment of one message: +1 per positive
// word or emoji, -1 per negative one. No weighting, negation handling or
// intensity scaling; the score is unbounded and purely a relative signal.
func scoreMessage(lex Lexicon, tokens, emojis []string) int {
	score := 0
	for _, tok := range tokens {
		if _, ok := lex.PositiveWords[tok]; ok {
			score++
		} else if _, ok := lex.NegativeWords[tok]; ok {
			score--
		}
	}
	for _, e := range emojis {
		if _, ok := lex.PositiveEmojis[e]; ok {
			score++
		} else if _, ok := lex.NegativeEmojis[e]; ok {
			score--
		}
	}
	return score
}

// countChemistryPositives counts tokens in the chemistry positive-word set.
// Feeds only the chemistry classifier, never the sentiment score.
func countChemistryPositives(lex Lexicon, tokens []string) int {
	count := 0
	for _, tok := range tokens {
		if _, ok := lex.ChemistryPositives[tok]; ok {
			count++
		}
	}
	return count
}
