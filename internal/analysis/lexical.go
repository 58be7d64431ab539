package analysis

import (
	"regexp"
	"strings"
)

// wordTokenRegex scans word tokens: alphanumeric and apostrophe runs on word
// boundaries.
var wordTokenRegex = regexp.MustCompile(`\b[\w']+\b`)

// wordTokens returns every lowercase word token of the text, unfiltered.
// Sentiment scoring and the chemistry positive-word counter run over this
// full token stream.
func wordTokens(text string) []string {
	return wordTokenRegex.FindAllString(strings.ToLower(text), -1)
}

// frequencyTokens filters word tokens down to the ones that feed frequency
// tables: at least two characters and not a stop word.
func frequencyTokens(tokens []string, lex Lexicon) []string {
	filtered := tokens[:0:0]
	for _, tok := range tokens {
		if len(tok) < 2 {
			continue
		}
		if _, stop := lex.StopWords[tok]; stop {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

// countWords counts whitespace-separated words for length statistics.
// Deliberately a separate pass from the stop-word-filtered tokenization used
// for frequency tables; the two counts must not be conflated.
func countWords(text string) int {
	return len(strings.Fields(text))
}

// Emoji code-point blocks, inclusive: misc symbols and pictographs,
// emoticons, transport and map, misc symbols, dingbats.
var emojiRanges = [...][2]rune{
	{0x1F300, 0x1F5FF},
	{0x1F600, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
}

func isEmojiRune(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// extractEmojis returns every emoji in the text, one entry per matched rune.
func extractEmojis(text string) []string {
	var emojis []string
	for _, r := range text {
		if isEmojiRune(r) {
			emojis = append(emojis, string(r))
		}
	}
	return emojis
}
