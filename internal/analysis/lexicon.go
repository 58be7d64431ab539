// Package analysis implements the transcript analysis engine: lexical
// scanning, sentiment scoring, per-user aggregation, insight classification
// and final result assembly. One Engine invocation owns all of its state;
// nothing is shared across runs.
package analysis

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the fixed word and emoji sets the engine scores against.
// The defaults reproduce the product's established sets; changing them
// changes classification behavior, not just implementation.
type Lexicon struct {
	StopWords      map[string]struct{}
	PositiveWords  map[string]struct{}
	NegativeWords  map[string]struct{}
	PositiveEmojis map[string]struct{}
	NegativeEmojis map[string]struct{}

	// ChemistryPositives is the companion positive-word set used only by the
	// chemistry classifier. Kept separate from PositiveWords so the two
	// decision paths stay independent.
	ChemistryPositives map[string]struct{}
}

// Common functional words and chat-filler tokens excluded from frequency
// tables.
var defaultStopWords = []string{
	"with", "gud", "he", "to", "it", "its", "noo", "im", "tt", "asi", "here",
	"see", "yes", "is", "of", "in", "for", "and", "but", "okay", "how", "or",
	"why", "where", "what", "the", "a", "an", "that", "this", "was", "were",
	"are", "am", "i", "you", "we", "they", "me", "him", "her", "us", "them",
	"my", "your", "our", "their", "mine", "yours", "ours", "theirs", "will",
	"so", "i'm", "like", "it's", "not", "now", "be", "omitted", "media", "bt",
	"know", "wat", "have", "cz", "then", "do", "on", "no", "too", "if", "ok",
	"ur", "about", "just", "dont", "kuti",
}

var defaultPositiveWords = []string{
	"good", "great", "excellent", "awesome", "wonderful", "happy", "love",
	"like", "nice", "best", "amazing", "fantastic", "perfect", "beautiful",
	"fun", "joy", "pleasure", "smile", "laugh", "success",
}

var defaultNegativeWords = []string{
	"bad", "terrible", "awful", "hate", "dislike", "horrible", "worst", "sad",
	"angry", "upset", "annoying", "problem", "issue", "wrong", "fail",
	"failure", "disappoint", "cry", "mad",
}

var defaultPositiveEmojis = []string{
	"😊", "😀", "😍", "👍", "❤️", "🎉", "😄", "😎", "🙌", "💯", "🔥", "👏",
	"😘", "🥰", "🤩",
}

var defaultNegativeEmojis = []string{
	"😢", "😭", "😞", "👎", "💔", "😠", "😡", "🤬", "😤", "😒", "🙄", "😑",
	"😔", "😕", "🤢",
}

var defaultChemistryPositives = []string{
	"good", "great", "excellent", "awesome", "wonderful", "happy", "love",
	"like", "nice", "best", "amazing", "fantastic", "perfect", "beautiful",
	"fun", "joy", "pleasure", "smile", "laugh", "success",
}

// DefaultLexicon returns the built-in sets.
func DefaultLexicon() Lexicon {
	return Lexicon{
		StopWords:          toSet(defaultStopWords),
		PositiveWords:      toSet(defaultPositiveWords),
		NegativeWords:      toSet(defaultNegativeWords),
		PositiveEmojis:     toSet(defaultPositiveEmojis),
		NegativeEmojis:     toSet(defaultNegativeEmojis),
		ChemistryPositives: toSet(defaultChemistryPositives),
	}
}

// rawLexicon is the YAML structure of a lexicon override file.
type rawLexicon struct {
	StopWords []string `yaml:"stop_words"`
	Sentiment struct {
		PositiveWords  []string `yaml:"positive_words"`
		NegativeWords  []string `yaml:"negative_words"`
		PositiveEmojis []string `yaml:"positive_emojis"`
		NegativeEmojis []string `yaml:"negative_emojis"`
	} `yaml:"sentiment"`
	Chemistry struct {
		PositiveWords []string `yaml:"positive_words"`
	} `yaml:"chemistry"`
}

// LoadLexicon reads a lexicon override from a YAML file. An empty path
// returns the defaults; a list left empty in the file keeps its default set.
func LoadLexicon(path string) (Lexicon, error) {
	lex := DefaultLexicon()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, err
	}

	var raw rawLexicon
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Lexicon{}, err
	}

	if len(raw.StopWords) > 0 {
		lex.StopWords = toSet(raw.StopWords)
	}
	if len(raw.Sentiment.PositiveWords) > 0 {
		lex.PositiveWords = toSet(raw.Sentiment.PositiveWords)
	}
	if len(raw.Sentiment.NegativeWords) > 0 {
		lex.NegativeWords = toSet(raw.Sentiment.NegativeWords)
	}
	if len(raw.Sentiment.PositiveEmojis) > 0 {
		lex.PositiveEmojis = toSet(raw.Sentiment.PositiveEmojis)
	}
	if len(raw.Sentiment.NegativeEmojis) > 0 {
		lex.NegativeEmojis = toSet(raw.Sentiment.NegativeEmojis)
	}
	if len(raw.Chemistry.PositiveWords) > 0 {
		lex.ChemistryPositives = toSet(raw.Chemistry.PositiveWords)
	}

	return lex, nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
