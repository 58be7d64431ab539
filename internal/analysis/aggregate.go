package analysis

import (
	"sort"
	"time"
	"unicode/utf8"

	"chatscope/internal/domain"
)

const dayKeyLayout = "2006-01-02"

// aggregator accumulates per-sender statistics across one message stream.
// All maps are owned by this run and discarded with it; there is no shared
// state between invocations.
type aggregator struct {
	lexicon Lexicon

	users map[string]*domain.UserStats
	// order records senders in first-seen order so that downstream ranking
	// ties resolve deterministically.
	order []string

	firstOfDay map[string]string
	// lastOfDay maps sender to their latest timestamp within the current
	// calendar day; wiped whenever the day key changes in iteration order.
	lastOfDay  map[string]time.Time
	currentDay string
	responses  map[string][]float64

	activeHours    [24]int
	dailyActivity  map[string]int
	wordFrequency  map[string]int
	emojiFrequency map[string]int
}

func newAggregator(lexicon Lexicon) *aggregator {
	return &aggregator{
		lexicon:        lexicon,
		users:          make(map[string]*domain.UserStats),
		firstOfDay:     make(map[string]string),
		lastOfDay:      make(map[string]time.Time),
		responses:      make(map[string][]float64),
		dailyActivity:  make(map[string]int),
		wordFrequency:  make(map[string]int),
		emojiFrequency: make(map[string]int),
	}
}

// user returns the stats entry for a sender, creating it lazily on the
// sender's first message. Sender identity is the exact string, case-sensitive.
func (a *aggregator) user(sender string) *domain.UserStats {
	if u, ok := a.users[sender]; ok {
		return u
	}
	u := &domain.UserStats{
		Words:         make(map[string]int),
		Emojis:        make(map[string]int),
		DailyActivity: make(map[string]int),
	}
	a.users[sender] = u
	a.order = append(a.order, sender)
	return u
}

// consume folds one message into the running statistics.
func (a *aggregator) consume(msg domain.Message) {
	u := a.user(msg.Sender)

	u.MessageCount++
	u.TotalChars += utf8.RuneCountInString(msg.Text)
	u.TotalWords += countWords(msg.Text)

	dayKey := msg.Timestamp.Format(dayKeyLayout)
	if _, seen := a.firstOfDay[dayKey]; !seen {
		// First message of the day goes to whoever shows up first in
		// iteration order, not by sorted timestamp.
		a.firstOfDay[dayKey] = msg.Sender
		u.FirstMessageCount++
	}

	if a.currentDay != dayKey {
		a.lastOfDay = make(map[string]time.Time)
		a.currentDay = dayKey
	}

	// A response-time sample is the gap since this sender's own previous
	// message of the same day. It measures own-message cadence, not
	// cross-user turn-taking; established product behavior, kept as-is.
	if last, ok := a.lastOfDay[msg.Sender]; ok {
		a.responses[msg.Sender] = append(a.responses[msg.Sender],
			float64(msg.Timestamp.Sub(last).Milliseconds()))
	}
	a.lastOfDay[msg.Sender] = msg.Timestamp

	hour := msg.Timestamp.Hour()
	a.activeHours[hour]++
	u.HourlyActivity[hour]++
	u.WeekdayActivity[msg.Timestamp.Weekday()]++
	a.dailyActivity[dayKey]++
	u.DailyActivity[dayKey]++

	tokens := wordTokens(msg.Text)
	for _, tok := range frequencyTokens(tokens, a.lexicon) {
		a.wordFrequency[tok]++
		u.Words[tok]++
	}

	emojis := extractEmojis(msg.Text)
	for _, e := range emojis {
		a.emojiFrequency[e]++
		u.Emojis[e]++
	}

	u.TotalPositive += countChemistryPositives(a.lexicon, tokens)

	score := scoreMessage(a.lexicon, tokens, emojis)
	u.SentimentScore += score

	u.TopMessages = insertTopMessage(u.TopMessages, domain.TopMessage{
		Text:       msg.Text,
		Sentiment:  score,
		Date:       msg.Timestamp,
		EmojiCount: len(emojis),
	})
}

// insertTopMessage appends, re-sorts by (sentiment desc, emoji count desc)
// and truncates to the fixed capacity. A full resort per insertion is fine at
// this list size; the ordering invariant is what matters.
func insertTopMessage(top []domain.TopMessage, msg domain.TopMessage) []domain.TopMessage {
	top = append(top, msg)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Sentiment != top[j].Sentiment {
			return top[i].Sentiment > top[j].Sentiment
		}
		return top[i].EmojiCount > top[j].EmojiCount
	})
	if len(top) > domain.TopMessagesCap {
		top = top[:domain.TopMessagesCap]
	}
	return top
}

// finalize computes per-user averages once the full stream is consumed.
// AvgResponseTime stays nil for users without samples.
func (a *aggregator) finalize() {
	for _, sender := range a.order {
		u := a.users[sender]
		n := float64(u.MessageCount)
		u.AvgChars = float64(u.TotalChars) / n
		u.AvgWords = float64(u.TotalWords) / n
		u.AvgSentiment = float64(u.SentimentScore) / n

		if samples := a.responses[sender]; len(samples) > 0 {
			sum := 0.0
			for _, s := range samples {
				sum += s
			}
			avg := sum / float64(len(samples))
			u.AvgResponseTime = &avg
		}
	}
}
