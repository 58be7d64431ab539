package domain

import "time"

// TopMessage is one entry of a user's bounded top-messages list.
type TopMessage struct {
	Text       string    `json:"message"`
	Sentiment  int       `json:"sentiment"`
	Date       time.Time `json:"date"`
	EmojiCount int       `json:"emojiCount"`
}

// TopMessagesCap bounds every per-user top-messages list.
const TopMessagesCap = 20

// UserStats accumulates per-sender statistics across one analysis run.
// Sender identity is the exact display-name string, case-sensitive.
// Created lazily on a sender's first message, mutated incrementally, then
// finalized once the full stream is consumed.
type UserStats struct {
	MessageCount      int            `json:"messageCount"`
	TotalChars        int            `json:"totalChars"`
	TotalWords        int            `json:"totalWords"`
	Words             map[string]int `json:"words"`
	Emojis            map[string]int `json:"emojis"`
	SentimentScore    int            `json:"sentimentScore"`
	FirstMessageCount int            `json:"firstMessageCount"`
	HourlyActivity    [24]int        `json:"hourlyActivity"`
	DailyActivity     map[string]int `json:"dailyActivity"`
	WeekdayActivity   [7]int         `json:"dailyActivityByDay"`
	TopMessages       []TopMessage   `json:"topMessages"`
	TotalPositive     int            `json:"totalPositiveWords"`

	// Finalized averages. AvgResponseTime stays nil when the user never
	// produced a response-time sample.
	AvgChars        float64  `json:"avgChars"`
	AvgWords        float64  `json:"avgWords"`
	AvgSentiment    float64  `json:"avgSentiment"`
	AvgResponseTime *float64 `json:"avgResponseTime"`
}

// EmojiTotal returns the user's total emoji count across all emoji.
func (s *UserStats) EmojiTotal() int {
	total := 0
	for _, n := range s.Emojis {
		total += n
	}
	return total
}

// TimeSeries is the per-day message-count series, oldest day first.
type TimeSeries struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// DateRange spans the first and last message timestamps in source order.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Award is a single categorical winner pick.
type Award struct {
	Title     string `json:"title"`
	Recipient string `json:"recipient"`
}

// Chemistry is the categorical relationship label for a whole transcript.
type Chemistry struct {
	Emoji       string `json:"emoji"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// AnalysisResult is the complete output of one analysis run. Produced once
// per invocation and read-only to consumers.
type AnalysisResult struct {
	Users             map[string]*UserStats `json:"users"`
	MostActiveUser    string                `json:"mostActiveUser"`
	MostPositiveUser  string                `json:"mostPositiveUser"`
	TotalMessages     int                   `json:"totalMessages"`
	TimeSeries        TimeSeries            `json:"timeSeries"`
	ActiveHours       [24]int               `json:"activeHours"`
	WordFrequency     map[string]int        `json:"wordFrequency"`
	EmojiFrequency    map[string]int        `json:"emojiFrequency"`
	FirstMessageStats map[string]int        `json:"firstMessageStats"`
	DateRange         DateRange             `json:"dateRange"`
	Awards            []Award               `json:"awards"`
	Chemistry         Chemistry             `json:"chemistry"`
}
