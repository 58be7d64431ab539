package analysis

import (
	"fmt"
	"testing"
	"time"

	"chatscope/internal/domain"
)

func msgAt(sender, text string, ts time.Time) domain.Message {
	return domain.Message{Timestamp: ts, Sender: sender, Text: text}
}

func day(d int, hour, minute int) time.Time {
	return time.Date(2023, time.March, d, hour, minute, 0, 0, time.Local)
}

func TestAggregator_FirstMessageOfDay_CreditsFirstSenderOnly(t *testing.T) {
	// Arrange
	agg := newAggregator(DefaultLexicon())

	// Act
	agg.consume(msgAt("alice", "morning", day(1, 8, 0)))
	agg.consume(msgAt("bob", "hi", day(1, 8, 5)))
	agg.consume(msgAt("bob", "hello again", day(2, 9, 0)))
	agg.finalize()

	// Assert
	if got := agg.users["alice"].FirstMessageCount; got != 1 {
		t.Errorf("alice first-message count: got %d, want 1", got)
	}
	if got := agg.users["bob"].FirstMessageCount; got != 1 {
		t.Errorf("bob first-message count: got %d, want 1", got)
	}
}

func TestAggregator_ResponseTime_UsesSendersOwnPreviousMessage(t *testing.T) {
	// Arrange
	agg := newAggregator(DefaultLexicon())

	// Act
	agg.consume(msgAt("alice", "one", day(1, 10, 0)))
	agg.consume(msgAt("bob", "reply", day(1, 10, 1)))
	agg.consume(msgAt("alice", "two", day(1, 10, 4)))
	agg.finalize()

	// Assert
	// Alice's sample measures her own 4-minute gap, not bob's reply.
	avg := agg.users["alice"].AvgResponseTime
	if avg == nil {
		t.Fatal("expected alice to have a response-time average")
	}
	if *avg != 4*60*1000 {
		t.Errorf("avg response time: got %v ms, want 240000", *avg)
	}
	if agg.users["bob"].AvgResponseTime != nil {
		t.Error("expected bob to have no samples from a single message")
	}
}

func TestAggregator_ResponseTime_ResetsAcrossDays(t *testing.T) {
	// Arrange
	agg := newAggregator(DefaultLexicon())

	// Act
	agg.consume(msgAt("alice", "night", day(1, 23, 0)))
	agg.consume(msgAt("alice", "morning", day(2, 8, 0)))
	agg.finalize()

	// Assert
	if agg.users["alice"].AvgResponseTime != nil {
		t.Error("expected no sample across a day boundary")
	}
}

func TestAggregator_ActivityCounters_Hourly_Daily_Weekday(t *testing.T) {
	// Arrange
	agg := newAggregator(DefaultLexicon())
	wed := time.Date(2023, time.March, 1, 14, 0, 0, 0, time.Local)

	// Act
	agg.consume(msgAt("alice", "hi", wed))
	agg.consume(msgAt("alice", "again", wed.Add(10*time.Minute)))
	agg.finalize()

	// Assert
	if got := agg.activeHours[14]; got != 2 {
		t.Errorf("activeHours[14]: got %d, want 2", got)
	}
	u := agg.users["alice"]
	if got := u.HourlyActivity[14]; got != 2 {
		t.Errorf("user hourly[14]: got %d, want 2", got)
	}
	if got := u.WeekdayActivity[time.Wednesday]; got != 2 {
		t.Errorf("weekday[Wednesday]: got %d, want 2", got)
	}
	if got := agg.dailyActivity["2023-03-01"]; got != 2 {
		t.Errorf("dailyActivity: got %d, want 2", got)
	}
	if got := u.DailyActivity["2023-03-01"]; got != 2 {
		t.Errorf("user dailyActivity: got %d, want 2", got)
	}
}

func TestAggregator_WordAndEmojiFrequency_SharedAndPerUser(t *testing.T) {
	// Arrange
	agg := newAggregator(DefaultLexicon())

	// Act
	agg.consume(msgAt("alice", "coffee coffee 😊", day(1, 9, 0)))
	agg.finalize()

	// Assert
	if got := agg.wordFrequency["coffee"]; got != 2 {
		t.Errorf("global word freq: got %d, want 2", got)
	}
	if got := agg.users["alice"].Words["coffee"]; got != 2 {
		t.Errorf("user word freq: got %d, want 2", got)
	}
	if got := agg.emojiFrequency["😊"]; got != 1 {
		t.Errorf("global emoji freq: got %d, want 1", got)
	}
	if got := agg.users["alice"].Emojis["😊"]; got != 1 {
		t.Errorf("user emoji freq: got %d, want 1", got)
	}
}

func TestAggregator_Averages_ComputedOnFinalize(t *testing.T) {
	// Arrange
	agg := newAggregator(DefaultLexicon())

	// Act
	agg.consume(msgAt("alice", "good", day(1, 9, 0)))
	agg.consume(msgAt("alice", "bad day here", day(1, 9, 5)))
	agg.finalize()

	// Assert
	u := agg.users["alice"]
	if u.AvgWords != 2 {
		t.Errorf("avgWords: got %v, want 2", u.AvgWords)
	}
	if u.AvgSentiment != 0 {
		t.Errorf("avgSentiment: got %v, want 0", u.AvgSentiment)
	}
	if u.AvgChars != (4+12)/2.0 {
		t.Errorf("avgChars: got %v, want 8", u.AvgChars)
	}
}

func TestInsertTopMessage_OrdersBySentimentThenEmojis(t *testing.T) {
	// Arrange
	var top []domain.TopMessage

	// Act
	top = insertTopMessage(top, domain.TopMessage{Text: "meh", Sentiment: 0})
	top = insertTopMessage(top, domain.TopMessage{Text: "great", Sentiment: 2})
	top = insertTopMessage(top, domain.TopMessage{Text: "great+emoji", Sentiment: 2, EmojiCount: 3})

	// Assert
	if top[0].Text != "great+emoji" || top[1].Text != "great" || top[2].Text != "meh" {
		t.Errorf("unexpected order: %v", top)
	}
}

func TestInsertTopMessage_CapsListLength(t *testing.T) {
	// Arrange
	var top []domain.TopMessage

	// Act
	for i := 0; i < domain.TopMessagesCap+10; i++ {
		top = insertTopMessage(top, domain.TopMessage{
			Text:      fmt.Sprintf("msg-%d", i),
			Sentiment: i,
		})
	}

	// Assert
	if len(top) != domain.TopMessagesCap {
		t.Fatalf("length: got %d, want %d", len(top), domain.TopMessagesCap)
	}
	if top[0].Sentiment != domain.TopMessagesCap+9 {
		t.Errorf("head sentiment: got %d, want %d", top[0].Sentiment, domain.TopMessagesCap+9)
	}
}
