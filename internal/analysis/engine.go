package analysis

import (
	"sort"
	"time"

	"chatscope/internal/domain"
)

// Engine runs full transcript analysis against a fixed lexicon. It is
// stateless between calls and safe for concurrent use.
type Engine struct {
	lexicon Lexicon
}

func NewEngine(lexicon Lexicon) *Engine {
	return &Engine{lexicon: lexicon}
}

// Analyze consumes messages in source order and assembles the complete
// result. Same input, same output; there is no randomness or hidden state.
func (e *Engine) Analyze(msgs []domain.Message, now time.Time) (*domain.AnalysisResult, error) {
	if len(msgs) == 0 {
		return nil, domain.ErrEmptyTranscript
	}

	agg := newAggregator(e.lexicon)
	for _, msg := range msgs {
		agg.consume(msg)
	}
	agg.finalize()

	mostActive, mostPositive := rankUsers(agg)

	result := &domain.AnalysisResult{
		Users:             agg.users,
		MostActiveUser:    mostActive,
		MostPositiveUser:  mostPositive,
		TotalMessages:     len(msgs),
		TimeSeries:        buildTimeSeries(agg.dailyActivity, now),
		ActiveHours:       agg.activeHours,
		WordFrequency:     agg.wordFrequency,
		EmojiFrequency:    agg.emojiFrequency,
		FirstMessageStats: firstMessageStats(agg.firstOfDay),
		DateRange: domain.DateRange{
			Start: msgs[0].Timestamp,
			End:   msgs[len(msgs)-1].Timestamp,
		},
		Awards:    pickAwards(agg, mostActive, mostPositive),
		Chemistry: classifyChemistry(agg, len(msgs)),
	}
	return result, nil
}

// buildTimeSeries turns the per-day counters into an ascending series.
// Days after the current local date are dropped; they are artifacts of
// misresolved timestamps, not real activity.
func buildTimeSeries(dailyActivity map[string]int, now time.Time) domain.TimeSeries {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	labels := make([]string, 0, len(dailyActivity))
	for day := range dailyActivity {
		parsed, err := time.ParseInLocation(dayKeyLayout, day, now.Location())
		if err != nil || parsed.After(today) {
			continue
		}
		labels = append(labels, day)
	}
	sort.Strings(labels)

	values := make([]int, len(labels))
	for i, day := range labels {
		values[i] = dailyActivity[day]
	}
	return domain.TimeSeries{Labels: labels, Values: values}
}

// firstMessageStats counts, per sender, how many days they opened.
func firstMessageStats(firstOfDay map[string]string) map[string]int {
	stats := make(map[string]int)
	for _, sender := range firstOfDay {
		stats[sender]++
	}
	return stats
}
