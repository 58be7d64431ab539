package analysis

import (
	"math"

	"chatscope/internal/domain"
)

// rankUsers picks the most active and most positive senders. Users are
// scanned in first-seen order with strict comparisons, so ties keep the
// earlier sender and stay deterministic.
func rankUsers(a *aggregator) (mostActive, mostPositive string) {
	maxMessages := 0
	maxSentiment := math.Inf(-1)
	for _, sender := range a.order {
		u := a.users[sender]
		if u.MessageCount > maxMessages {
			maxMessages = u.MessageCount
			mostActive = sender
		}
		if u.AvgSentiment > maxSentiment {
			maxSentiment = u.AvgSentiment
			mostPositive = sender
		}
	}
	return mostActive, mostPositive
}

// pickAwards derives the six categorical winners. Most Caring recomputes the
// average-sentiment winner rather than reusing Most Positive, keeping the two
// decision paths explicit. A category with no qualifying user is omitted.
func pickAwards(a *aggregator, mostActive, mostPositive string) []domain.Award {
	var (
		mostCaring     string
		fastestReplier string
		mostDetailed   string
		mostExpressive string

		caringScore   = math.Inf(-1)
		fastestScore  = math.Inf(1)
		detailedScore = math.Inf(-1)
		emojiScore    = math.Inf(-1)
	)

	for _, sender := range a.order {
		u := a.users[sender]

		if u.AvgSentiment > caringScore {
			caringScore = u.AvgSentiment
			mostCaring = sender
		}
		if u.AvgResponseTime != nil && *u.AvgResponseTime < fastestScore {
			fastestScore = *u.AvgResponseTime
			fastestReplier = sender
		}
		if u.AvgChars > detailedScore {
			detailedScore = u.AvgChars
			mostDetailed = sender
		}
		if total := float64(u.EmojiTotal()); total > emojiScore {
			emojiScore = total
			mostExpressive = sender
		}
	}

	candidates := []domain.Award{
		{Title: "Most Active", Recipient: mostActive},
		{Title: "Most Positive", Recipient: mostPositive},
		{Title: "Most Caring", Recipient: mostCaring},
		{Title: "Fastest Replier", Recipient: fastestReplier},
		{Title: "Most Detailed", Recipient: mostDetailed},
		{Title: "Most Expressive", Recipient: mostExpressive},
	}

	awards := make([]domain.Award, 0, len(candidates))
	for _, award := range candidates {
		if award.Recipient != "" {
			awards = append(awards, award)
		}
	}
	return awards
}

// chemistryMetrics are the global derived signals the chemistry rules test.
type chemistryMetrics struct {
	avgSentiment       float64
	avgMessagesPerUser float64
	avgResponseTime    float64
	totalMessages      int
	totalEmojis        int
	totalPositiveWords int
}

// chemistryRule pairs a label with its boolean condition. The list is a
// fixed, ordered taxonomy; the first matching rule wins and the final rule
// matches unconditionally, so exactly one label is always produced. The
// thresholds are product behavior - do not tune them.
type chemistryRule struct {
	chemistry domain.Chemistry
	matches   func(m chemistryMetrics) bool
}

var chemistryRules = []chemistryRule{
	{
		chemistry: domain.Chemistry{
			Emoji:       "💞",
			Label:       "Romantic Spark",
			Description: "Flirty or affectionate, moderate consistency",
		},
		matches: func(m chemistryMetrics) bool {
			return m.avgSentiment > 0.15 && m.avgMessagesPerUser > 20 && m.avgResponseTime < 500000
		},
	},
	{
		chemistry: domain.Chemistry{
			Emoji:       "👀",
			Label:       "Something Special",
			Description: "Frequent, positive, engaging messages",
		},
		matches: func(m chemistryMetrics) bool {
			return m.avgSentiment > 0.10 && m.avgMessagesPerUser > 10 && m.expressive()
		},
	},
	{
		chemistry: domain.Chemistry{
			Emoji:       "🤝",
			Label:       "Strong Friendship",
			Description: "Lots of laughter, inside jokes, trustful words",
		},
		matches: func(m chemistryMetrics) bool {
			return m.avgSentiment > 0.05 && m.avgMessagesPerUser > 10 && m.expressive()
		},
	},
	{
		chemistry: domain.Chemistry{
			Emoji:       "😅",
			Label:       "Just Casual",
			Description: "Light, fun, low emotional weight",
		},
		matches: func(m chemistryMetrics) bool {
			return m.avgSentiment > 0.03 && m.avgMessagesPerUser > 5
		},
	},
	{
		chemistry: domain.Chemistry{
			Emoji:       "😤",
			Label:       "Conflict Zone",
			Description: "Many negative or angry messages",
		},
		matches: func(m chemistryMetrics) bool {
			return m.avgSentiment < -0.2
		},
	},
	{
		chemistry: domain.Chemistry{
			Emoji:       "🧊",
			Label:       "Cold/Neutral",
			Description: "Short or formal texts, no emotion indicators",
		},
		matches: func(chemistryMetrics) bool { return true },
	},
}

// expressive is the shared emoji-or-positive-word density condition.
func (m chemistryMetrics) expressive() bool {
	return float64(m.totalEmojis) > float64(m.totalMessages)*0.1 ||
		float64(m.totalPositiveWords) > float64(m.totalMessages)*0.09
}

// classifyChemistry evaluates the rule list against global derived metrics.
func classifyChemistry(a *aggregator, totalMessages int) domain.Chemistry {
	userCount := len(a.order)

	var totalSentiment, totalResponseTime float64
	var totalEmojis, totalPositiveWords int
	for _, sender := range a.order {
		u := a.users[sender]
		totalSentiment += u.AvgSentiment
		if u.AvgResponseTime != nil {
			totalResponseTime += *u.AvgResponseTime
		}
		totalEmojis += u.EmojiTotal()
		totalPositiveWords += u.TotalPositive
	}

	m := chemistryMetrics{
		avgSentiment:       totalSentiment / float64(userCount),
		avgMessagesPerUser: float64(totalMessages) / float64(userCount),
		// Averaged over all users, including those without samples; a
		// quiet transcript reads as instant replies here, which rule one
		// tolerates by design of the original taxonomy.
		avgResponseTime:    totalResponseTime / float64(userCount),
		totalMessages:      totalMessages,
		totalEmojis:        totalEmojis,
		totalPositiveWords: totalPositiveWords,
	}

	for _, rule := range chemistryRules {
		if rule.matches(m) {
			return rule.chemistry
		}
	}
	// Unreachable: the last rule matches unconditionally.
	return chemistryRules[len(chemistryRules)-1].chemistry
}
