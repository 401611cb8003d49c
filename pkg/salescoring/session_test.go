package salescoring

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionMeta(duration time.Duration) SessionMeta {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return SessionMeta{
		ScriptTitle:   "Cold Call Opener",
		ScriptContent: "Hi, this is...",
		StartedAt:     start,
		EndedAt:       start.Add(duration),
	}
}

func TestSummarizeAveragesMetrics(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(Metrics{Confidence: 0.2, Enthusiasm: 0.1, Nervousness: 0.3, Persuasiveness: 0.4, Authenticity: 0.5, OverallScore: 0.2}, nil)
	acc.Add(Metrics{Confidence: 0.4, Enthusiasm: 0.2, Nervousness: 0.0, Persuasiveness: 0.5, Authenticity: 0.6, OverallScore: 0.3}, nil)
	acc.Add(Metrics{Confidence: 0.6, Enthusiasm: 0.3, Nervousness: 0.3, Persuasiveness: 0.6, Authenticity: 0.7, OverallScore: 0.4}, nil)

	summary, ok := acc.Summarize(sessionMeta(45 * time.Second))

	require.True(t, ok)
	assert.Equal(t, 3, summary.MessageCount)
	assert.Equal(t, int64(45000), summary.DurationMs)
	assert.InDelta(t, 0.4, summary.AverageMetrics.Confidence, 1e-9)
	assert.InDelta(t, 0.2, summary.AverageMetrics.Enthusiasm, 1e-9)
	assert.InDelta(t, 0.2, summary.AverageMetrics.Nervousness, 1e-9)
	assert.InDelta(t, 0.5, summary.AverageMetrics.Persuasiveness, 1e-9)
	assert.InDelta(t, 0.6, summary.AverageMetrics.Authenticity, 1e-9)
	assert.InDelta(t, 0.3, summary.AverageMetrics.OverallScore, 1e-9)
}

func TestSummarizeDiscardRules(t *testing.T) {
	t.Run("no utterances", func(t *testing.T) {
		acc := NewAccumulator()

		summary, ok := acc.Summarize(sessionMeta(time.Minute))

		assert.False(t, ok)
		assert.Nil(t, summary)
	})

	t.Run("session under ten seconds", func(t *testing.T) {
		acc := NewAccumulator()
		acc.Add(Metrics{Confidence: 0.5}, nil)

		summary, ok := acc.Summarize(sessionMeta(9999 * time.Millisecond))

		assert.False(t, ok)
		assert.Nil(t, summary)
	})

	t.Run("exactly ten seconds survives", func(t *testing.T) {
		acc := NewAccumulator()
		acc.Add(Metrics{Confidence: 0.5}, nil)

		_, ok := acc.Summarize(sessionMeta(10 * time.Second))

		assert.True(t, ok)
	})
}

func TestSummarizeDeduplicatesFeedback(t *testing.T) {
	acc := NewAccumulator()
	// The same low-confidence tip fires on two different utterances.
	acc.Add(CalculateMetrics(EmotionVector{}), GenerateFeedback(EmotionVector{}))
	acc.Add(CalculateMetrics(EmotionVector{}), GenerateFeedback(EmotionVector{}))

	summary, ok := acc.Summarize(sessionMeta(time.Minute))

	require.True(t, ok)
	assert.Equal(t, 2, summary.MessageCount)

	seen := make(map[string]int)
	for _, msg := range summary.CoachingFeedback {
		seen[msg]++
	}
	for msg, n := range seen {
		assert.Equal(t, 1, n, "message repeated: %s", msg)
	}
	assert.Len(t, seen, 3)
}

func TestSummarizeConversationSummary(t *testing.T) {
	acc := NewAccumulator()
	strong := EmotionVector{
		"determination": 1.0, "contentment": 1.0, "satisfaction": 1.0,
		"excitement": 1.0, "joy": 1.0, "interest": 1.0,
	}
	acc.Add(CalculateMetrics(strong), GenerateFeedback(strong))
	acc.Add(CalculateMetrics(EmotionVector{}), GenerateFeedback(EmotionVector{}))

	summary, ok := acc.Summarize(sessionMeta(30 * time.Second))

	require.True(t, ok)

	require.Len(t, summary.ConversationSummary.KeyPoints, 3)
	assert.Contains(t, summary.ConversationSummary.KeyPoints[0], "Cold Call Opener")
	assert.Contains(t, summary.ConversationSummary.KeyPoints[1], "2 messages")
	assert.Contains(t, summary.ConversationSummary.KeyPoints[2], "%")

	// Both positives contain Great/Excellent; all three low-score tips carry
	// the improvement marker.
	assert.Len(t, summary.ConversationSummary.Strengths, 2)
	assert.Len(t, summary.ConversationSummary.Improvements, 3)
	for _, s := range summary.ConversationSummary.Strengths {
		assert.True(t,
			strings.Contains(s, "Great") || strings.Contains(s, "Excellent"))
	}
}

func TestSummaryKeyPointsConfidencePercent(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(Metrics{Confidence: 0.62}, nil)
	acc.Add(Metrics{Confidence: 0.3}, nil)

	summary, ok := acc.Summarize(sessionMeta(time.Minute))

	require.True(t, ok)
	assert.Equal(t, "Average confidence: 46%", summary.ConversationSummary.KeyPoints[2])
}
