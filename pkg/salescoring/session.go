package salescoring

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Sessions shorter than this, or with no analyzed utterances, are discarded
// instead of summarized.
const minSessionDuration = 10 * time.Second

const maxSummaryBullets = 3

// SessionMeta carries the session-level facts the summary needs.
type SessionMeta struct {
	ScriptTitle   string
	ScriptContent string
	StartedAt     time.Time
	EndedAt       time.Time
}

type ConversationSummary struct {
	KeyPoints    []string `json:"keyPoints"`
	Improvements []string `json:"improvements"`
	Strengths    []string `json:"strengths"`
}

// SessionSummary is the one record produced when a practice session ends.
type SessionSummary struct {
	DurationMs          int64               `json:"durationMs"`
	ScriptTitle         string              `json:"scriptTitle"`
	ScriptContent       string              `json:"scriptContent"`
	MessageCount        int                 `json:"messageCount"`
	AverageMetrics      Metrics             `json:"averageMetrics"`
	CoachingFeedback    []string            `json:"coachingFeedback"`
	ConversationSummary ConversationSummary `json:"conversationSummary"`
}

// Accumulator collects per-utterance results over the lifetime of one active
// practice session. One accumulator per session; it is not safe for use by
// concurrent sessions.
type Accumulator struct {
	metrics  []Metrics
	feedback []string
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

func (a *Accumulator) Add(m Metrics, items []FeedbackItem) {
	a.metrics = append(a.metrics, m)
	for _, item := range items {
		a.feedback = append(a.feedback, item.Message)
	}
}

// Count reports how many utterances have been analyzed so far.
func (a *Accumulator) Count() int {
	return len(a.metrics)
}

// Summarize reduces the accumulated utterances to one SessionSummary. It
// returns false when the session is discarded: no utterances were analyzed or
// the session ran shorter than the minimum duration. Discarded sessions must
// not be persisted.
func (a *Accumulator) Summarize(meta SessionMeta) (*SessionSummary, bool) {
	duration := meta.EndedAt.Sub(meta.StartedAt)
	if len(a.metrics) == 0 || duration < minSessionDuration {
		return nil, false
	}

	avg := averageMetrics(a.metrics)
	messages := dedupeMessages(a.feedback)

	keyPoints := []string{
		fmt.Sprintf("Script: %s", meta.ScriptTitle),
		fmt.Sprintf("%d messages analyzed", len(a.metrics)),
		fmt.Sprintf("Average confidence: %d%%", int(math.Round(avg.Confidence*100))),
	}

	var strengths, improvements []string
	for _, msg := range messages {
		if strings.Contains(msg, "Great") || strings.Contains(msg, "Excellent") {
			if len(strengths) < maxSummaryBullets {
				strengths = append(strengths, msg)
			}
		}
		if strings.Contains(msg, "improvement") {
			if len(improvements) < maxSummaryBullets {
				improvements = append(improvements, msg)
			}
		}
	}

	return &SessionSummary{
		DurationMs:       duration.Milliseconds(),
		ScriptTitle:      meta.ScriptTitle,
		ScriptContent:    meta.ScriptContent,
		MessageCount:     len(a.metrics),
		AverageMetrics:   avg,
		CoachingFeedback: messages,
		ConversationSummary: ConversationSummary{
			KeyPoints:    keyPoints,
			Improvements: improvements,
			Strengths:    strengths,
		},
	}, true
}

func averageMetrics(all []Metrics) Metrics {
	var sum Metrics
	for _, m := range all {
		sum.Confidence += m.Confidence
		sum.Enthusiasm += m.Enthusiasm
		sum.Nervousness += m.Nervousness
		sum.Persuasiveness += m.Persuasiveness
		sum.Authenticity += m.Authenticity
		sum.OverallScore += m.OverallScore
	}

	n := float64(len(all))
	return Metrics{
		Confidence:     sum.Confidence / n,
		Enthusiasm:     sum.Enthusiasm / n,
		Nervousness:    sum.Nervousness / n,
		Persuasiveness: sum.Persuasiveness / n,
		Authenticity:   sum.Authenticity / n,
		OverallScore:   sum.OverallScore / n,
	}
}

// dedupeMessages keeps the first occurrence of each message. Callers should
// not rely on the order beyond that.
func dedupeMessages(messages []string) []string {
	seen := make(map[string]bool, len(messages))
	out := make([]string, 0, len(messages))
	for _, msg := range messages {
		if seen[msg] {
			continue
		}
		seen[msg] = true
		out = append(out, msg)
	}
	return out
}
