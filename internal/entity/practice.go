package entity

import (
	"EmotiClose/pkg/salescoring"
	"time"
)

// PracticeSummary is the persisted record of one finished practice session.
// Short or empty sessions are discarded before this record is ever built.
type PracticeSummary struct {
	ID               string
	UserID           string
	ScriptTitle      string
	ScriptContent    string
	DurationMs       int64
	MessageCount     int
	AverageMetrics   salescoring.Metrics
	CoachingFeedback []string
	KeyPoints        []string
	Strengths        []string
	Improvements     []string
	CreatedAt        time.Time
}

func NewPracticeSummary(id, userID string, s salescoring.SessionSummary, now time.Time) PracticeSummary {
	return PracticeSummary{
		ID:               id,
		UserID:           userID,
		ScriptTitle:      s.ScriptTitle,
		ScriptContent:    s.ScriptContent,
		DurationMs:       s.DurationMs,
		MessageCount:     s.MessageCount,
		AverageMetrics:   s.AverageMetrics,
		CoachingFeedback: s.CoachingFeedback,
		KeyPoints:        s.ConversationSummary.KeyPoints,
		Strengths:        s.ConversationSummary.Strengths,
		Improvements:     s.ConversationSummary.Improvements,
		CreatedAt:        now,
	}
}
