package practice

import (
	"EmotiClose/pkg/salescoring"
	"time"
)

type StartSessionRequest struct {
	ScriptTitle   string `json:"script_title" validate:"required,min=1,max=255"`
	ScriptContent string `json:"script_content" validate:"max=10000"`
}

type StartSessionResponse struct {
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
}

type UtteranceRequest struct {
	Emotions   map[string]float64 `json:"emotions" validate:"required"`
	Transcript string             `json:"transcript,omitempty"`
}

type UtteranceResponse struct {
	Metrics      salescoring.Metrics        `json:"metrics"`
	Feedback     []salescoring.FeedbackItem `json:"feedback"`
	Intent       salescoring.Intent         `json:"intent"`
	MessageCount int                        `json:"message_count"`
}

type IntentResponse struct {
	Intent  salescoring.Intent `json:"intent"`
	Actions []string           `json:"actions"`
	Prompt  string             `json:"prompt"`
	ROI     float64            `json:"roi,omitempty"`
}

type EndSessionResponse struct {
	Saved   bool             `json:"saved"`
	Summary *SummaryResponse `json:"summary,omitempty"`
}

type SummaryResponse struct {
	ID               string              `json:"id"`
	ScriptTitle      string              `json:"scriptTitle"`
	ScriptContent    string              `json:"scriptContent,omitempty"`
	DurationMs       int64               `json:"durationMs"`
	MessageCount     int                 `json:"messageCount"`
	AverageMetrics   salescoring.Metrics `json:"averageMetrics"`
	CoachingFeedback []string            `json:"coachingFeedback"`
	KeyPoints        []string            `json:"keyPoints"`
	Strengths        []string            `json:"strengths"`
	Improvements     []string            `json:"improvements"`
	CreatedAt        time.Time           `json:"created_at"`
}

type HistoryListResponse struct {
	Sessions []SummaryResponse `json:"sessions"`
	Total    int               `json:"total"`
}

// LiveFrame is one inbound websocket message on the live scoring endpoint.
type LiveFrame struct {
	Emotions   map[string]float64 `json:"emotions"`
	Transcript string             `json:"transcript,omitempty"`
}

type LiveResult struct {
	Metrics      salescoring.Metrics        `json:"metrics"`
	Feedback     []salescoring.FeedbackItem `json:"feedback"`
	Intent       salescoring.Intent         `json:"intent"`
	MessageCount int                        `json:"message_count"`
	Error        string                     `json:"error,omitempty"`
}
