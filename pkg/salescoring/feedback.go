package salescoring

// Feedback item types.
const (
	FeedbackPositive    = "positive"
	FeedbackWarning     = "warning"
	FeedbackImprovement = "improvement"
)

// Feedback categories.
const (
	CategoryConfidence   = "confidence"
	CategoryDelivery     = "delivery"
	CategoryEnergy       = "energy"
	CategoryAuthenticity = "authenticity"
)

type FeedbackItem struct {
	Message  string `json:"message"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

// Canned coaching messages. The "Great"/"Excellent" and "improvement"
// substrings are matched by the session summary to bucket strengths and
// improvements, so keep them in the text.
const (
	msgLowConfidence  = "Work on projecting confidence - slower pacing and firm statements are the fastest improvement"
	msgHighConfidence = "Great confidence! Your conviction is coming through clearly"
	msgLowEnergy      = "Add more energy to your pitch - vocal variety is an easy improvement"
	msgHighEnergy     = "Excellent energy! Your enthusiasm is contagious"
	msgNervous        = "You sound nervous - pause, breathe, and slow down your delivery"
	msgBuildRapport   = "Focus on building rapport before the close - an open question is a quick improvement"
)

// GenerateFeedback recomputes the metrics for the vector and applies the
// threshold rules in a fixed order. Each rule appends at most one item, so
// the result holds between zero and four items.
func GenerateFeedback(emotions EmotionVector) []FeedbackItem {
	metrics := CalculateMetrics(emotions)

	feedback := make([]FeedbackItem, 0, 4)

	if metrics.Confidence < 0.3 {
		feedback = append(feedback, FeedbackItem{
			Message:  msgLowConfidence,
			Type:     FeedbackImprovement,
			Category: CategoryConfidence,
		})
	}
	if metrics.Confidence > 0.7 {
		feedback = append(feedback, FeedbackItem{
			Message:  msgHighConfidence,
			Type:     FeedbackPositive,
			Category: CategoryConfidence,
		})
	}
	if metrics.Enthusiasm < 0.3 {
		feedback = append(feedback, FeedbackItem{
			Message:  msgLowEnergy,
			Type:     FeedbackImprovement,
			Category: CategoryEnergy,
		})
	}
	if metrics.Enthusiasm > 0.7 {
		feedback = append(feedback, FeedbackItem{
			Message:  msgHighEnergy,
			Type:     FeedbackPositive,
			Category: CategoryEnergy,
		})
	}
	if metrics.Nervousness > 0.5 {
		feedback = append(feedback, FeedbackItem{
			Message:  msgNervous,
			Type:     FeedbackWarning,
			Category: CategoryDelivery,
		})
	}
	if metrics.Persuasiveness < 0.4 {
		feedback = append(feedback, FeedbackItem{
			Message:  msgBuildRapport,
			Type:     FeedbackImprovement,
			Category: CategoryAuthenticity,
		})
	}

	return feedback
}
