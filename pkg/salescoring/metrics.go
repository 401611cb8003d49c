package salescoring

import "math"

// Metrics holds the six composite sales scores derived from one emotion
// vector. Every field is in [0,1].
type Metrics struct {
	Confidence     float64 `json:"confidence"`
	Enthusiasm     float64 `json:"enthusiasm"`
	Nervousness    float64 `json:"nervousness"`
	Persuasiveness float64 `json:"persuasiveness"`
	Authenticity   float64 `json:"authenticity"`
	OverallScore   float64 `json:"overall_score"`
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// CalculateMetrics maps an emotion vector to sales metrics using fixed
// weighted sums. Intermediate sums may go negative; only the final value of
// each field is clamped. The overall score uses the floored nervousness
// value, not a reclamped one. Keep the order of operations as is.
func CalculateMetrics(emotions EmotionVector) Metrics {
	confidence := 0.4*emotions.Get("determination") +
		0.3*emotions.Get("contentment") +
		0.3*emotions.Get("satisfaction") -
		0.4*emotions.Get("anxiety") -
		0.3*emotions.Get("doubt") -
		0.3*emotions.Get("nervousness")
	confidence = math.Max(0, confidence)

	enthusiasm := 0.4*emotions.Get("excitement") +
		0.3*emotions.Get("joy") +
		0.3*emotions.Get("interest")

	nervousness := 0.4*emotions.Get("anxiety") +
		0.3*emotions.Get("awkwardness") +
		0.3*emotions.Get("embarrassment")
	nervousness = math.Max(0, nervousness)

	persuasiveness := 0.3*emotions.Get("admiration") +
		0.3*emotions.Get("interest") +
		0.4*emotions.Get("determination")

	authenticity := 0.4*emotions.Get("contentment") +
		0.3*emotions.Get("calmness") +
		0.3*emotions.Get("satisfaction") -
		0.2*emotions.Get("confusion")

	overall := (confidence + enthusiasm + persuasiveness + authenticity - 0.5*nervousness) / 4

	return Metrics{
		Confidence:     clamp01(confidence),
		Enthusiasm:     clamp01(enthusiasm),
		Nervousness:    clamp01(nervousness),
		Persuasiveness: clamp01(persuasiveness),
		Authenticity:   clamp01(authenticity),
		OverallScore:   clamp01(overall),
	}
}
