package salescoring

import "math"

// Lead temperature levels.
const (
	LevelCold = "COLD"
	LevelWarm = "WARM"
	LevelHot  = "HOT"
)

// Next-action tags per level.
const (
	ActionImmediateClose       = "IMMEDIATE_CLOSE"
	ActionQualifyAndNurture    = "QUALIFY_AND_NURTURE"
	ActionEducateAndBuildTrust = "EDUCATE_AND_BUILD_TRUST"
)

// Intent is the lead-scoring classification for the current state of a
// conversation. Score is in [0,100], Confidence in [0,95].
type Intent struct {
	Level      string  `json:"level"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	NextAction string  `json:"nextAction"`
	Reasoning  string  `json:"reasoning"`
}

// Historical conversion rates per lead level. Fixed table, not tuned at
// runtime.
var conversionRates = map[string]float64{
	LevelHot:  0.45,
	LevelWarm: 0.18,
	LevelCold: 0.03,
}

var intentReasoning = map[string]string{
	LevelHot:  "Strong buying signals - excitement and interest are peaking",
	LevelWarm: "Moderate engagement - the prospect is interested but needs qualification",
	LevelCold: "Low engagement - focus on education and building trust",
}

// AnalyzeIntent scores a prospect's buying intent from the current emotion
// vector plus the length of the conversation so far (a turn counter, not a
// duration). The signal confidence sums absolute intensity over every key
// present in the vector, independent of which keys the score reads.
func AnalyzeIntent(emotions EmotionVector, conversationLength int) Intent {
	raw := 0.4*emotions.Get("excitement") +
		0.3*emotions.Get("interest") +
		0.2*emotions.Get("confidence") +
		0.1*emotions.Get("satisfaction") -
		0.3*emotions.Get("confusion") -
		0.2*emotions.Get("skepticism") -
		0.4*emotions.Get("frustration") -
		0.1*emotions.Get("anxiety") +
		math.Min(float64(conversationLength)/10, 0.3)

	score := math.Max(0, math.Min(100, raw*100))

	var signal float64
	for _, v := range emotions {
		signal += math.Abs(v)
	}
	confidence := math.Min(95, 100*signal)

	var level, nextAction string
	switch {
	case score >= 70:
		level = LevelHot
		nextAction = ActionImmediateClose
	case score >= 40:
		level = LevelWarm
		nextAction = ActionQualifyAndNurture
	default:
		level = LevelCold
		nextAction = ActionEducateAndBuildTrust
	}

	return Intent{
		Level:      level,
		Score:      score,
		Confidence: confidence,
		NextAction: nextAction,
		Reasoning:  intentReasoning[level],
	}
}

// CalculateROI estimates the expected value of the lead: deal size times the
// level's conversion rate, discounted by the signal confidence.
func CalculateROI(intent Intent, averageDealSize float64) float64 {
	return averageDealSize * conversionRates[intent.Level] * (intent.Confidence / 100)
}

// ConversionActions returns the recommended next steps for the intent level.
func ConversionActions(intent Intent) []string {
	switch intent.Level {
	case LevelHot:
		return []string{
			"Ask for the sale directly",
			"Offer a limited-time incentive",
			"Schedule the onboarding call now",
		}
	case LevelWarm:
		return []string{
			"Qualify budget and decision authority",
			"Share a relevant case study",
			"Book a follow-up within 48 hours",
		}
	default:
		return []string{
			"Send educational material",
			"Identify the underlying pain point",
			"Nurture with a low-pressure check-in",
		}
	}
}

// SalesPrompt picks a coaching prompt for the rep from the intent level and
// the dominant blocker emotions.
func SalesPrompt(intent Intent, emotions EmotionVector) string {
	switch intent.Level {
	case LevelHot:
		return "The prospect is ready. Summarize the value and ask for the close."
	case LevelWarm:
		if emotions.Get("confusion") > 0.5 {
			return "The prospect seems confused. Slow down and clarify the offer before advancing."
		}
		if emotions.Get("skepticism") > 0.4 {
			return "The prospect is skeptical. Bring in social proof or a concrete result."
		}
		return "Keep qualifying. Ask what would make this a priority for them."
	default:
		return "Build trust first. Ask open questions and avoid pitching features."
	}
}
