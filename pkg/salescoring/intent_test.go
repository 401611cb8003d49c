package salescoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeIntentEmptyVector(t *testing.T) {
	intent := AnalyzeIntent(EmotionVector{}, 0)

	assert.Equal(t, LevelCold, intent.Level)
	assert.Equal(t, ActionEducateAndBuildTrust, intent.NextAction)
	assert.Zero(t, intent.Score)
	assert.Zero(t, intent.Confidence)
	assert.NotEmpty(t, intent.Reasoning)
}

func TestAnalyzeIntentClassificationBoundaries(t *testing.T) {
	// Scores are driven through the excitement term alone: score = 40·excitement.
	tests := []struct {
		name       string
		excitement float64
		wantScore  float64
		wantLevel  string
		wantAction string
	}{
		{"exactly 70 is hot", 1.75, 70, LevelHot, ActionImmediateClose},
		{"just under 70 is warm", 1.749975, 69.999, LevelWarm, ActionQualifyAndNurture},
		{"exactly 40 is warm", 1.0, 40, LevelWarm, ActionQualifyAndNurture},
		{"just under 40 is cold", 0.999975, 39.999, LevelCold, ActionEducateAndBuildTrust},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := AnalyzeIntent(EmotionVector{"excitement": tt.excitement}, 0)

			assert.InDelta(t, tt.wantScore, intent.Score, 1e-6)
			assert.Equal(t, tt.wantLevel, intent.Level)
			assert.Equal(t, tt.wantAction, intent.NextAction)
		})
	}
}

func TestAnalyzeIntentScoreMonotonicInExcitement(t *testing.T) {
	prev := -1.0
	for excitement := 0.0; excitement <= 3.0; excitement += 0.05 {
		intent := AnalyzeIntent(EmotionVector{"excitement": excitement}, 0)

		assert.GreaterOrEqual(t, intent.Score, prev,
			"score dropped at excitement=%v", excitement)
		prev = intent.Score
	}
}

func TestAnalyzeIntentConversationLengthBonus(t *testing.T) {
	short := AnalyzeIntent(EmotionVector{"interest": 1.0}, 0)
	mid := AnalyzeIntent(EmotionVector{"interest": 1.0}, 2)
	long := AnalyzeIntent(EmotionVector{"interest": 1.0}, 5)
	capped := AnalyzeIntent(EmotionVector{"interest": 1.0}, 50)

	assert.InDelta(t, 30, short.Score, 1e-9)
	assert.InDelta(t, 50, mid.Score, 1e-9)
	assert.InDelta(t, 60, long.Score, 1e-9)
	// Bonus caps at 0.3 no matter how long the conversation runs.
	assert.InDelta(t, long.Score, capped.Score, 1e-9)
}

func TestAnalyzeIntentSignalConfidence(t *testing.T) {
	tests := []struct {
		name     string
		emotions EmotionVector
		want     float64
	}{
		{"no signal", EmotionVector{}, 0},
		{"single weak key", EmotionVector{"interest": 0.2}, 20},
		{"negative values count as magnitude", EmotionVector{"frustration": -0.3, "interest": 0.2}, 50},
		{"keys outside the score formula still count", EmotionVector{"boredom": 0.4, "awe": 0.1}, 50},
		{"capped at 95", EmotionVector{"excitement": 5.0}, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := AnalyzeIntent(tt.emotions, 0)

			assert.InDelta(t, tt.want, intent.Confidence, 1e-9)
		})
	}
}

func TestAnalyzeIntentScoreClamped(t *testing.T) {
	high := AnalyzeIntent(EmotionVector{"excitement": 100}, 0)
	low := AnalyzeIntent(EmotionVector{"frustration": 100}, 0)

	assert.Equal(t, 100.0, high.Score)
	assert.Equal(t, 0.0, low.Score)
}

func TestCalculateROI(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
		deal   float64
		want   float64
	}{
		{"hot lead", Intent{Level: LevelHot, Confidence: 80}, 1000, 360},
		{"warm lead", Intent{Level: LevelWarm, Confidence: 50}, 1000, 90},
		{"cold lead", Intent{Level: LevelCold, Confidence: 95}, 2000, 57},
		{"zero confidence", Intent{Level: LevelHot, Confidence: 0}, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateROI(tt.intent, tt.deal), 1e-9)
		})
	}
}

func TestConversionActionsPerLevel(t *testing.T) {
	for _, level := range []string{LevelHot, LevelWarm, LevelCold} {
		actions := ConversionActions(Intent{Level: level})

		assert.NotEmpty(t, actions, "no actions for %s", level)
	}

	assert.NotEqual(t,
		ConversionActions(Intent{Level: LevelHot}),
		ConversionActions(Intent{Level: LevelCold}))
}

func TestSalesPromptWarmBranches(t *testing.T) {
	warm := Intent{Level: LevelWarm}

	confused := SalesPrompt(warm, EmotionVector{"confusion": 0.6})
	skeptical := SalesPrompt(warm, EmotionVector{"skepticism": 0.5})
	neutral := SalesPrompt(warm, EmotionVector{})

	assert.Contains(t, confused, "confused")
	assert.Contains(t, skeptical, "skeptical")
	assert.NotEqual(t, confused, neutral)
	assert.NotEqual(t, skeptical, neutral)

	// Confusion wins when both blockers are present.
	both := SalesPrompt(warm, EmotionVector{"confusion": 0.6, "skepticism": 0.5})
	assert.Equal(t, confused, both)
}

func TestRandomSelectionIsSeedable(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))

	for i := 0; i < 10; i++ {
		assert.Equal(t, RandomQuestion(a), RandomQuestion(b))
		assert.Equal(t, RandomObjectionHandler(a), RandomObjectionHandler(b))
	}
}
