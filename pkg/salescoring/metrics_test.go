package salescoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMetricsEmptyVector(t *testing.T) {
	m := CalculateMetrics(EmotionVector{})

	assert.Equal(t, Metrics{}, m)
}

func TestCalculateMetricsNilVector(t *testing.T) {
	m := CalculateMetrics(nil)

	assert.Equal(t, Metrics{}, m)
}

func TestCalculateMetricsWeights(t *testing.T) {
	tests := []struct {
		name     string
		emotions EmotionVector
		want     Metrics
	}{
		{
			name:     "determination only",
			emotions: EmotionVector{"determination": 1.0},
			want: Metrics{
				Confidence:     0.4,
				Persuasiveness: 0.4,
				OverallScore:   0.2, // (0.4 + 0 + 0.4 + 0 - 0) / 4
			},
		},
		{
			name:     "excitement only",
			emotions: EmotionVector{"excitement": 0.5},
			want: Metrics{
				Enthusiasm:   0.2,
				OverallScore: 0.05,
			},
		},
		{
			name:     "anxiety drives nervousness and suppresses confidence",
			emotions: EmotionVector{"anxiety": 1.0},
			want: Metrics{
				Nervousness:  0.4,
				OverallScore: 0, // negative overall clamps to zero
			},
		},
		{
			name: "calm satisfied speaker",
			emotions: EmotionVector{
				"contentment":  0.5,
				"calmness":     0.5,
				"satisfaction": 0.5,
			},
			want: Metrics{
				Confidence:   0.3,
				Authenticity: 0.5,
				OverallScore: 0.2,
			},
		},
		{
			name:     "confusion subtracts from authenticity",
			emotions: EmotionVector{"contentment": 1.0, "confusion": 1.0},
			want: Metrics{
				Confidence:   0.3,
				Authenticity: 0.2,
				OverallScore: 0.125,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMetrics(tt.emotions)

			assert.InDelta(t, tt.want.Confidence, got.Confidence, 1e-9, "confidence")
			assert.InDelta(t, tt.want.Enthusiasm, got.Enthusiasm, 1e-9, "enthusiasm")
			assert.InDelta(t, tt.want.Nervousness, got.Nervousness, 1e-9, "nervousness")
			assert.InDelta(t, tt.want.Persuasiveness, got.Persuasiveness, 1e-9, "persuasiveness")
			assert.InDelta(t, tt.want.Authenticity, got.Authenticity, 1e-9, "authenticity")
			assert.InDelta(t, tt.want.OverallScore, got.OverallScore, 1e-9, "overall_score")
		})
	}
}

func TestCalculateMetricsRangeInvariant(t *testing.T) {
	vectors := []EmotionVector{
		{"determination": 100, "contentment": 100, "satisfaction": 100, "excitement": 100},
		{"anxiety": 100, "doubt": 100, "nervousness": 100},
		{"determination": -50, "excitement": -50, "contentment": -50},
		{"anxiety": -10, "awkwardness": -10, "embarrassment": -10},
		{"excitement": 3.7, "confusion": 9.1, "admiration": -2.2, "joy": 0.0001},
		{"unknown_emotion": 42, "another": -42},
		{},
	}

	for _, v := range vectors {
		m := CalculateMetrics(v)

		for name, value := range map[string]float64{
			"confidence":     m.Confidence,
			"enthusiasm":     m.Enthusiasm,
			"nervousness":    m.Nervousness,
			"persuasiveness": m.Persuasiveness,
			"authenticity":   m.Authenticity,
			"overall_score":  m.OverallScore,
		} {
			assert.GreaterOrEqual(t, value, 0.0, "%s below range for %v", name, v)
			assert.LessOrEqual(t, value, 1.0, "%s above range for %v", name, v)
		}
	}
}

func TestCalculateMetricsIgnoresUnknownKeys(t *testing.T) {
	base := EmotionVector{"determination": 0.8, "joy": 0.4}
	noisy := EmotionVector{"determination": 0.8, "joy": 0.4, "ennui": 0.9, "saudade": 0.3}

	assert.Equal(t, CalculateMetrics(base), CalculateMetrics(noisy))
}
