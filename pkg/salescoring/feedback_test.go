package salescoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFeedbackEmptyVector(t *testing.T) {
	// An all-zero vector trips only the three "too low" rules: confidence,
	// energy, and rapport. Nervousness is zero so no warning fires.
	items := GenerateFeedback(EmotionVector{})

	require.Len(t, items, 3)

	assert.Equal(t, FeedbackImprovement, items[0].Type)
	assert.Equal(t, CategoryConfidence, items[0].Category)

	assert.Equal(t, FeedbackImprovement, items[1].Type)
	assert.Equal(t, CategoryEnergy, items[1].Category)

	assert.Equal(t, FeedbackImprovement, items[2].Type)
	assert.Equal(t, CategoryAuthenticity, items[2].Category)
}

func TestGenerateFeedbackRules(t *testing.T) {
	tests := []struct {
		name       string
		emotions   EmotionVector
		types      []string
		categories []string
	}{
		{
			name: "strong performance earns both positives",
			emotions: EmotionVector{
				"determination": 1.0,
				"contentment":   1.0,
				"satisfaction":  1.0,
				"excitement":    1.0,
				"joy":           1.0,
				"interest":      1.0,
			},
			types:      []string{FeedbackPositive, FeedbackPositive},
			categories: []string{CategoryConfidence, CategoryEnergy},
		},
		{
			name: "nervous speaker gets the delivery warning",
			emotions: EmotionVector{
				"anxiety":       1.0,
				"awkwardness":   1.0,
				"determination": 1.0,
				"contentment":   1.0,
				"satisfaction":  1.0,
				"interest":      1.0,
			},
			types:      []string{FeedbackWarning},
			categories: []string{CategoryDelivery},
		},
		{
			name:       "mid-range scores produce no feedback",
			emotions:   EmotionVector{"determination": 1.0, "excitement": 1.0, "interest": 0.5},
			types:      []string{},
			categories: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := GenerateFeedback(tt.emotions)

			require.Len(t, items, len(tt.types))
			for i, item := range items {
				assert.Equal(t, tt.types[i], item.Type)
				assert.Equal(t, tt.categories[i], item.Category)
				assert.NotEmpty(t, item.Message)
			}
		})
	}
}

func TestGenerateFeedbackMutualExclusivity(t *testing.T) {
	vectors := []EmotionVector{
		{},
		{"determination": 1.0, "contentment": 1.0},
		{"determination": 0.5},
		{"excitement": 2.0},
		{"anxiety": 3.0},
		{"determination": -1, "excitement": -1},
		{"determination": 0.4, "contentment": 0.4, "excitement": 0.6, "joy": 0.6},
	}

	for _, v := range vectors {
		items := GenerateFeedback(v)

		perCategory := make(map[string][]string)
		for _, item := range items {
			perCategory[item.Category] = append(perCategory[item.Category], item.Type)
		}

		assert.LessOrEqual(t, len(perCategory[CategoryConfidence]), 1,
			"confidence rules overlap for %v", v)
		assert.LessOrEqual(t, len(perCategory[CategoryEnergy]), 1,
			"energy rules overlap for %v", v)
		assert.LessOrEqual(t, len(items), 4)
	}
}

func TestGenerateFeedbackIsIdempotent(t *testing.T) {
	v := EmotionVector{"anxiety": 0.9, "interest": 0.2}

	assert.Equal(t, GenerateFeedback(v), GenerateFeedback(v))
}
