package salescoring

// EmotionVector is a sparse mapping from emotion name to intensity as emitted
// by the emotion-AI stream, one vector per utterance. The vocabulary is open:
// unknown names are ignored and missing names read as 0. Values are
// conventionally in [0,1] but are not clamped on input.
type EmotionVector map[string]float64

// Get returns the intensity for name, or 0 when the key is absent.
func (e EmotionVector) Get(name string) float64 {
	if e == nil {
		return 0
	}
	return e[name]
}
