package salescoring

import "math/rand"

// Practice prompts the coach surfaces between utterances. The random source
// is injected so callers (and tests) control selection.

var discoveryQuestions = []string{
	"What prompted you to look into this now?",
	"What does success look like for your team this quarter?",
	"Who else would be involved in a decision like this?",
	"What have you tried so far, and what got in the way?",
	"If nothing changes, what does that cost you?",
}

var objectionHandlers = []string{
	"That's fair - most of our customers felt the same before they saw the numbers. Can I show you theirs?",
	"I hear you on price. What would the outcome need to be worth to justify it?",
	"Totally understand wanting to think it over. What specifically is still open for you?",
	"Good point. How are you solving that part today?",
}

func RandomQuestion(r *rand.Rand) string {
	return discoveryQuestions[r.Intn(len(discoveryQuestions))]
}

func RandomObjectionHandler(r *rand.Rand) string {
	return objectionHandlers[r.Intn(len(objectionHandlers))]
}
