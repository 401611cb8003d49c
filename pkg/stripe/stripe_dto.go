package stripePkg

type CreateIntentRequest struct {
	Amount      int64
	Currency    string
	Description string
}

type CreateIntentResponse struct {
	IntentID     string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
}
