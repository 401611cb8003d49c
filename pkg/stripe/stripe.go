package stripePkg

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type IStripeService interface {
	Init() error
	CreatePaymentIntent(req CreateIntentRequest) (*CreateIntentResponse, error)
}

type stripeService struct {
	log *logrus.Logger
}

func NewStripeService(log *logrus.Logger) IStripeService {
	return &stripeService{
		log: log,
	}
}

func (s *stripeService) Init() error {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}

	stripe.Key = key

	s.log.Info("Stripe client initialized")

	return nil
}

func (s *stripeService) CreatePaymentIntent(req CreateIntentRequest) (*CreateIntentResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		s.log.WithError(err).Error("Failed to create payment intent")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"intent_id": intent.ID,
		"amount":    intent.Amount,
		"currency":  intent.Currency,
	}).Info("Payment intent created")

	return &CreateIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
	}, nil
}
