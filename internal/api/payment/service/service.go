package paymentService

import (
	"EmotiClose/internal/api/payment"
	contextPkg "EmotiClose/pkg/context"
	stripePkg "EmotiClose/pkg/stripe"
	"context"

	"github.com/sirupsen/logrus"
)

type IPaymentService interface {
	CreatePaymentIntent(ctx context.Context, userID string, req payment.CreateIntentRequest) (payment.CreateIntentResponse, error)
}

type paymentService struct {
	log           *logrus.Logger
	stripeService stripePkg.IStripeService
}

func New(
	log *logrus.Logger,
	stripeService stripePkg.IStripeService,
) IPaymentService {
	return &paymentService{
		log:           log,
		stripeService: stripeService,
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, userID string, req payment.CreateIntentRequest) (payment.CreateIntentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	res, err := s.stripeService.CreatePaymentIntent(stripePkg.CreateIntentRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Stripe payment intent creation failed")
		return payment.CreateIntentResponse{}, payment.ErrPaymentProviderFailed
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"intent_id":  res.IntentID,
	}).Info("Payment intent created")

	return payment.CreateIntentResponse{
		IntentID:     res.IntentID,
		ClientSecret: res.ClientSecret,
		Amount:       res.Amount,
		Currency:     res.Currency,
		Status:       res.Status,
	}, nil
}
