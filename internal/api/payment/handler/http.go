package paymentHandler

import (
	paymentService "EmotiClose/internal/api/payment/service"
	"EmotiClose/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PaymentHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	paymentService paymentService.IPaymentService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps paymentService.IPaymentService,
) *PaymentHandler {
	return &PaymentHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		paymentService: ps,
	}
}

func (h *PaymentHandler) Start(srv fiber.Router) {
	payment := srv.Group("/payment")

	payment.Use(h.middleware.NewTokenMiddleware)

	payment.Post("/intents", h.CreatePaymentIntent)
}
