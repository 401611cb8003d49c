package config

import (
	"EmotiClose/database/postgres"
	authHandler "EmotiClose/internal/api/auth/handler"
	authRepository "EmotiClose/internal/api/auth/repository"
	authService "EmotiClose/internal/api/auth/service"
	businessHandler "EmotiClose/internal/api/business/handler"
	businessRepository "EmotiClose/internal/api/business/repository"
	businessService "EmotiClose/internal/api/business/service"
	paymentHandler "EmotiClose/internal/api/payment/handler"
	paymentService "EmotiClose/internal/api/payment/service"
	practiceHandler "EmotiClose/internal/api/practice/handler"
	practiceRepository "EmotiClose/internal/api/practice/repository"
	practiceService "EmotiClose/internal/api/practice/service"
	"EmotiClose/internal/middleware"
	"EmotiClose/pkg/bcrypt"
	"EmotiClose/pkg/emotion"
	"EmotiClose/pkg/redis"
	"EmotiClose/pkg/smtp"
	stripePkg "EmotiClose/pkg/stripe"
	"EmotiClose/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	db            *sqlx.DB
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	utils         utils.IUtils
	bcryptUtils   bcrypt.IBcrypt
	handlers      []handler
	redisServer   redis.IRedis
	smtpMailer    smtp.ItfSmtp
	emotionStream emotion.IEmotionStream
	stripeClient  stripePkg.IStripeService
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithEmotionStream(stream emotion.IEmotionStream) ServerOption {
	return func(s *Server) error {
		s.emotionStream = stream
		return nil
	}
}

func WithStripeClient() ServerOption {
	return func(s *Server) error {
		client := stripePkg.NewStripeService(s.log)
		if err := client.Init(); err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize Stripe client: %v", err)
			}
			return fmt.Errorf("failed to create Stripe client: %w", err)
		}
		s.stripeClient = client
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.redisServer, s.smtpMailer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Practice Domain
	practiceRepo := practiceRepository.New(s.db, s.log)
	practiceServices := practiceService.NewPracticeService(s.log, practiceRepo, s.emotionStream, s.utils)
	practiceHandlers := practiceHandler.New(s.log, s.validator, s.middleware, practiceServices)

	// Business Domain
	businessRepo := businessRepository.New(s.db, s.log)
	businessServices := businessService.New(s.log, businessRepo, s.utils)
	businessHandlers := businessHandler.New(s.log, s.validator, s.middleware, businessServices)

	// Payment Domain
	paymentServices := paymentService.New(s.log, s.stripeClient)
	paymentHandlers := paymentHandler.New(s.log, s.validator, s.middleware, paymentServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, practiceHandlers, businessHandlers, paymentHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.emotionStream != nil {
			s.emotionStream.Close()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
