package authService

import (
	"EmotiClose/internal/api/auth"
	authRepository "EmotiClose/internal/api/auth/repository"
	"EmotiClose/pkg/bcrypt"
	"EmotiClose/pkg/redis"
	"EmotiClose/pkg/smtp"
	"EmotiClose/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) error
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (auth.UserResponse, error)
	ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error
}

type authService struct {
	log         *logrus.Logger
	authRepo    authRepository.Repository
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	redisServer redis.IRedis,
	smtpMailer smtp.ItfSmtp,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:         log,
		authRepo:    authRepo,
		redisServer: redisServer,
		smtpMailer:  smtpMailer,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
