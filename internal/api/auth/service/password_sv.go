package authService

import (
	"EmotiClose/internal/api/auth"
	contextPkg "EmotiClose/pkg/context"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"
)

const otpTTL = 5 * time.Minute

func otpKey(email string) string {
	return "password-reset:" + email
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}

func (s *authService) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		return err
	}

	user, err := repo.Users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	if err := s.redisServer.SetOTP(ctx, otpKey(user.Email), code, otpTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store OTP")
		return err
	}

	if err := s.smtpMailer.CreateSmtp(user.Email, code); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send OTP email")
		return err
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	stored, err := s.redisServer.GetOTP(ctx, otpKey(req.Email))
	if err != nil {
		return auth.ErrOTPExpired
	}
	if stored != req.Code {
		return auth.ErrInvalidOTP
	}

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		return err
	}

	user, err := repo.Users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err == nil {
		return auth.ErrPasswordSame
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	if err := repo.Users.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Password reset completed")

	return nil
}
