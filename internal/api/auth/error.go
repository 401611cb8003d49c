package auth

import (
	"EmotiClose/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrUsernameAlreadyExists  = response.NewError(http.StatusConflict, "username already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrInvalidOTP             = response.NewError(http.StatusBadRequest, "invalid otp")
	ErrOTPExpired             = response.NewError(http.StatusBadRequest, "otp expired or not found")
	ErrPasswordSame           = response.NewError(http.StatusBadRequest, "password same as before")
)
