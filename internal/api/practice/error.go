package practice

import (
	"EmotiClose/pkg/response"
	"net/http"
)

var (
	ErrSessionNotFound          = response.NewError(http.StatusNotFound, "practice session not found")
	ErrSessionNotOwned          = response.NewError(http.StatusForbidden, "practice session does not belong to user")
	ErrSummaryNotFound          = response.NewError(http.StatusNotFound, "session summary not found")
	ErrSummaryNotOwned          = response.NewError(http.StatusForbidden, "session summary does not belong to user")
	ErrEmptyEmotionVector       = response.NewError(http.StatusBadRequest, "emotion vector is required")
	ErrEmotionStreamUnavailable = response.NewError(http.StatusServiceUnavailable, "emotion analysis service unavailable")
)
