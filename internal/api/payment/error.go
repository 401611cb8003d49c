package payment

import (
	"EmotiClose/pkg/response"
	"net/http"
)

var (
	ErrPaymentProviderFailed = response.NewError(http.StatusBadGateway, "payment provider request failed")
)
