package business

import (
	"EmotiClose/pkg/response"
	"net/http"
)

var (
	ErrCompanyNotFound     = response.NewError(http.StatusNotFound, "company not found")
	ErrCompanyNotOwned     = response.NewError(http.StatusForbidden, "company does not belong to user")
	ErrAgentConfigNotFound = response.NewError(http.StatusNotFound, "agent config not found")
	ErrAgentConfigExists   = response.NewError(http.StatusConflict, "agent config already exists for company")
)
