package businessService

import (
	"EmotiClose/internal/api/business"
	businessRepository "EmotiClose/internal/api/business/repository"
	"EmotiClose/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IBusinessService interface {
	CreateCompany(ctx context.Context, userID string, req business.CreateCompanyRequest) (business.CompanyResponse, error)
	GetCompany(ctx context.Context, userID, companyID string) (business.CompanyResponse, error)
	UpdateCompany(ctx context.Context, userID, companyID string, req business.UpdateCompanyRequest) (business.CompanyResponse, error)

	CreateAgentConfig(ctx context.Context, userID, companyID string, req business.AgentConfigRequest) (business.AgentConfigResponse, error)
	GetAgentConfig(ctx context.Context, userID, companyID string) (business.AgentConfigResponse, error)
	UpdateAgentConfig(ctx context.Context, userID, companyID string, req business.AgentConfigRequest) (business.AgentConfigResponse, error)
}

type businessService struct {
	log          *logrus.Logger
	businessRepo businessRepository.Repository
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	businessRepo businessRepository.Repository,
	utils utils.IUtils,
) IBusinessService {
	return &businessService{
		log:          log,
		businessRepo: businessRepo,
		utils:        utils,
	}
}
