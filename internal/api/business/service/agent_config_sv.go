package businessService

import (
	"EmotiClose/internal/api/business"
	"EmotiClose/internal/entity"
	contextPkg "EmotiClose/pkg/context"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *businessService) CreateAgentConfig(ctx context.Context, userID, companyID string, req business.AgentConfigRequest) (business.AgentConfigResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.ownedCompany(ctx, userID, companyID); err != nil {
		return business.AgentConfigResponse{}, err
	}

	repo, err := s.businessRepo.NewClient(false)
	if err != nil {
		return business.AgentConfigResponse{}, err
	}

	// One agent config per company.
	_, err = repo.AgentConfigs.GetAgentConfigByCompanyID(ctx, companyID)
	if err == nil {
		return business.AgentConfigResponse{}, business.ErrAgentConfigExists
	}
	if !errors.Is(err, business.ErrAgentConfigNotFound) {
		return business.AgentConfigResponse{}, err
	}

	configID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate agent config ID")
		return business.AgentConfigResponse{}, err
	}

	config := entity.AgentConfig{
		ID:             configID,
		CompanyID:      companyID,
		AgentName:      req.AgentName,
		VoiceID:        req.VoiceID,
		Greeting:       req.Greeting,
		SalesScript:    req.SalesScript,
		ObjectionStyle: req.ObjectionStyle,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := repo.AgentConfigs.CreateAgentConfig(ctx, config); err != nil {
		return business.AgentConfigResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"company_id": companyID,
		"config_id":  configID,
	}).Info("Agent config created")

	return makeAgentConfigResponse(config), nil
}

func (s *businessService) GetAgentConfig(ctx context.Context, userID, companyID string) (business.AgentConfigResponse, error) {
	if _, err := s.ownedCompany(ctx, userID, companyID); err != nil {
		return business.AgentConfigResponse{}, err
	}

	repo, err := s.businessRepo.NewClient(false)
	if err != nil {
		return business.AgentConfigResponse{}, err
	}

	config, err := repo.AgentConfigs.GetAgentConfigByCompanyID(ctx, companyID)
	if err != nil {
		return business.AgentConfigResponse{}, err
	}

	return makeAgentConfigResponse(config), nil
}

func (s *businessService) UpdateAgentConfig(ctx context.Context, userID, companyID string, req business.AgentConfigRequest) (business.AgentConfigResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.ownedCompany(ctx, userID, companyID); err != nil {
		return business.AgentConfigResponse{}, err
	}

	repo, err := s.businessRepo.NewClient(false)
	if err != nil {
		return business.AgentConfigResponse{}, err
	}

	config, err := repo.AgentConfigs.GetAgentConfigByCompanyID(ctx, companyID)
	if err != nil {
		return business.AgentConfigResponse{}, err
	}

	config.AgentName = req.AgentName
	config.VoiceID = req.VoiceID
	config.Greeting = req.Greeting
	config.SalesScript = req.SalesScript
	config.ObjectionStyle = req.ObjectionStyle
	config.UpdatedAt = time.Now()

	if err := repo.AgentConfigs.UpdateAgentConfig(ctx, config); err != nil {
		return business.AgentConfigResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"company_id": companyID,
	}).Info("Agent config updated")

	return makeAgentConfigResponse(config), nil
}

func makeAgentConfigResponse(config entity.AgentConfig) business.AgentConfigResponse {
	return business.AgentConfigResponse{
		ID:             config.ID,
		CompanyID:      config.CompanyID,
		AgentName:      config.AgentName,
		VoiceID:        config.VoiceID,
		Greeting:       config.Greeting,
		SalesScript:    config.SalesScript,
		ObjectionStyle: config.ObjectionStyle,
		CreatedAt:      config.CreatedAt,
		UpdatedAt:      config.UpdatedAt,
	}
}
