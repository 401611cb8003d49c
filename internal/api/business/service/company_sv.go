package businessService

import (
	"EmotiClose/internal/api/business"
	"EmotiClose/internal/entity"
	contextPkg "EmotiClose/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *businessService) CreateCompany(ctx context.Context, userID string, req business.CreateCompanyRequest) (business.CompanyResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	companyID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate company ID")
		return business.CompanyResponse{}, err
	}

	company := entity.Company{
		ID:          companyID,
		OwnerID:     userID,
		Name:        req.Name,
		Industry:    req.Industry,
		Website:     req.Website,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	repo, err := s.businessRepo.NewClient(false)
	if err != nil {
		return business.CompanyResponse{}, err
	}

	if err := repo.Companies.CreateCompany(ctx, company); err != nil {
		return business.CompanyResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"company_id": companyID,
		"user_id":    userID,
	}).Info("Company created")

	return makeCompanyResponse(company), nil
}

func (s *businessService) GetCompany(ctx context.Context, userID, companyID string) (business.CompanyResponse, error) {
	company, err := s.ownedCompany(ctx, userID, companyID)
	if err != nil {
		return business.CompanyResponse{}, err
	}

	return makeCompanyResponse(company), nil
}

func (s *businessService) UpdateCompany(ctx context.Context, userID, companyID string, req business.UpdateCompanyRequest) (business.CompanyResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	company, err := s.ownedCompany(ctx, userID, companyID)
	if err != nil {
		return business.CompanyResponse{}, err
	}

	company.Name = req.Name
	company.Industry = req.Industry
	company.Website = req.Website
	company.Description = req.Description
	company.UpdatedAt = time.Now()

	repo, err := s.businessRepo.NewClient(false)
	if err != nil {
		return business.CompanyResponse{}, err
	}

	if err := repo.Companies.UpdateCompany(ctx, company); err != nil {
		return business.CompanyResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"company_id": companyID,
	}).Info("Company updated")

	return makeCompanyResponse(company), nil
}

// ownedCompany loads a company and enforces that the authed user owns it.
// Every company and agent-config operation goes through this check.
func (s *businessService) ownedCompany(ctx context.Context, userID, companyID string) (entity.Company, error) {
	repo, err := s.businessRepo.NewClient(false)
	if err != nil {
		return entity.Company{}, err
	}

	company, err := repo.Companies.GetCompanyByID(ctx, companyID)
	if err != nil {
		return entity.Company{}, err
	}

	if company.OwnerID != userID {
		return entity.Company{}, business.ErrCompanyNotOwned
	}

	return company, nil
}

func makeCompanyResponse(company entity.Company) business.CompanyResponse {
	return business.CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Industry:    company.Industry,
		Website:     company.Website,
		Description: company.Description,
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
}
