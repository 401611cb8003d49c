package businessService

import (
	"EmotiClose/internal/api/business"
	businessRepository "EmotiClose/internal/api/business/repository"
	"EmotiClose/internal/entity"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusinessStore struct {
	mu        sync.Mutex
	companies map[string]entity.Company
	configs   map[string]entity.AgentConfig
}

func newFakeBusinessStore() *fakeBusinessStore {
	return &fakeBusinessStore{
		companies: make(map[string]entity.Company),
		configs:   make(map[string]entity.AgentConfig),
	}
}

func (f *fakeBusinessStore) NewClient(tx bool) (businessRepository.Client, error) {
	return businessRepository.Client{
		Companies:    f,
		AgentConfigs: (*fakeConfigStore)(f),
		Commit:       func() error { return nil },
		Rollback:     func() error { return nil },
	}, nil
}

func (f *fakeBusinessStore) CreateCompany(c context.Context, company entity.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.companies[company.ID] = company
	return nil
}

func (f *fakeBusinessStore) GetCompanyByID(c context.Context, id string) (entity.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	company, ok := f.companies[id]
	if !ok {
		return entity.Company{}, business.ErrCompanyNotFound
	}
	return company, nil
}

func (f *fakeBusinessStore) UpdateCompany(c context.Context, company entity.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.companies[company.ID]; !ok {
		return business.ErrCompanyNotFound
	}
	f.companies[company.ID] = company
	return nil
}

type fakeConfigStore fakeBusinessStore

func (f *fakeConfigStore) CreateAgentConfig(c context.Context, config entity.AgentConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs[config.CompanyID] = config
	return nil
}

func (f *fakeConfigStore) GetAgentConfigByCompanyID(c context.Context, companyID string) (entity.AgentConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	config, ok := f.configs[companyID]
	if !ok {
		return entity.AgentConfig{}, business.ErrAgentConfigNotFound
	}
	return config, nil
}

func (f *fakeConfigStore) UpdateAgentConfig(c context.Context, config entity.AgentConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.configs[config.CompanyID]; !ok {
		return business.ErrAgentConfigNotFound
	}
	f.configs[config.CompanyID] = config
	return nil
}

type fakeIDSource struct {
	n int
}

func (f *fakeIDSource) NewULIDFromTimestamp(t time.Time) (string, error) {
	f.n++
	return fmt.Sprintf("id-%03d", f.n), nil
}

func newTestService(store *fakeBusinessStore) IBusinessService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(logger, store, &fakeIDSource{})
}

func TestCompanyLifecycle(t *testing.T) {
	svc := newTestService(newFakeBusinessStore())
	ctx := context.Background()

	created, err := svc.CreateCompany(ctx, "user-1", business.CreateCompanyRequest{
		Name:     "Acme Sales",
		Industry: "SaaS",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	t.Run("owner reads company", func(t *testing.T) {
		got, err := svc.GetCompany(ctx, "user-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Sales", got.Name)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		_, err := svc.GetCompany(ctx, "user-2", created.ID)
		assert.ErrorIs(t, err, business.ErrCompanyNotOwned)
	})

	t.Run("owner updates company", func(t *testing.T) {
		got, err := svc.UpdateCompany(ctx, "user-1", created.ID, business.UpdateCompanyRequest{
			Name:     "Acme Sales",
			Industry: "Fintech",
		})
		require.NoError(t, err)
		assert.Equal(t, "Fintech", got.Industry)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := svc.GetCompany(ctx, "user-1", "missing")
		assert.ErrorIs(t, err, business.ErrCompanyNotFound)
	})
}

func TestAgentConfigLifecycle(t *testing.T) {
	svc := newTestService(newFakeBusinessStore())
	ctx := context.Background()

	company, err := svc.CreateCompany(ctx, "user-1", business.CreateCompanyRequest{Name: "Acme Sales"})
	require.NoError(t, err)

	req := business.AgentConfigRequest{
		AgentName:      "Skeptical Sam",
		VoiceID:        "voice-7",
		ObjectionStyle: "aggressive",
	}

	created, err := svc.CreateAgentConfig(ctx, "user-1", company.ID, req)
	require.NoError(t, err)
	assert.Equal(t, company.ID, created.CompanyID)

	t.Run("second create conflicts", func(t *testing.T) {
		_, err := svc.CreateAgentConfig(ctx, "user-1", company.ID, req)
		assert.ErrorIs(t, err, business.ErrAgentConfigExists)
	})

	t.Run("ownership enforced through company", func(t *testing.T) {
		_, err := svc.GetAgentConfig(ctx, "user-2", company.ID)
		assert.ErrorIs(t, err, business.ErrCompanyNotOwned)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		req.ObjectionStyle = "soft"
		got, err := svc.UpdateAgentConfig(ctx, "user-1", company.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "soft", got.ObjectionStyle)
	})
}
