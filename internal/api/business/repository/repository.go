package businessRepository

import (
	"EmotiClose/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Companies:    &companyRepository{q: sqlExecutor, log: r.log},
		AgentConfigs: &agentConfigRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Companies interface {
		CreateCompany(c context.Context, company entity.Company) error
		GetCompanyByID(c context.Context, id string) (entity.Company, error)
		UpdateCompany(c context.Context, company entity.Company) error
	}

	AgentConfigs interface {
		CreateAgentConfig(c context.Context, config entity.AgentConfig) error
		GetAgentConfigByCompanyID(c context.Context, companyID string) (entity.AgentConfig, error)
		UpdateAgentConfig(c context.Context, config entity.AgentConfig) error
	}

	Commit   func() error
	Rollback func() error
}

type companyRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type agentConfigRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
