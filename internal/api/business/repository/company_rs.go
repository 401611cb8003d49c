package businessRepository

import (
	"EmotiClose/internal/api/business"
	"EmotiClose/internal/entity"
	contextPkg "EmotiClose/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CompanyDB struct {
	ID          sql.NullString `db:"id"`
	OwnerID     sql.NullString `db:"owner_id"`
	Name        sql.NullString `db:"name"`
	Industry    sql.NullString `db:"industry"`
	Website     sql.NullString `db:"website"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *companyRepository) CreateCompany(c context.Context, company entity.Company) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          company.ID,
		"owner_id":    company.OwnerID,
		"name":        company.Name,
		"industry":    company.Industry,
		"website":     company.Website,
		"description": company.Description,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateCompany, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCompany named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating company")
		return err
	}

	return nil
}

func (r *companyRepository) GetCompanyByID(c context.Context, id string) (entity.Company, error) {
	requestID := contextPkg.GetRequestID(c)
	var company CompanyDB

	query, args, err := sqlx.Named(queryGetCompanyByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCompanyByID named query preparation err")
		return entity.Company{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&company); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug("GetCompanyByID no rows found")
			return entity.Company{}, business.ErrCompanyNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCompanyByID execution err")
		return entity.Company{}, err
	}

	return r.makeCompany(company), nil
}

func (r *companyRepository) UpdateCompany(c context.Context, company entity.Company) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          company.ID,
		"name":        company.Name,
		"industry":    company.Industry,
		"website":     company.Website,
		"description": company.Description,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateCompany, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCompany named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCompany execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCompany rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateCompany no rows affected")
		return business.ErrCompanyNotFound
	}

	return nil
}

func (r *companyRepository) makeCompany(company CompanyDB) entity.Company {
	return entity.Company{
		ID:          company.ID.String,
		OwnerID:     company.OwnerID.String,
		Name:        company.Name.String,
		Industry:    company.Industry.String,
		Website:     company.Website.String,
		Description: company.Description.String,
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
}
