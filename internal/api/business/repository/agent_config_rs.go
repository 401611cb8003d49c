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

type AgentConfigDB struct {
	ID             sql.NullString `db:"id"`
	CompanyID      sql.NullString `db:"company_id"`
	AgentName      sql.NullString `db:"agent_name"`
	VoiceID        sql.NullString `db:"voice_id"`
	Greeting       sql.NullString `db:"greeting"`
	SalesScript    sql.NullString `db:"sales_script"`
	ObjectionStyle sql.NullString `db:"objection_style"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r *agentConfigRepository) CreateAgentConfig(c context.Context, config entity.AgentConfig) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":              config.ID,
		"company_id":      config.CompanyID,
		"agent_name":      config.AgentName,
		"voice_id":        config.VoiceID,
		"greeting":        config.Greeting,
		"sales_script":    config.SalesScript,
		"objection_style": config.ObjectionStyle,
		"created_at":      time.Now(),
		"updated_at":      time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateAgentConfig, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAgentConfig named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating agent config")
		return err
	}

	return nil
}

func (r *agentConfigRepository) GetAgentConfigByCompanyID(c context.Context, companyID string) (entity.AgentConfig, error) {
	requestID := contextPkg.GetRequestID(c)
	var config AgentConfigDB

	query, args, err := sqlx.Named(queryGetAgentConfigByCompanyID, map[string]interface{}{"company_id": companyID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAgentConfigByCompanyID named query preparation err")
		return entity.AgentConfig{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&config); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug("GetAgentConfigByCompanyID no rows found")
			return entity.AgentConfig{}, business.ErrAgentConfigNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAgentConfigByCompanyID execution err")
		return entity.AgentConfig{}, err
	}

	return r.makeAgentConfig(config), nil
}

func (r *agentConfigRepository) UpdateAgentConfig(c context.Context, config entity.AgentConfig) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"company_id":      config.CompanyID,
		"agent_name":      config.AgentName,
		"voice_id":        config.VoiceID,
		"greeting":        config.Greeting,
		"sales_script":    config.SalesScript,
		"objection_style": config.ObjectionStyle,
		"updated_at":      time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAgentConfig, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAgentConfig named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAgentConfig execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAgentConfig rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateAgentConfig no rows affected")
		return business.ErrAgentConfigNotFound
	}

	return nil
}

func (r *agentConfigRepository) makeAgentConfig(config AgentConfigDB) entity.AgentConfig {
	return entity.AgentConfig{
		ID:             config.ID.String,
		CompanyID:      config.CompanyID.String,
		AgentName:      config.AgentName.String,
		VoiceID:        config.VoiceID.String,
		Greeting:       config.Greeting.String,
		SalesScript:    config.SalesScript.String,
		ObjectionStyle: config.ObjectionStyle.String,
		CreatedAt:      config.CreatedAt,
		UpdatedAt:      config.UpdatedAt,
	}
}
