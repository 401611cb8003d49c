package practiceRepository

import (
	"EmotiClose/internal/api/practice"
	"EmotiClose/internal/entity"
	contextPkg "EmotiClose/pkg/context"
	"EmotiClose/pkg/salescoring"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PracticeSummaryDB struct {
	ID               sql.NullString `db:"id"`
	UserID           sql.NullString `db:"user_id"`
	ScriptTitle      sql.NullString `db:"script_title"`
	ScriptContent    sql.NullString `db:"script_content"`
	DurationMs       sql.NullInt64  `db:"duration_ms"`
	MessageCount     sql.NullInt64  `db:"message_count"`
	AverageMetrics   []byte         `db:"average_metrics"`
	CoachingFeedback []byte         `db:"coaching_feedback"`
	KeyPoints        []byte         `db:"key_points"`
	Strengths        []byte         `db:"strengths"`
	Improvements     []byte         `db:"improvements"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (r *summaryRepository) CreateSummary(c context.Context, summary entity.PracticeSummary) error {
	requestID := contextPkg.GetRequestID(c)

	metricsJSON, err := json.Marshal(summary.AverageMetrics)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal average metrics")
		return err
	}

	feedbackJSON, err := json.Marshal(summary.CoachingFeedback)
	if err != nil {
		return err
	}
	keyPointsJSON, err := json.Marshal(summary.KeyPoints)
	if err != nil {
		return err
	}
	strengthsJSON, err := json.Marshal(summary.Strengths)
	if err != nil {
		return err
	}
	improvementsJSON, err := json.Marshal(summary.Improvements)
	if err != nil {
		return err
	}

	argsKV := map[string]interface{}{
		"id":                summary.ID,
		"user_id":           summary.UserID,
		"script_title":      summary.ScriptTitle,
		"script_content":    summary.ScriptContent,
		"duration_ms":       summary.DurationMs,
		"message_count":     summary.MessageCount,
		"average_metrics":   string(metricsJSON),
		"coaching_feedback": string(feedbackJSON),
		"key_points":        string(keyPointsJSON),
		"strengths":         string(strengthsJSON),
		"improvements":      string(improvementsJSON),
		"created_at":        summary.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateSummary, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateSummary")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating practice summary")
		return err
	}

	return nil
}

func (r *summaryRepository) GetSummaryByID(c context.Context, id string) (entity.PracticeSummary, error) {
	requestID := contextPkg.GetRequestID(c)
	var summary PracticeSummaryDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetSummaryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSummaryByID named query preparation err")
		return entity.PracticeSummary{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&summary); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug("GetSummaryByID no rows found")
			return entity.PracticeSummary{}, practice.ErrSummaryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSummaryByID execution err")
		return entity.PracticeSummary{}, err
	}

	return r.makePracticeSummary(summary)
}

func (r *summaryRepository) GetSummariesByUserID(c context.Context, userID string) ([]entity.PracticeSummary, error) {
	requestID := contextPkg.GetRequestID(c)
	var summaries []PracticeSummaryDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetSummariesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSummariesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &summaries, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSummariesByUserID execution err")
		return nil, err
	}

	result := make([]entity.PracticeSummary, 0, len(summaries))
	for _, summary := range summaries {
		made, err := r.makePracticeSummary(summary)
		if err != nil {
			return nil, err
		}
		result = append(result, made)
	}

	return result, nil
}

func (r *summaryRepository) DeleteSummary(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteSummary, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSummary named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSummary execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteSummary no rows affected")
		return practice.ErrSummaryNotFound
	}

	return nil
}

func (r *summaryRepository) makePracticeSummary(summary PracticeSummaryDB) (entity.PracticeSummary, error) {
	var metrics salescoring.Metrics
	if len(summary.AverageMetrics) > 0 {
		if err := json.Unmarshal(summary.AverageMetrics, &metrics); err != nil {
			return entity.PracticeSummary{}, err
		}
	}

	var feedback, keyPoints, strengths, improvements []string
	for _, col := range []struct {
		raw  []byte
		dest *[]string
	}{
		{summary.CoachingFeedback, &feedback},
		{summary.KeyPoints, &keyPoints},
		{summary.Strengths, &strengths},
		{summary.Improvements, &improvements},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return entity.PracticeSummary{}, err
		}
	}

	return entity.PracticeSummary{
		ID:               summary.ID.String,
		UserID:           summary.UserID.String,
		ScriptTitle:      summary.ScriptTitle.String,
		ScriptContent:    summary.ScriptContent.String,
		DurationMs:       summary.DurationMs.Int64,
		MessageCount:     int(summary.MessageCount.Int64),
		AverageMetrics:   metrics,
		CoachingFeedback: feedback,
		KeyPoints:        keyPoints,
		Strengths:        strengths,
		Improvements:     improvements,
		CreatedAt:        summary.CreatedAt,
	}, nil
}
