package practiceService

import (
	"EmotiClose/internal/api/practice"
	"EmotiClose/internal/entity"
	contextPkg "EmotiClose/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

func (s *practiceService) GetHistory(ctx context.Context, userID string) (practice.HistoryListResponse, error) {
	repo, err := s.practiceRepo.NewClient(false)
	if err != nil {
		return practice.HistoryListResponse{}, err
	}

	summaries, err := repo.Summaries.GetSummariesByUserID(ctx, userID)
	if err != nil {
		return practice.HistoryListResponse{}, err
	}

	sessions := make([]practice.SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		res := makeSummaryResponse(summary)
		// The list view stays light; full script text is only returned
		// when a single summary is fetched.
		res.ScriptContent = ""
		sessions = append(sessions, res)
	}

	return practice.HistoryListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	}, nil
}

func (s *practiceService) GetHistoryByID(ctx context.Context, userID, summaryID string) (practice.SummaryResponse, error) {
	summary, err := s.ownedSummary(ctx, userID, summaryID)
	if err != nil {
		return practice.SummaryResponse{}, err
	}

	return makeSummaryResponse(summary), nil
}

func (s *practiceService) DeleteHistory(ctx context.Context, userID, summaryID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.ownedSummary(ctx, userID, summaryID); err != nil {
		return err
	}

	repo, err := s.practiceRepo.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Summaries.DeleteSummary(ctx, summaryID); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"summary_id": summaryID,
		"user_id":    userID,
	}).Info("Practice summary deleted")

	return nil
}

func (s *practiceService) ownedSummary(ctx context.Context, userID, summaryID string) (entity.PracticeSummary, error) {
	repo, err := s.practiceRepo.NewClient(false)
	if err != nil {
		return entity.PracticeSummary{}, err
	}

	summary, err := repo.Summaries.GetSummaryByID(ctx, summaryID)
	if err != nil {
		return entity.PracticeSummary{}, err
	}

	if summary.UserID != userID {
		return entity.PracticeSummary{}, practice.ErrSummaryNotOwned
	}

	return summary, nil
}

func makeSummaryResponse(summary entity.PracticeSummary) practice.SummaryResponse {
	return practice.SummaryResponse{
		ID:               summary.ID,
		ScriptTitle:      summary.ScriptTitle,
		ScriptContent:    summary.ScriptContent,
		DurationMs:       summary.DurationMs,
		MessageCount:     summary.MessageCount,
		AverageMetrics:   summary.AverageMetrics,
		CoachingFeedback: summary.CoachingFeedback,
		KeyPoints:        summary.KeyPoints,
		Strengths:        summary.Strengths,
		Improvements:     summary.Improvements,
		CreatedAt:        summary.CreatedAt,
	}
}
