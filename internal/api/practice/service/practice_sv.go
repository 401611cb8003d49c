package practiceService

import (
	"EmotiClose/internal/api/practice"
	"EmotiClose/internal/entity"
	contextPkg "EmotiClose/pkg/context"
	"EmotiClose/pkg/salescoring"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *practiceService) StartSession(ctx context.Context, userID string, req practice.StartSessionRequest) (practice.StartSessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ID")
		return practice.StartSessionResponse{}, err
	}

	session := &liveSession{
		id:            sessionID,
		userID:        userID,
		scriptTitle:   req.ScriptTitle,
		scriptContent: req.ScriptContent,
		startedAt:     time.Now(),
		acc:           salescoring.NewAccumulator(),
	}
	s.sessions.put(session)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"user_id":    userID,
	}).Info("Practice session started")

	return practice.StartSessionResponse{
		SessionID: sessionID,
		StartedAt: session.startedAt,
	}, nil
}

func (s *practiceService) SubmitUtterance(ctx context.Context, userID, sessionID string, req practice.UtteranceRequest) (practice.UtteranceResponse, error) {
	if len(req.Emotions) == 0 {
		return practice.UtteranceResponse{}, practice.ErrEmptyEmotionVector
	}

	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return practice.UtteranceResponse{}, err
	}

	return s.scoreUtterance(session, salescoring.EmotionVector(req.Emotions)), nil
}

func (s *practiceService) SubmitAudioUtterance(ctx context.Context, userID, sessionID string, audio []byte) (practice.UtteranceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return practice.UtteranceResponse{}, err
	}

	emotions, err := s.emotionStream.AnalyzeUtterance(audio)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Emotion stream failed to analyze utterance")
		return practice.UtteranceResponse{}, practice.ErrEmotionStreamUnavailable
	}

	return s.scoreUtterance(session, emotions), nil
}

// scoreUtterance runs the full per-utterance pipeline: metrics, coaching
// feedback, and intent against the conversation length before this
// utterance, then records the result on the session accumulator.
func (s *practiceService) scoreUtterance(session *liveSession, emotions salescoring.EmotionVector) practice.UtteranceResponse {
	session.mu.Lock()
	defer session.mu.Unlock()

	metrics := salescoring.CalculateMetrics(emotions)
	feedback := salescoring.GenerateFeedback(emotions)
	intent := salescoring.AnalyzeIntent(emotions, session.acc.Count())

	session.acc.Add(metrics, feedback)
	session.lastEmotions = emotions

	return practice.UtteranceResponse{
		Metrics:      metrics,
		Feedback:     feedback,
		Intent:       intent,
		MessageCount: session.acc.Count(),
	}
}

func (s *practiceService) CurrentIntent(ctx context.Context, userID, sessionID string, averageDealSize float64) (practice.IntentResponse, error) {
	session, err := s.ownedSession(userID, sessionID)
	if err != nil {
		return practice.IntentResponse{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	intent := salescoring.AnalyzeIntent(session.lastEmotions, session.acc.Count())

	res := practice.IntentResponse{
		Intent:  intent,
		Actions: salescoring.ConversionActions(intent),
		Prompt:  salescoring.SalesPrompt(intent, session.lastEmotions),
	}
	if averageDealSize > 0 {
		res.ROI = salescoring.CalculateROI(intent, averageDealSize)
	}

	return res, nil
}

func (s *practiceService) EndSession(ctx context.Context, userID, sessionID string) (practice.EndSessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	session, ok := s.sessions.remove(sessionID)
	if !ok {
		return practice.EndSessionResponse{}, practice.ErrSessionNotFound
	}
	if session.userID != userID {
		s.sessions.put(session)
		return practice.EndSessionResponse{}, practice.ErrSessionNotOwned
	}

	session.mu.Lock()
	summary, ok := session.acc.Summarize(salescoring.SessionMeta{
		ScriptTitle:   session.scriptTitle,
		ScriptContent: session.scriptContent,
		StartedAt:     session.startedAt,
		EndedAt:       time.Now(),
	})
	session.mu.Unlock()

	if !ok {
		// Aborted session: too short or nothing analyzed. Nothing is
		// persisted, the caller just learns it was dropped.
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
		}).Info("Practice session discarded")
		return practice.EndSessionResponse{Saved: false}, nil
	}

	summaryID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return practice.EndSessionResponse{}, err
	}

	record := entity.NewPracticeSummary(summaryID, userID, *summary, time.Now())

	repo, err := s.practiceRepo.NewClient(false)
	if err != nil {
		return practice.EndSessionResponse{}, err
	}

	if err := repo.Summaries.CreateSummary(ctx, record); err != nil {
		return practice.EndSessionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"session_id":    sessionID,
		"summary_id":    summaryID,
		"message_count": record.MessageCount,
	}).Info("Practice session summarized")

	res := makeSummaryResponse(record)
	return practice.EndSessionResponse{Saved: true, Summary: &res}, nil
}

func (s *practiceService) ownedSession(userID, sessionID string) (*liveSession, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, practice.ErrSessionNotFound
	}
	if session.userID != userID {
		return nil, practice.ErrSessionNotOwned
	}
	return session, nil
}
