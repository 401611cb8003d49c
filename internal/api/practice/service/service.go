package practiceService

import (
	"EmotiClose/internal/api/practice"
	practiceRepository "EmotiClose/internal/api/practice/repository"
	"EmotiClose/pkg/emotion"
	"EmotiClose/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IPracticeService interface {
	StartSession(ctx context.Context, userID string, req practice.StartSessionRequest) (practice.StartSessionResponse, error)
	SubmitUtterance(ctx context.Context, userID, sessionID string, req practice.UtteranceRequest) (practice.UtteranceResponse, error)
	SubmitAudioUtterance(ctx context.Context, userID, sessionID string, audio []byte) (practice.UtteranceResponse, error)
	CurrentIntent(ctx context.Context, userID, sessionID string, averageDealSize float64) (practice.IntentResponse, error)
	EndSession(ctx context.Context, userID, sessionID string) (practice.EndSessionResponse, error)

	GetHistory(ctx context.Context, userID string) (practice.HistoryListResponse, error)
	GetHistoryByID(ctx context.Context, userID, summaryID string) (practice.SummaryResponse, error)
	DeleteHistory(ctx context.Context, userID, summaryID string) error
}

type practiceService struct {
	log           *logrus.Logger
	practiceRepo  practiceRepository.Repository
	emotionStream emotion.IEmotionStream
	utils         utils.IUtils
	sessions      *liveSessionStore
}

func NewPracticeService(
	log *logrus.Logger,
	practiceRepo practiceRepository.Repository,
	emotionStream emotion.IEmotionStream,
	utils utils.IUtils,
) IPracticeService {
	return &practiceService{
		log:           log,
		practiceRepo:  practiceRepo,
		emotionStream: emotionStream,
		utils:         utils,
		sessions:      newLiveSessionStore(),
	}
}
