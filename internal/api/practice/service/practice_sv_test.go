package practiceService

import (
	"EmotiClose/internal/api/practice"
	practiceRepository "EmotiClose/internal/api/practice/repository"
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

type fakeSummaryStore struct {
	mu        sync.Mutex
	summaries map[string]entity.PracticeSummary
}

func newFakeSummaryStore() *fakeSummaryStore {
	return &fakeSummaryStore{summaries: make(map[string]entity.PracticeSummary)}
}

func (f *fakeSummaryStore) NewClient(tx bool) (practiceRepository.Client, error) {
	return practiceRepository.Client{
		Summaries: f,
		Commit:    func() error { return nil },
		Rollback:  func() error { return nil },
	}, nil
}

func (f *fakeSummaryStore) CreateSummary(c context.Context, summary entity.PracticeSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries[summary.ID] = summary
	return nil
}

func (f *fakeSummaryStore) GetSummaryByID(c context.Context, id string) (entity.PracticeSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	summary, ok := f.summaries[id]
	if !ok {
		return entity.PracticeSummary{}, practice.ErrSummaryNotFound
	}
	return summary, nil
}

func (f *fakeSummaryStore) GetSummariesByUserID(c context.Context, userID string) ([]entity.PracticeSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.PracticeSummary
	for _, summary := range f.summaries {
		if summary.UserID == userID {
			out = append(out, summary)
		}
	}
	return out, nil
}

func (f *fakeSummaryStore) DeleteSummary(c context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.summaries[id]; !ok {
		return practice.ErrSummaryNotFound
	}
	delete(f.summaries, id)
	return nil
}

type fakeIDSource struct {
	n int
}

func (f *fakeIDSource) NewULIDFromTimestamp(t time.Time) (string, error) {
	f.n++
	return fmt.Sprintf("id-%03d", f.n), nil
}

func newTestService(store *fakeSummaryStore) IPracticeService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewPracticeService(logger, store, nil, &fakeIDSource{})
}

func TestStartAndScoreSession(t *testing.T) {
	svc := newTestService(newFakeSummaryStore())
	ctx := context.Background()

	started, err := svc.StartSession(ctx, "user-1", practice.StartSessionRequest{
		ScriptTitle: "Cold open",
	})
	require.NoError(t, err)
	require.NotEmpty(t, started.SessionID)

	res, err := svc.SubmitUtterance(ctx, "user-1", started.SessionID, practice.UtteranceRequest{
		Emotions: map[string]float64{"excitement": 0.8, "interest": 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.MessageCount)
	assert.Greater(t, res.Metrics.Enthusiasm, 0.0)

	res, err = svc.SubmitUtterance(ctx, "user-1", started.SessionID, practice.UtteranceRequest{
		Emotions: map[string]float64{"excitement": 0.9},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.MessageCount)
}

func TestSubmitUtteranceErrors(t *testing.T) {
	svc := newTestService(newFakeSummaryStore())
	ctx := context.Background()

	started, err := svc.StartSession(ctx, "user-1", practice.StartSessionRequest{ScriptTitle: "Demo"})
	require.NoError(t, err)

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.SubmitUtterance(ctx, "user-1", "missing", practice.UtteranceRequest{
			Emotions: map[string]float64{"joy": 1},
		})
		assert.ErrorIs(t, err, practice.ErrSessionNotFound)
	})

	t.Run("wrong owner", func(t *testing.T) {
		_, err := svc.SubmitUtterance(ctx, "user-2", started.SessionID, practice.UtteranceRequest{
			Emotions: map[string]float64{"joy": 1},
		})
		assert.ErrorIs(t, err, practice.ErrSessionNotOwned)
	})

	t.Run("empty vector", func(t *testing.T) {
		_, err := svc.SubmitUtterance(ctx, "user-1", started.SessionID, practice.UtteranceRequest{})
		assert.ErrorIs(t, err, practice.ErrEmptyEmotionVector)
	})
}

func TestEndSessionDiscardsEmpty(t *testing.T) {
	store := newFakeSummaryStore()
	svc := newTestService(store)
	ctx := context.Background()

	started, err := svc.StartSession(ctx, "user-1", practice.StartSessionRequest{ScriptTitle: "Demo"})
	require.NoError(t, err)

	res, err := svc.EndSession(ctx, "user-1", started.SessionID)
	require.NoError(t, err)
	assert.False(t, res.Saved)
	assert.Nil(t, res.Summary)
	assert.Empty(t, store.summaries)

	// The session is consumed either way.
	_, err = svc.EndSession(ctx, "user-1", started.SessionID)
	assert.ErrorIs(t, err, practice.ErrSessionNotFound)
}

func TestHistoryOwnership(t *testing.T) {
	store := newFakeSummaryStore()
	store.summaries["sum-1"] = entity.PracticeSummary{
		ID:          "sum-1",
		UserID:      "user-1",
		ScriptTitle: "Pricing pitch",
	}
	svc := newTestService(store)
	ctx := context.Background()

	t.Run("owner reads summary", func(t *testing.T) {
		res, err := svc.GetHistoryByID(ctx, "user-1", "sum-1")
		require.NoError(t, err)
		assert.Equal(t, "Pricing pitch", res.ScriptTitle)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		_, err := svc.GetHistoryByID(ctx, "user-2", "sum-1")
		assert.ErrorIs(t, err, practice.ErrSummaryNotOwned)

		err = svc.DeleteHistory(ctx, "user-2", "sum-1")
		assert.ErrorIs(t, err, practice.ErrSummaryNotOwned)
	})

	t.Run("owner deletes summary", func(t *testing.T) {
		err := svc.DeleteHistory(ctx, "user-1", "sum-1")
		require.NoError(t, err)

		list, err := svc.GetHistory(ctx, "user-1")
		require.NoError(t, err)
		assert.Zero(t, list.Total)
	})
}
