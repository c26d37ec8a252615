package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"counter-lab/domain"
	"counter-lab/errors"
	"counter-lab/mocks"
	"counter-lab/moderation"
)

func newAdminService(t *testing.T, ctrl *gomock.Controller) (*AdminService,
	*mocks.MockICounterRepository, *mocks.MockISearchIndex, *mocks.MockIOrchestrator) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	counters := mocks.NewMockICounterRepository(ctrl)
	index := mocks.NewMockISearchIndex(ctrl)
	orchestrator := mocks.NewMockIOrchestrator(ctrl)

	moderator, err := moderation.NewModerator([]string{"badger"}, '*')
	require.NoError(t, err)

	return NewAdminService(log, counters, index, moderator, orchestrator),
		counters, index, orchestrator
}

func TestAdminService_CreateCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, counters, index, orchestrator := newAdminService(t, ctrl)

	t.Run("should store and index a counter with a clean label", func(t *testing.T) {
		req := require.New(t)
		owner := uuid.NewString()
		stored := domain.Counter{ID: uuid.NewString(), Owner: owner, Name: "daily steps", Number: 1, CreatedAt: time.Now()}

		counters.EXPECT().CreateCounter(owner, "daily steps", 1).Return(stored, nil).Times(1)
		index.EXPECT().IndexCounter(stored).Return(nil).Times(1)
		orchestrator.EXPECT().Emit(gomock.Any()).Times(1)

		counter, err := svc.CreateCounter(context.Background(), owner, "daily steps", 1)

		req.NoError(err)
		req.Equal(stored, counter)
	})

	t.Run("should censor the label before storing it", func(t *testing.T) {
		req := require.New(t)
		owner := uuid.NewString()
		stored := domain.Counter{ID: uuid.NewString(), Owner: owner, Name: "my ****** count"}

		// The repository must only ever see the censored form
		counters.EXPECT().CreateCounter(owner, "my ****** count", 2).Return(stored, nil).Times(1)
		index.EXPECT().IndexCounter(stored).Return(nil).Times(1)
		orchestrator.EXPECT().Emit(gomock.Any()).Times(1)

		_, err := svc.CreateCounter(context.Background(), owner, "my badger count", 2)

		req.NoError(err)
	})

	t.Run("should reject a blank label before touching the store", func(t *testing.T) {
		req := require.New(t)

		counters.EXPECT().CreateCounter(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.CreateCounter(context.Background(), uuid.NewString(), "   ", 1)

		req.ErrorIs(err, errors.ErrEmptyLabel)
	})

	t.Run("should still succeed when indexing fails", func(t *testing.T) {
		req := require.New(t)
		owner := uuid.NewString()
		stored := domain.Counter{ID: uuid.NewString(), Owner: owner, Name: "reps"}

		counters.EXPECT().CreateCounter(owner, "reps", 3).Return(stored, nil).Times(1)
		index.EXPECT().IndexCounter(stored).Return(errors.ErrStorageUnavailable).Times(1)
		orchestrator.EXPECT().Emit(gomock.Any()).Times(1)

		counter, err := svc.CreateCounter(context.Background(), owner, "reps", 3)

		req.NoError(err)
		req.Equal(stored, counter)
	})
}

func TestAdminService_RenameCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, counters, index, orchestrator := newAdminService(t, ctrl)

	t.Run("should rename and re-index the counter", func(t *testing.T) {
		req := require.New(t)
		id := uuid.NewString()
		renamed := domain.Counter{ID: id, Name: "evening walk"}

		counters.EXPECT().RenameCounter(id, "evening walk").Return(renamed, nil).Times(1)
		index.EXPECT().IndexCounter(renamed).Return(nil).Times(1)
		orchestrator.EXPECT().Emit(gomock.Any()).Times(1)

		counter, err := svc.RenameCounter(context.Background(), id, "evening walk")

		req.NoError(err)
		req.Equal(renamed, counter)
	})

	t.Run("should propagate a missing counter", func(t *testing.T) {
		req := require.New(t)
		id := uuid.NewString()

		counters.EXPECT().RenameCounter(id, "anything").Return(domain.Counter{}, errors.ErrCounterNotFound).Times(1)

		_, err := svc.RenameCounter(context.Background(), id, "anything")

		req.ErrorIs(err, errors.ErrCounterNotFound)
	})
}

func TestAdminService_SearchCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, counters, index, _ := newAdminService(t, ctrl)

	t.Run("should resolve index hits against the live store", func(t *testing.T) {
		req := require.New(t)
		owner := uuid.NewString()
		id1 := uuid.NewString()
		id2 := uuid.NewString()
		counter1 := domain.Counter{ID: id1, Owner: owner, Name: "steps", Value: 12}

		index.EXPECT().Search(gomock.Any(), owner, "steps").Return([]string{id1, id2}, nil).Times(1)
		counters.EXPECT().GetCounter(id1).Return(counter1, nil).Times(1)
		// A stale index entry is skipped, not fatal
		counters.EXPECT().GetCounter(id2).Return(domain.Counter{}, errors.ErrCounterNotFound).Times(1)

		found, err := svc.SearchCounters(context.Background(), owner, "steps")

		req.NoError(err)
		req.Len(found, 1)
		req.Equal(counter1, found[0])
	})
}
