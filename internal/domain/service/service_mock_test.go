package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/diegoclair/birthday-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockUserRepo    *mocks.MockUserRepo
	mockCarRepo     *mocks.MockCarRepo
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	carRepo := mocks.NewMockCarRepo(ctrl)
	dm.EXPECT().Car().Return(carRepo).AnyTimes()

	// the mock runs fn against itself, as a nested transaction would
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockUserRepo:    userRepo,
		mockCarRepo:     carRepo,
		mockSlackClient: slackClient,
	}

	// validate service creation
	instance := NewInstance(dm, slackClient, time.UTC, "C123", metrics.Nop())
	require.NotNil(t, instance)

	return
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }
