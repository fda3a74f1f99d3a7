package mocks

import (
	"context"

	models "github.com/astanton/launchbook/internal"
	"github.com/astanton/launchbook/pkg/spacex"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockLaunchProvider struct {
	mock.Mock
}

func (m *MockLaunchProvider) Launches(ctx context.Context) ([]spacex.Launch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spacex.Launch), args.Error(1)
}

type MockLaunchCatalog struct {
	mock.Mock
}

func (m *MockLaunchCatalog) AllLaunches(ctx context.Context) ([]models.Launch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Launch), args.Error(1)
}

func (m *MockLaunchCatalog) LaunchByID(ctx context.Context, id int) (*models.Launch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Launch), args.Error(1)
}

func (m *MockLaunchCatalog) LaunchesByIDs(ctx context.Context, ids []int) ([]models.Launch, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Launch), args.Error(1)
}

type MockTripLedger struct {
	mock.Mock
}

func (m *MockTripLedger) FindOrCreateUser(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockTripLedger) BookTrip(ctx context.Context, launchID int) (*models.Trip, error) {
	args := m.Called(ctx, launchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *MockTripLedger) BookTrips(ctx context.Context, launchIDs []int) ([]models.Trip, error) {
	args := m.Called(ctx, launchIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripLedger) CancelTrip(ctx context.Context, launchID int) (bool, error) {
	args := m.Called(ctx, launchID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripLedger) LaunchIDsByUser(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) FindOrCreateUser(ctx context.Context, email string) (models.User, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Bool(1), args.Error(2)
}

func (m *MockTripStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockTripStore) FindOrCreateTrip(ctx context.Context, userID uuid.UUID, launchID int) (models.Trip, bool, error) {
	args := m.Called(ctx, userID, launchID)
	return args.Get(0).(models.Trip), args.Bool(1), args.Error(2)
}

func (m *MockTripStore) DeleteTrip(ctx context.Context, userID uuid.UUID, launchID int) (int64, error) {
	args := m.Called(ctx, userID, launchID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTripStore) LaunchIDsByUser(ctx context.Context, userID uuid.UUID) ([]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
