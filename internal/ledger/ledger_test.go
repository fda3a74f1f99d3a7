package ledger_test

import (
	"context"
	"testing"
	"time"

	models "github.com/astanton/launchbook/internal"
	"github.com/astanton/launchbook/internal/ledger"
	"github.com/astanton/launchbook/internal/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = &models.User{
	ID:    uuid.MustParse("00000000-0000-0000-0000-000000000001"),
	Email: "a@a.a",
}

func TestFindOrCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil for a malformed email", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		l := ledger.NewLedger(store, nil)

		user, err := l.FindOrCreateUser(ctx, "boo!")

		require.NoError(t, err)
		assert.Nil(t, user)
		store.AssertNotCalled(t, "FindOrCreateUser")
	})

	t.Run("resolves a valid email through the store", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		store.On("FindOrCreateUser", ctx, "a@a.a").Return(*testUser, true, nil)
		l := ledger.NewLedger(store, nil)

		user, err := l.FindOrCreateUser(ctx, "a@a.a")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, testUser.ID, user.ID)
		store.AssertExpectations(t)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		store.On("FindOrCreateUser", ctx, "a@a.a").Return(models.User{}, false, assert.AnError)
		l := ledger.NewLedger(store, nil)

		user, err := l.FindOrCreateUser(ctx, "a@a.a")

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestBookTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a user", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		l := ledger.NewLedger(store, nil)

		trip, err := l.BookTrip(ctx, 999)

		assert.ErrorIs(t, err, models.ErrUnauthorized)
		assert.Nil(t, trip)
	})

	t.Run("books through the store keyed to the current user", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		want := models.Trip{ID: uuid.New(), UserID: testUser.ID, LaunchID: 999, CreatedAt: time.Now().UTC()}
		store.On("FindOrCreateTrip", ctx, testUser.ID, 999).Return(want, true, nil)
		l := ledger.NewLedger(store, testUser)

		trip, err := l.BookTrip(ctx, 999)

		require.NoError(t, err)
		assert.Equal(t, want, *trip)
		store.AssertExpectations(t)
	})

	t.Run("rebooking returns the existing trip", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		existing := models.Trip{ID: uuid.New(), UserID: testUser.ID, LaunchID: 999}
		store.On("FindOrCreateTrip", ctx, testUser.ID, 999).Return(existing, false, nil).Twice()
		l := ledger.NewLedger(store, testUser)

		first, err := l.BookTrip(ctx, 999)
		require.NoError(t, err)
		second, err := l.BookTrip(ctx, 999)
		require.NoError(t, err)

		assert.Equal(t, *first, *second)
		store.AssertExpectations(t)
	})
}

func TestBookTrips(t *testing.T) {
	ctx := context.Background()

	t.Run("books every id in order", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		store.On("FindOrCreateTrip", ctx, testUser.ID, 1).
			Return(models.Trip{LaunchID: 1, UserID: testUser.ID}, true, nil)
		store.On("FindOrCreateTrip", ctx, testUser.ID, 2).
			Return(models.Trip{LaunchID: 2, UserID: testUser.ID}, true, nil)
		l := ledger.NewLedger(store, testUser)

		trips, err := l.BookTrips(ctx, []int{1, 2})

		require.NoError(t, err)
		require.Len(t, trips, 2)
		assert.Equal(t, 1, trips[0].LaunchID)
		assert.Equal(t, 2, trips[1].LaunchID)
	})

	t.Run("a failing id does not stop the rest", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		store.On("FindOrCreateTrip", ctx, testUser.ID, 1).
			Return(models.Trip{}, false, assert.AnError)
		store.On("FindOrCreateTrip", ctx, testUser.ID, 2).
			Return(models.Trip{LaunchID: 2, UserID: testUser.ID}, true, nil)
		l := ledger.NewLedger(store, testUser)

		trips, err := l.BookTrips(ctx, []int{1, 2})

		require.NoError(t, err)
		require.Len(t, trips, 1)
		assert.Equal(t, 2, trips[0].LaunchID)
	})

	t.Run("requires a user", func(t *testing.T) {
		l := ledger.NewLedger(new(mocks.MockTripStore), nil)

		trips, err := l.BookTrips(ctx, []int{1})

		assert.ErrorIs(t, err, models.ErrUnauthorized)
		assert.Nil(t, trips)
	})
}

func TestCancelTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("true when a row was deleted", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		store.On("DeleteTrip", ctx, testUser.ID, 999).Return(int64(1), nil)
		l := ledger.NewLedger(store, testUser)

		ok, err := l.CancelTrip(ctx, 999)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("false when nothing was booked", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		store.On("DeleteTrip", ctx, testUser.ID, 999).Return(int64(0), nil)
		l := ledger.NewLedger(store, testUser)

		ok, err := l.CancelTrip(ctx, 999)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("requires a user", func(t *testing.T) {
		l := ledger.NewLedger(new(mocks.MockTripStore), nil)

		ok, err := l.CancelTrip(ctx, 999)

		assert.ErrorIs(t, err, models.ErrUnauthorized)
		assert.False(t, ok)
	})
}

func TestLaunchIDsByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the user's booked launches", func(t *testing.T) {
		store := new(mocks.MockTripStore)
		store.On("LaunchIDsByUser", ctx, testUser.ID).Return([]int{1, 2}, nil)
		l := ledger.NewLedger(store, testUser)

		ids, err := l.LaunchIDsByUser(ctx)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, ids)
	})

	t.Run("requires a user", func(t *testing.T) {
		l := ledger.NewLedger(new(mocks.MockTripStore), nil)

		ids, err := l.LaunchIDsByUser(ctx)

		assert.ErrorIs(t, err, models.ErrUnauthorized)
		assert.Nil(t, ids)
	})
}
