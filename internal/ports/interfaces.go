package ports

import (
	"context"

	models "github.com/astanton/launchbook/internal"
	"github.com/astanton/launchbook/pkg/spacex"
	"github.com/google/uuid"
)

// LaunchProvider is the upstream REST source of raw launch records.
type LaunchProvider interface {
	Launches(ctx context.Context) ([]spacex.Launch, error)
}

// LaunchCatalog is a read-only, caching façade over the launch provider.
type LaunchCatalog interface {
	AllLaunches(ctx context.Context) ([]models.Launch, error)
	LaunchByID(ctx context.Context, id int) (*models.Launch, error)
	LaunchesByIDs(ctx context.Context, ids []int) ([]models.Launch, error)
}

// TripLedger manages bookings for the user it was constructed with.
type TripLedger interface {
	FindOrCreateUser(ctx context.Context, email string) (*models.User, error)
	BookTrip(ctx context.Context, launchID int) (*models.Trip, error)
	BookTrips(ctx context.Context, launchIDs []int) ([]models.Trip, error)
	CancelTrip(ctx context.Context, launchID int) (bool, error)
	LaunchIDsByUser(ctx context.Context) ([]int, error)
}

// TripStore is the relational persistence port for users and trips.
type TripStore interface {
	FindOrCreateUser(ctx context.Context, email string) (models.User, bool, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	FindOrCreateTrip(ctx context.Context, userID uuid.UUID, launchID int) (models.Trip, bool, error)
	DeleteTrip(ctx context.Context, userID uuid.UUID, launchID int) (int64, error)
	LaunchIDsByUser(ctx context.Context, userID uuid.UUID) ([]int, error)
}
