package resolver

import (
	"context"
	"encoding/base64"
	"fmt"

	models "github.com/astanton/launchbook/internal"
	"github.com/astanton/launchbook/internal/catalog"
	"github.com/astanton/launchbook/internal/ports"
)

const (
	msgTripsBooked   = "trips booked successfully"
	msgTripCancelled = "trip cancelled"
	msgCancelFailed  = "failed to cancel trip"
	msgBookFailedFmt = "the following launches couldn't be booked: %v"
)

// Request bundles everything a single request's resolvers may touch: the
// authenticated user (nil for anonymous requests) and the two data
// components. Nothing here outlives the request.
type Request struct {
	User    *models.User
	Catalog ports.LaunchCatalog
	Ledger  ports.TripLedger
}

// Launches serves one newest-first page of the launch list.
func (r *Request) Launches(ctx context.Context, after string, pageSize int) (models.LaunchConnection, error) {
	all, err := r.Catalog.AllLaunches(ctx)
	if err != nil {
		return models.LaunchConnection{}, err
	}
	return catalog.Paginate(catalog.Reversed(all), after, pageSize), nil
}

// Launch returns nil when id is unknown. For authenticated requests the
// result carries whether the user has the launch booked.
func (r *Request) Launch(ctx context.Context, id int) (*models.Launch, error) {
	launch, err := r.Catalog.LaunchByID(ctx, id)
	if err != nil || launch == nil {
		return nil, err
	}
	if r.User != nil {
		booked, err := r.Ledger.LaunchIDsByUser(ctx)
		if err != nil {
			return nil, err
		}
		for _, bookedID := range booked {
			if bookedID == launch.ID {
				launch.IsBooked = true
				break
			}
		}
	}
	return launch, nil
}

// Me returns nil for anonymous requests; otherwise it resolves the
// context email with find-or-create semantics.
func (r *Request) Me(ctx context.Context) (*models.User, error) {
	if r.User == nil {
		return nil, nil
	}
	return r.Ledger.FindOrCreateUser(ctx, r.User.Email)
}

// Login exchanges an email for a session token. The token is the base64
// encoding of the email: deterministic and reversible, NOT a credential
// in any cryptographic sense. An invalid email or a store miss yields an
// empty token.
func (r *Request) Login(ctx context.Context, email string) (string, error) {
	user, err := r.Ledger.FindOrCreateUser(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString([]byte(user.Email)), nil
}

// BookTrips books each requested launch and resolves the booked ids back
// into full launch records. Success means every requested id was booked;
// a partial booking reports false with the ids that failed.
func (r *Request) BookTrips(ctx context.Context, launchIDs []int) (models.TripUpdateResponse, error) {
	trips, err := r.Ledger.BookTrips(ctx, launchIDs)
	if err != nil {
		return models.TripUpdateResponse{}, err
	}

	bookedIDs := make([]int, len(trips))
	for i, trip := range trips {
		bookedIDs[i] = trip.LaunchID
	}
	launches, err := r.Catalog.LaunchesByIDs(ctx, bookedIDs)
	if err != nil {
		return models.TripUpdateResponse{}, err
	}
	for i := range launches {
		launches[i].IsBooked = true
	}

	res := models.TripUpdateResponse{Launches: launches}
	if len(trips) == len(launchIDs) && len(trips) > 0 {
		res.Success = true
		res.Message = msgTripsBooked
		return res, nil
	}
	res.Message = fmt.Sprintf(msgBookFailedFmt, unbookedIDs(launchIDs, bookedIDs))
	return res, nil
}

// CancelTrip removes a booking and echoes the affected launch back when
// the catalog still knows it.
func (r *Request) CancelTrip(ctx context.Context, launchID int) (models.TripUpdateResponse, error) {
	cancelled, err := r.Ledger.CancelTrip(ctx, launchID)
	if err != nil {
		return models.TripUpdateResponse{}, err
	}
	if !cancelled {
		return models.TripUpdateResponse{
			Success:  false,
			Message:  msgCancelFailed,
			Launches: []models.Launch{},
		}, nil
	}

	launches := []models.Launch{}
	if launch, err := r.Catalog.LaunchByID(ctx, launchID); err == nil && launch != nil {
		launches = append(launches, *launch)
	}
	return models.TripUpdateResponse{
		Success:  true,
		Message:  msgTripCancelled,
		Launches: launches,
	}, nil
}

// UserTrips lists the launches the current user has booked, in booking
// key order. The result is empty, not nil, for a user with no trips.
func (r *Request) UserTrips(ctx context.Context) ([]models.Launch, error) {
	ids, err := r.Ledger.LaunchIDsByUser(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Launch{}, nil
	}
	launches, err := r.Catalog.LaunchesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range launches {
		launches[i].IsBooked = true
	}
	return launches, nil
}

func unbookedIDs(requested, booked []int) []int {
	bookedSet := make(map[int]struct{}, len(booked))
	for _, id := range booked {
		bookedSet[id] = struct{}{}
	}
	failed := make([]int, 0, len(requested))
	for _, id := range requested {
		if _, ok := bookedSet[id]; !ok {
			failed = append(failed, id)
		}
	}
	return failed
}
