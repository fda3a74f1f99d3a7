package ledger

import (
	"context"
	"fmt"

	models "github.com/astanton/launchbook/internal"
	"github.com/astanton/launchbook/internal/ports"
	"github.com/astanton/launchbook/internal/validator"
)

// Ledger scopes booking state to a single request's user. A nil user is
// valid for FindOrCreateUser (login) but every user-keyed operation then
// fails with models.ErrUnauthorized.
type Ledger struct {
	store ports.TripStore
	user  *models.User
}

func NewLedger(store ports.TripStore, user *models.User) *Ledger {
	return &Ledger{store: store, user: user}
}

// FindOrCreateUser resolves email to a user row, creating one on first
// login. A malformed email yields (nil, nil): absence, not an error.
func (l *Ledger) FindOrCreateUser(ctx context.Context, email string) (*models.User, error) {
	if !validator.IsEmail(email) {
		return nil, nil
	}
	user, _, err := l.store.FindOrCreateUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("finding or creating user: %w", err)
	}
	return &user, nil
}

// BookTrip is idempotent: booking an already-booked launch returns the
// existing trip without creating a duplicate.
func (l *Ledger) BookTrip(ctx context.Context, launchID int) (*models.Trip, error) {
	if l.user == nil {
		return nil, models.ErrUnauthorized
	}
	trip, _, err := l.store.FindOrCreateTrip(ctx, l.user.ID, launchID)
	if err != nil {
		return nil, fmt.Errorf("booking launch %d: %w", launchID, err)
	}
	return &trip, nil
}

// BookTrips books each launch in order, best-effort per id: a failure on
// one id does not roll back or stop the others. Only the trips that were
// actually booked come back.
func (l *Ledger) BookTrips(ctx context.Context, launchIDs []int) ([]models.Trip, error) {
	if l.user == nil {
		return nil, models.ErrUnauthorized
	}
	trips := make([]models.Trip, 0, len(launchIDs))
	for _, id := range launchIDs {
		trip, err := l.BookTrip(ctx, id)
		if err != nil {
			continue
		}
		trips = append(trips, *trip)
	}
	return trips, nil
}

// CancelTrip reports true only when a booking was actually removed.
// Cancelling a launch that was never booked is a no-op, not an error.
func (l *Ledger) CancelTrip(ctx context.Context, launchID int) (bool, error) {
	if l.user == nil {
		return false, models.ErrUnauthorized
	}
	affected, err := l.store.DeleteTrip(ctx, l.user.ID, launchID)
	if err != nil {
		return false, fmt.Errorf("cancelling launch %d: %w", launchID, err)
	}
	return affected > 0, nil
}

func (l *Ledger) LaunchIDsByUser(ctx context.Context) ([]int, error) {
	if l.user == nil {
		return nil, models.ErrUnauthorized
	}
	ids, err := l.store.LaunchIDsByUser(ctx, l.user.ID)
	if err != nil {
		return nil, fmt.Errorf("listing booked launches: %w", err)
	}
	return ids, nil
}
