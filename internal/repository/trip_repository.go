package repository

import (
	"context"
	"errors"

	models "github.com/astanton/launchbook/internal"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

// TripStore persists users and their trip bookings. Find-or-create
// operations rely on unique constraints (users.email and the
// (user_id, launch_id) pair on trips) so they stay idempotent under
// concurrent callers.
type TripStore struct {
	db DBConn
}

func NewTripStore(db DBConn) *TripStore {
	return &TripStore{db: db}
}

// FindOrCreateUser returns the user row for email, creating it first if
// absent. The bool reports whether a new row was created.
func (s *TripStore) FindOrCreateUser(ctx context.Context, email string) (models.User, bool, error) {
	insert := `
        INSERT INTO users (id, email)
        VALUES ($1, $2)
        ON CONFLICT (email) DO NOTHING
        RETURNING id, email
    `
	var user models.User
	err := s.db.QueryRow(ctx, insert, uuid.New(), email).Scan(&user.ID, &user.Email)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, false, err
	}

	// insert lost the race or the row already existed
	query := `SELECT id, email FROM users WHERE email = $1`
	err = s.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email)
	if err != nil {
		return models.User{}, false, err
	}
	return user, false, nil
}

// UserByEmail returns nil without error when no such user exists.
func (s *TripStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email FROM users WHERE email = $1`
	var user models.User
	err := s.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrCreateTrip books launchID for userID, returning the existing row
// when the pair is already booked.
func (s *TripStore) FindOrCreateTrip(ctx context.Context, userID uuid.UUID, launchID int) (models.Trip, bool, error) {
	insert := `
        INSERT INTO trips (id, user_id, launch_id)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, launch_id) DO NOTHING
        RETURNING id, user_id, launch_id, created_at
    `
	var trip models.Trip
	err := s.db.QueryRow(ctx, insert, uuid.New(), userID, launchID).
		Scan(&trip.ID, &trip.UserID, &trip.LaunchID, &trip.CreatedAt)
	if err == nil {
		return trip, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.Trip{}, false, err
	}

	query := `
        SELECT id, user_id, launch_id, created_at
        FROM trips
        WHERE user_id = $1 AND launch_id = $2
    `
	err = s.db.QueryRow(ctx, query, userID, launchID).
		Scan(&trip.ID, &trip.UserID, &trip.LaunchID, &trip.CreatedAt)
	if err != nil {
		return models.Trip{}, false, err
	}
	return trip, false, nil
}

// DeleteTrip removes the booking and reports how many rows went away.
// Deleting a trip that does not exist affects zero rows and is not an error.
func (s *TripStore) DeleteTrip(ctx context.Context, userID uuid.UUID, launchID int) (int64, error) {
	query := `DELETE FROM trips WHERE user_id = $1 AND launch_id = $2`
	tag, err := s.db.Exec(ctx, query, userID, launchID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *TripStore) LaunchIDsByUser(ctx context.Context, userID uuid.UUID) ([]int, error) {
	query := `SELECT launch_id FROM trips WHERE user_id = $1 ORDER BY launch_id`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	launchIDs := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		launchIDs = append(launchIDs, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return launchIDs, nil
}
