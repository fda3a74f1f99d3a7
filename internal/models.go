package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type PatchSize string

const (
	PatchSmall PatchSize = "SMALL"
	PatchLarge PatchSize = "LARGE"
)

var ErrUnauthorized = errors.New("no authenticated user in request scope")

type Mission struct {
	Name              string `json:"name"`
	MissionPatchSmall string `json:"mission_patch_small,omitempty"`
	MissionPatchLarge string `json:"mission_patch_large,omitempty"`
}

// Patch returns the patch image URL for the requested size,
// defaulting to the large variant.
func (m Mission) Patch(size PatchSize) string {
	if size == PatchSmall {
		return m.MissionPatchSmall
	}
	return m.MissionPatchLarge
}

type Rocket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Launch is an upstream mission record. It is read-only: the catalog
// normalizes provider payloads into this shape and never writes back.
type Launch struct {
	ID       int     `json:"id"`
	Cursor   string  `json:"cursor"`
	Site     string  `json:"site,omitempty"`
	Mission  Mission `json:"mission"`
	Rocket   Rocket  `json:"rocket"`
	IsBooked bool    `json:"is_booked"`
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Trip links a user to a booked launch. At most one row exists per
// (UserID, LaunchID) pair.
type Trip struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	LaunchID  int       `json:"launch_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LaunchConnection is one page of launches. Cursor is the cursor of the
// last launch in the page and is empty when the page is empty.
type LaunchConnection struct {
	Cursor   string   `json:"cursor"`
	HasMore  bool     `json:"has_more"`
	Launches []Launch `json:"launches"`
}

// TripUpdateResponse is the structured result of booking mutations.
// Mutations report partial failure through Success and Message rather
// than through an error.
type TripUpdateResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Launches []Launch `json:"launches"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type BookTripsRequest struct {
	LaunchIDs []int `json:"launch_ids"`
}
