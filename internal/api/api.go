package api

import (
	"errors"
	"net/http"
	"strconv"

	models "github.com/astanton/launchbook/internal"
	"github.com/astanton/launchbook/internal/ledger"
	"github.com/astanton/launchbook/internal/ports"
	"github.com/astanton/launchbook/internal/resolver"
	"github.com/astanton/launchbook/internal/utils"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the resolver operations as JSON endpoints. The trip
// ledger is built fresh per request around the authenticated user, so no
// booking state leaks across requests.
type Handler struct {
	catalog ports.LaunchCatalog
	store   ports.TripStore
}

func NewHandler(catalog ports.LaunchCatalog, store ports.TripStore) *Handler {
	return &Handler{catalog: catalog, store: store}
}

func (h *Handler) resolve(r *http.Request) *resolver.Request {
	user := UserFromContext(r.Context())
	return &resolver.Request{
		User:    user,
		Catalog: h.catalog,
		Ledger:  ledger.NewLedger(h.store, user),
	}
}

func (h *Handler) Launches(w http.ResponseWriter, r *http.Request) {
	pageSize := 0
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		var err error
		pageSize, err = strconv.Atoi(raw)
		if err != nil {
			ae := utils.NewBadRequest("page_size must be an integer")
			utils.RenderJson(w, ae.StatusCode, ae)
			return
		}
	}

	conn, err := h.resolve(r).Launches(r.Context(), r.URL.Query().Get("after"), pageSize)
	if err != nil {
		ae := getApiError(err)
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	utils.RenderJson(w, http.StatusOK, conn)
}

func (h *Handler) Launch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		ae := utils.NewBadRequest("launch id must be an integer")
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}

	launch, err := h.resolve(r).Launch(r.Context(), id)
	if err != nil {
		ae := getApiError(err)
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	if launch == nil {
		ae := utils.NewNotFound("launch not found")
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	utils.RenderJson(w, http.StatusOK, launch)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.resolve(r).Me(r.Context())
	if err != nil {
		ae := getApiError(err)
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	if user == nil {
		ae := utils.NewUnauthorized("not logged in")
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	utils.RenderJson(w, http.StatusOK, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.JsonDecodeBody(r, &req); err != nil {
		ae := utils.NewBadRequest("error json decoding body")
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}

	token, err := h.resolve(r).Login(r.Context(), req.Email)
	if err != nil {
		ae := getApiError(err)
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	if token == "" {
		ae := utils.NewUnauthorized("login failed")
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	utils.RenderJson(w, http.StatusOK, models.LoginResponse{Token: token})
}

func (h *Handler) BookTrips(w http.ResponseWriter, r *http.Request) {
	var req models.BookTripsRequest
	if err := utils.JsonDecodeBody(r, &req); err != nil {
		ae := utils.NewBadRequest("error json decoding body")
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}

	res, err := h.resolve(r).BookTrips(r.Context(), req.LaunchIDs)
	if err != nil {
		ae := getApiError(err)
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	utils.RenderJson(w, http.StatusOK, res)
}

func (h *Handler) CancelTrip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		ae := utils.NewBadRequest("launch id must be an integer")
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}

	res, err := h.resolve(r).CancelTrip(r.Context(), id)
	if err != nil {
		ae := getApiError(err)
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	utils.RenderJson(w, http.StatusOK, res)
}

func (h *Handler) Trips(w http.ResponseWriter, r *http.Request) {
	launches, err := h.resolve(r).UserTrips(r.Context())
	if err != nil {
		ae := getApiError(err)
		utils.RenderJson(w, ae.StatusCode, ae)
		return
	}
	utils.RenderJson(w, http.StatusOK, launches)
}

func getApiError(err error) utils.ApiError {
	ae := utils.ApiError{Msg: err.Error()}
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		ae.StatusCode = http.StatusUnauthorized
	default:
		ae.StatusCode = http.StatusInternalServerError
	}
	return ae
}
