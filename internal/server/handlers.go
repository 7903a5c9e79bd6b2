// ABOUTME: HTTP handlers for token issuance and the admin dashboard API
// ABOUTME: Thin request adapters with the store and room provider behind them
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

// RoomProvider is the slice of the LiveKit client the token endpoint needs.
type RoomProvider interface {
	URL() string
	CreateRoom(ctx context.Context, name string) error
	AccessToken(identity, roomName string) (string, error)
	DispatchAgent(ctx context.Context, roomName string) error
}

// TokenHandler issues room-join tokens and dispatches the agent worker.
// provider is nil when LiveKit credentials are not configured.
type TokenHandler struct {
	provider RoomProvider
	timeout  time.Duration
	log      *log.Logger
}

// NewTokenHandler creates a TokenHandler
func NewTokenHandler(provider RoomProvider, timeout time.Duration, logger *log.Logger) *TokenHandler {
	return &TokenHandler{provider: provider, timeout: timeout, log: logger}
}

// RegisterRoutes registers the token endpoint on the mux
func (h *TokenHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /create_token", h.CreateToken)
}

type createTokenRequest struct {
	Name string `json:"name"`
}

type createTokenResponse struct {
	Token      string `json:"token"`
	LiveKitURL string `json:"livekit_url"`
}

// CreateToken provisions a fresh room, mints a join token for the
// caller, and dispatches the concierge agent into the room. Dispatch
// failure is non-fatal: the worker may pick up the room on its own.
func (h *TokenHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var req createTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	if h.provider == nil {
		h.log.Error("LiveKit server credentials are not configured")
		writeError(w, http.StatusInternalServerError, "LiveKit server credentials are not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	roomName := "agent-demo-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	h.log.Info("creating session", "guest", req.Name, "room", roomName)

	if err := h.provider.CreateRoom(ctx, roomName); err != nil {
		h.log.Error("room creation failed", "room", roomName, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to set up agent session.")
		return
	}

	token, err := h.provider.AccessToken(req.Name, roomName)
	if err != nil {
		h.log.Error("token minting failed", "guest", req.Name, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to set up agent session.")
		return
	}

	if err := h.provider.DispatchAgent(ctx, roomName); err != nil {
		// The agent worker may join the room autonomously.
		h.log.Warn("agent dispatch failed", "room", roomName, "err", err)
	}

	writeJSON(w, http.StatusOK, createTokenResponse{
		Token:      token,
		LiveKitURL: h.provider.URL(),
	})
}

// AdminHandler serves the read-only dashboard API.
type AdminHandler struct {
	admin *sqlite.AdminStore
	log   *log.Logger
}

// NewAdminHandler creates an AdminHandler
func NewAdminHandler(admin *sqlite.AdminStore, logger *log.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, log: logger}
}

// RegisterRoutes registers the admin endpoints on the mux
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/api/bookings", h.Bookings)
	mux.HandleFunc("GET /admin/api/users", h.Users)
}

type roomBookingView struct {
	BookingID       int64  `json:"booking_id"`
	RoomType        string `json:"room_type"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"special_requests"`
	Status          string `json:"status"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
}

type restaurantBookingView struct {
	BookingID       int64  `json:"booking_id"`
	Restaurant      string `json:"restaurant"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
	Status          string `json:"status"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
}

type bookingsResponse struct {
	RoomBookings       []roomBookingView       `json:"room_bookings"`
	RestaurantBookings []restaurantBookingView `json:"restaurant_bookings"`
}

// Bookings returns all bookings of both kinds flattened with the
// owning guest's contact details.
func (h *AdminHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.admin.RoomBookingsWithGuests()
	if err != nil {
		h.log.Error("room bookings query failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	restaurants, err := h.admin.RestaurantBookingsWithGuests()
	if err != nil {
		h.log.Error("restaurant bookings query failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}

	resp := bookingsResponse{
		RoomBookings:       make([]roomBookingView, 0, len(rooms)),
		RestaurantBookings: make([]restaurantBookingView, 0, len(restaurants)),
	}
	for _, b := range rooms {
		resp.RoomBookings = append(resp.RoomBookings, roomBookingView{
			BookingID:       b.BookingID,
			RoomType:        b.RoomType,
			CheckIn:         b.CheckInDate,
			CheckOut:        b.CheckOutDate,
			Adults:          b.NumAdults,
			Children:        b.NumChildren,
			SpecialRequests: b.SpecialRequests,
			Status:          b.Status,
			Name:            b.GuestName,
			Phone:           b.GuestPhone,
			Email:           b.GuestEmail,
		})
	}
	for _, b := range restaurants {
		resp.RestaurantBookings = append(resp.RestaurantBookings, restaurantBookingView{
			BookingID:       b.BookingID,
			Restaurant:      b.RestaurantName,
			Date:            b.BookingDate,
			Time:            b.BookingTime,
			Guests:          b.NumGuests,
			SpecialRequests: b.SpecialRequests,
			Status:          b.Status,
			Name:            b.GuestName,
			Phone:           b.GuestPhone,
			Email:           b.GuestEmail,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type userView struct {
	UserID          string `json:"user_id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	TotalBookings   int    `json:"total_bookings"`
	Verified        string `json:"verified"`
	LastInteraction string `json:"last_interaction"`
}

// Users returns the guest roster with dashboard display defaults.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.Users()
	if err != nil {
		h.log.Error("users query failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load users")
		return
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		u := &users[i]
		views = append(views, userView{
			UserID:          u.UserID,
			Name:            u.DisplayName(),
			Phone:           u.DisplayPhone(),
			Email:           u.DisplayEmail(),
			TotalBookings:   u.TotalBookings,
			Verified:        u.DisplayVerified(),
			LastInteraction: u.LastInteraction.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": views})
}

// HealthHandler reports process liveness.
type HealthHandler struct{}

// RegisterRoutes registers the health endpoint on the mux
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
