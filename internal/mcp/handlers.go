// ABOUTME: MCP tool handler implementations for the concierge agent
// ABOUTME: Thin adapters from tool arguments onto the session bridge
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pinkperl/concierge/internal/session"
)

// Handlers contains the handler functions for the concierge tools
type Handlers struct {
	bridge *session.Bridge
}

// SaveProfile handles the save_profile tool
func (h *Handlers) SaveProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	phone := request.GetString("phone", "")
	email := request.GetString("email", "")

	return mcp.NewToolResultText(h.bridge.SaveProfile(name, phone, email)), nil
}

// CreateRoomBooking handles the create_room_booking tool
func (h *Handlers) CreateRoomBooking(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	roomType, err := request.RequireString("room_type")
	if err != nil {
		return mcp.NewToolResultError("room_type argument is required and must be a string"), nil
	}
	checkIn, err := request.RequireString("check_in_date")
	if err != nil {
		return mcp.NewToolResultError("check_in_date argument is required and must be a string"), nil
	}
	checkOut, err := request.RequireString("check_out_date")
	if err != nil {
		return mcp.NewToolResultError("check_out_date argument is required and must be a string"), nil
	}
	adults, err := request.RequireInt("num_adults")
	if err != nil {
		return mcp.NewToolResultError("num_adults argument is required and must be a number"), nil
	}
	children := request.GetInt("num_children", 0)
	specialRequests := request.GetString("special_requests", "")

	reply := h.bridge.CreateRoomBooking(roomType, checkIn, checkOut, adults, children, specialRequests)
	return mcp.NewToolResultText(reply), nil
}

// CreateRestaurantBooking handles the create_restaurant_booking tool
func (h *Handlers) CreateRestaurantBooking(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	restaurant, err := request.RequireString("restaurant_name")
	if err != nil {
		return mcp.NewToolResultError("restaurant_name argument is required and must be a string"), nil
	}
	date, err := request.RequireString("booking_date")
	if err != nil {
		return mcp.NewToolResultError("booking_date argument is required and must be a string"), nil
	}
	timeOfDay, err := request.RequireString("booking_time")
	if err != nil {
		return mcp.NewToolResultError("booking_time argument is required and must be a string"), nil
	}
	guests, err := request.RequireInt("num_guests")
	if err != nil {
		return mcp.NewToolResultError("num_guests argument is required and must be a number"), nil
	}
	specialRequests := request.GetString("special_requests", "")

	reply := h.bridge.CreateRestaurantBooking(restaurant, date, timeOfDay, guests, specialRequests)
	return mcp.NewToolResultText(reply), nil
}

// ListMyBookings handles the list_my_bookings tool
func (h *Handlers) ListMyBookings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(h.bridge.ListBookings()), nil
}

// OnUserSpeech handles the user_speech notification
func (h *Handlers) OnUserSpeech(ctx context.Context, notification mcp.JSONRPCNotification) {
	if text := notificationText(notification); text != "" {
		h.bridge.OnUserSpeech(text)
	}
}

// OnAgentSpeech handles the agent_speech notification
func (h *Handlers) OnAgentSpeech(ctx context.Context, notification mcp.JSONRPCNotification) {
	if text := notificationText(notification); text != "" {
		h.bridge.OnAgentSpeech(text)
	}
}

func notificationText(notification mcp.JSONRPCNotification) string {
	text, _ := notification.Params.AdditionalFields["text"].(string)
	return text
}
