// ABOUTME: MCP tool definitions and registration for the concierge agent
// ABOUTME: Exposes the four session tool actions and two speech-event notifications
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pinkperl/concierge/internal/session"
)

// RegisterTools registers the concierge tools and speech-event
// notification handlers with the server
func RegisterTools(server *mcpserver.MCPServer, bridge *session.Bridge) *Handlers {
	handlers := &Handlers{bridge: bridge}

	// 1. save_profile - store guest contact details
	server.AddTool(mcp.Tool{
		Name:        "save_profile",
		Description: "Save the guest's contact details. All fields are optional - only provided fields are updated.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Guest's name",
				},
				"phone": map[string]interface{}{
					"type":        "string",
					"description": "Guest's phone number",
				},
				"email": map[string]interface{}{
					"type":        "string",
					"description": "Guest's email address",
				},
			},
		},
	}, handlers.SaveProfile)

	// 2. create_room_booking - book a hotel room
	server.AddTool(mcp.Tool{
		Name:        "create_room_booking",
		Description: "Book a hotel room for the guest once all details are confirmed.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"room_type": map[string]interface{}{
					"type":        "string",
					"description": "Room type (Standard, Deluxe, or Presidential Suite)",
				},
				"check_in_date": map[string]interface{}{
					"type":        "string",
					"description": "Check-in date (YYYY-MM-DD)",
				},
				"check_out_date": map[string]interface{}{
					"type":        "string",
					"description": "Check-out date (YYYY-MM-DD)",
				},
				"num_adults": map[string]interface{}{
					"type":        "number",
					"description": "Number of adults",
				},
				"num_children": map[string]interface{}{
					"type":        "number",
					"description": "Number of children (default: 0)",
					"default":     0,
				},
				"special_requests": map[string]interface{}{
					"type":        "string",
					"description": "Special requests, e.g. non-smoking or accessibility needs",
				},
			},
			Required: []string{"room_type", "check_in_date", "check_out_date", "num_adults"},
		},
	}, handlers.CreateRoomBooking)

	// 3. create_restaurant_booking - reserve a restaurant table
	server.AddTool(mcp.Tool{
		Name:        "create_restaurant_booking",
		Description: "Reserve a table at one of the hotel restaurants (Surahi, Oasis, The Rooftop Lounge).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"restaurant_name": map[string]interface{}{
					"type":        "string",
					"description": "Restaurant name",
				},
				"booking_date": map[string]interface{}{
					"type":        "string",
					"description": "Reservation date (YYYY-MM-DD)",
				},
				"booking_time": map[string]interface{}{
					"type":        "string",
					"description": "Reservation time, e.g. 20:00",
				},
				"num_guests": map[string]interface{}{
					"type":        "number",
					"description": "Number of guests in the party",
				},
				"special_requests": map[string]interface{}{
					"type":        "string",
					"description": "Occasions, dietary restrictions, seating preferences",
				},
			},
			Required: []string{"restaurant_name", "booking_date", "booking_time", "num_guests"},
		},
	}, handlers.CreateRestaurantBooking)

	// 4. list_my_bookings - summarize the guest's confirmed bookings
	server.AddTool(mcp.Tool{
		Name:        "list_my_bookings",
		Description: "List the guest's confirmed room and restaurant bookings.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListMyBookings)

	// Speech events arrive as one-way notifications so a logging failure
	// can never fail a conversational turn.
	server.AddNotificationHandler("notifications/user_speech", handlers.OnUserSpeech)
	server.AddNotificationHandler("notifications/agent_speech", handlers.OnAgentSpeech)

	return handlers
}
