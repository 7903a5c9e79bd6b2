// ABOUTME: LiveKit room provisioning, access tokens, and agent dispatch
// ABOUTME: Wraps the server SDK behind the small surface the token endpoint needs
package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
)

// ErrNotConfigured is returned when LiveKit credentials are absent.
var ErrNotConfigured = errors.New("livekit credentials are not configured")

// TokenTTL is how long an issued room-join token stays valid.
const TokenTTL = 6 * time.Hour

// Client talks to the LiveKit server API
type Client struct {
	wsURL     string
	apiKey    string
	apiSecret string
	agentName string

	roomService *lksdk.RoomServiceClient
	dispatch    *lksdk.AgentDispatchClient
}

// NewClient creates a Client. Returns ErrNotConfigured if any
// credential is missing so callers can detect the condition before any
// network call.
func NewClient(wsURL, apiKey, apiSecret, agentName string) (*Client, error) {
	if wsURL == "" || apiKey == "" || apiSecret == "" {
		return nil, ErrNotConfigured
	}

	host := httpURL(wsURL)
	return &Client{
		wsURL:       wsURL,
		apiKey:      apiKey,
		apiSecret:   apiSecret,
		agentName:   agentName,
		roomService: lksdk.NewRoomServiceClient(host, apiKey, apiSecret),
		dispatch:    lksdk.NewAgentDispatchServiceClient(host, apiKey, apiSecret),
	}, nil
}

// URL returns the websocket URL clients should connect to.
func (c *Client) URL() string {
	return c.wsURL
}

// CreateRoom provisions a room on the LiveKit server. Transient API
// failures are retried with backoff until the context expires.
func (c *Client) CreateRoom(ctx context.Context, name string) error {
	err := withRetry(ctx, func() error {
		_, err := c.roomService.CreateRoom(ctx, &livekit.CreateRoomRequest{Name: name})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create room %s: %w", name, err)
	}
	return nil
}

// AccessToken mints a room-join token for a participant identity.
func (c *Client) AccessToken(identity, roomName string) (string, error) {
	grant := &auth.VideoGrant{
		RoomJoin: true,
		Room:     roomName,
	}

	at := auth.NewAccessToken(c.apiKey, c.apiSecret).
		SetVideoGrant(grant).
		SetIdentity(identity).
		SetName(identity).
		SetValidFor(TokenTTL)

	return at.ToJWT()
}

// DispatchAgent asks the server to send the concierge agent worker into
// the room. Callers treat failure as non-fatal: the worker may attach
// to the room on its own.
func (c *Client) DispatchAgent(ctx context.Context, roomName string) error {
	err := withRetry(ctx, func() error {
		_, err := c.dispatch.CreateDispatch(ctx, &livekit.CreateAgentDispatchRequest{
			Room:      roomName,
			AgentName: c.agentName,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to dispatch agent to %s: %w", roomName, err)
	}
	return nil
}

// httpURL converts a LiveKit websocket URL to the HTTP API endpoint.
func httpURL(wsURL string) string {
	switch {
	case strings.HasPrefix(wsURL, "wss://"):
		return "https://" + strings.TrimPrefix(wsURL, "wss://")
	case strings.HasPrefix(wsURL, "ws://"):
		return "http://" + strings.TrimPrefix(wsURL, "ws://")
	}
	return wsURL
}
