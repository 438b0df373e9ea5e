package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Channel selects how a message reaches its recipient
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// Message is a single outbound message
type Message struct {
	Channel Channel `json:"channel"`
	To      string  `json:"to"`
	Body    string  `json:"body"`
}

// Gateway represents an outbound message provider
type Gateway interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ErrNoRecipient is returned when a message has no destination address
var ErrNoRecipient = errors.New("message has no recipient address")

// HTTPGateway posts messages as JSON to a provider endpoint
type HTTPGateway struct {
	BaseURL    string
	APIKey     string
	Sender     string
	httpClient *http.Client
}

// NewHTTPGateway creates a new HTTPGateway
func NewHTTPGateway(baseURL, apiKey, sender string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Sender:  sender,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send sends a message through the provider and returns its message id
func (g *HTTPGateway) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" {
		return "", ErrNoRecipient
	}

	requestBody := map[string]interface{}{
		"channel": msg.Channel,
		"to":      msg.To,
		"from":    g.Sender,
		"message": msg.Body,
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/messages", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		MessageID string `json:"messageId"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return response.MessageID, nil
}

// MockGateway accepts every message without sending it
type MockGateway struct {
	Name string
}

// NewMockGateway creates a new mock gateway
func NewMockGateway(name string) *MockGateway {
	return &MockGateway{Name: name}
}

// Send logs the message and returns a generated id
func (g *MockGateway) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" {
		return "", ErrNoRecipient
	}
	msgID := fmt.Sprintf("%s-MOCK-%s", g.Name, uuid.NewString())
	slog.Debug("Mock gateway accepted message", "gateway", g.Name, "channel", msg.Channel, "to", msg.To, "messageId", msgID)
	return msgID, nil
}
