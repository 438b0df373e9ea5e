package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGatewaySend(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"messageId":"m-42"}`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, "key-1", "ENGAGE", time.Second)
	id, err := g.Send(context.Background(), Message{Channel: ChannelSMS, To: "+15550001", Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "m-42", id)
	assert.Equal(t, "+15550001", got["to"])
	assert.Equal(t, "ENGAGE", got["from"])
	assert.Equal(t, "hi", got["message"])
}

func TestHTTPGatewayErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, "k", "s", time.Second)
	_, err := g.Send(context.Background(), Message{Channel: ChannelEmail, To: "a@b.c", Body: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGatewaysRejectEmptyRecipient(t *testing.T) {
	_, err := NewMockGateway("test").Send(context.Background(), Message{Channel: ChannelSMS})
	assert.ErrorIs(t, err, ErrNoRecipient)

	_, err = NewHTTPGateway("http://unused", "", "", time.Second).Send(context.Background(), Message{})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestMockGatewaySend(t *testing.T) {
	id, err := NewMockGateway("MOCK").Send(context.Background(), Message{Channel: ChannelSMS, To: "1", Body: "b"})
	require.NoError(t, err)
	assert.Contains(t, id, "MOCK-MOCK-")
}
