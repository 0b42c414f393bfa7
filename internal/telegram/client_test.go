package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-token", zerolog.Nop())
	c.baseURL = srv.URL
	return c
}

func TestGetUpdates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/getUpdates" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("offset"); got != "5" {
			t.Errorf("offset = %q, want %q", got, "5")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ok": true,
			"result": [
				{"update_id": 5, "message": {"message_id": 1, "from": {"id": 77}, "chat": {"id": 77}, "text": "А643ЕЕ77"}}
			]
		}`))
	})

	updates, err := client.GetUpdates(context.Background(), 5, 0)
	if err != nil {
		t.Fatalf("GetUpdates: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(updates))
	}
	msg := updates[0].Message
	if msg == nil || msg.From == nil {
		t.Fatal("update message missing")
	}
	if msg.From.ID != 77 || msg.Text != "А643ЕЕ77" {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestGetUpdatesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok": false, "description": "Unauthorized"}`))
	})

	if _, err := client.GetUpdates(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error for API failure")
	}
}

func TestSendMessage(t *testing.T) {
	var received map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/sendMessage" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok": true, "result": {}}`))
	})

	if err := client.SendMessage(context.Background(), 42, "Привет"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if received["chat_id"].(float64) != 42 {
		t.Errorf("chat_id = %v, want 42", received["chat_id"])
	}
	if received["text"] != "Привет" {
		t.Errorf("text = %v", received["text"])
	}
}
