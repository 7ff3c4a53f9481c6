package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hokage/jutsu/internal/app"
)

func TestAPI_JutsuWorkflow(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	// 1. List the seeded bindings
	resp, err := client.Get(ts.URL + "/api/jutsus")
	if err != nil {
		t.Fatalf("GET /api/jutsus error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var listed struct {
		Jutsus []struct {
			Gesture string `json:"gesture"`
			Name    string `json:"name"`
		} `json:"jutsus"`
	}
	json.NewDecoder(resp.Body).Decode(&listed)
	resp.Body.Close()

	if len(listed.Jutsus) != 8 {
		t.Fatalf("len(jutsus) = %d, want 8", len(listed.Jutsus))
	}

	// 2. Retune the fist binding
	updateBody := `{"name":"Fire Style: Phoenix Flower","cost":15,"cooldown_ms":1000,"effect_id":"fireball","sound_id":"fire_jutsu"}`
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/jutsus/fist", bytes.NewBufferString(updateBody))
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("PUT /api/jutsus/fist error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	resp.Body.Close()

	// 3. Verify the update is visible
	resp, _ = client.Get(ts.URL + "/api/jutsus/fist")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/jutsus/fist status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var updated struct {
		Name string `json:"name"`
	}
	json.NewDecoder(resp.Body).Decode(&updated)
	resp.Body.Close()

	if updated.Name != "Fire Style: Phoenix Flower" {
		t.Errorf("name = %s, want Fire Style: Phoenix Flower", updated.Name)
	}

	// 4. Pause via the controls endpoint
	resp, _ = client.Post(ts.URL+"/api/controls", "application/json", bytes.NewBufferString(`{"action":"pause"}`))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /api/controls status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	resp.Body.Close()

	// 5. State reflects the pause
	resp, _ = client.Get(ts.URL + "/api/state")
	var state struct {
		Paused bool `json:"paused"`
	}
	json.NewDecoder(resp.Body).Decode(&state)
	resp.Body.Close()

	// Snapshot is recomputed on the next frame; the control itself must
	// have landed regardless.
	if srv.config.App.IsEnabled() {
		t.Error("app still enabled after pause control")
	}
	_ = state
}

func TestAPI_EventsWebSocket(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	// Wait for the hub to register the connection before publishing.
	registered := false
	for i := 0; i < 100; i++ {
		if srv.events.ClientCount() == 1 {
			registered = true
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !registered {
		t.Fatalf("client not registered: %d", srv.events.ClientCount())
	}

	srv.events.Publish(app.FrameOutput{LastJutsu: "Fire Style: Fireball Jutsu"})

	var msg struct {
		LastJutsu string `json:"lastJutsu"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON error = %v", err)
	}
	if msg.LastJutsu != "Fire Style: Fireball Jutsu" {
		t.Errorf("last_jutsu = %q", msg.LastJutsu)
	}
}
