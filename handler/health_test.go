package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticReporter []BotStatus

func (s staticReporter) Statuses() []BotStatus { return s }

func TestHealthHandler_HandleReady(t *testing.T) {
	tests := []struct {
		name     string
		statuses []BotStatus
		want     int
	}{
		{"no bots", nil, http.StatusServiceUnavailable},
		{"all ready", []BotStatus{{Name: "a", Ready: true}, {Name: "b", Ready: true}}, http.StatusOK},
		{"one connecting", []BotStatus{{Name: "a", Ready: true}, {Name: "b"}}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(staticReporter(tt.statuses))
			rec := httptest.NewRecorder()
			h.HandleReady(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			var body struct {
				Bots []BotStatus `json:"bots"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(body.Bots) != len(tt.statuses) {
				t.Errorf("bots = %d, want %d", len(body.Bots), len(tt.statuses))
			}
		})
	}
}

func TestHealthHandler_HandleLive(t *testing.T) {
	h := NewHealthHandler(staticReporter(nil))
	rec := httptest.NewRecorder()
	h.HandleLive(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
