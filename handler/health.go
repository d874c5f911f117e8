package handler

import (
	"encoding/json"
	"net/http"
)

// BotStatus は1ボットの接続状態です。
type BotStatus struct {
	Name      string `json:"name"`
	Policy    string `json:"policy"`
	Ready     bool   `json:"ready"`
	SessionID string `json:"sessionId,omitempty"`
	Restarts  int    `json:"restarts"`
}

// StatusReporter は稼働中のボットの状態を返します。
type StatusReporter interface {
	Statuses() []BotStatus
}

type HealthHandler struct {
	reporter StatusReporter
}

func NewHealthHandler(reporter StatusReporter) *HealthHandler {
	return &HealthHandler{reporter: reporter}
}

// HandleLive はプロセスが生きていれば常に200を返します。
func (h *HealthHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// HandleReady は全てのボットがセッションを確立していれば200、そうでなければ503を返します。
func (h *HealthHandler) HandleReady(w http.ResponseWriter, r *http.Request) {
	statuses := h.reporter.Statuses()
	status := http.StatusOK
	if len(statuses) == 0 {
		status = http.StatusServiceUnavailable
	}
	for _, s := range statuses {
		if !s.Ready {
			status = http.StatusServiceUnavailable
			break
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"bots": statuses})
}
