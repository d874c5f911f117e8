package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"arenabot/handler"
)

type reporter []handler.BotStatus

func (r reporter) Statuses() []handler.BotStatus { return r }

func TestRoute(t *testing.T) {
	srv := httptest.NewServer(Route(handler.NewHealthHandler(reporter{{Name: "a", Ready: true}})))
	defer srv.Close()

	for _, path := range []string{"/healthz", "/readyz"} {
		res, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, res.StatusCode)
		}
	}

	res, err := http.Post(srv.URL+"/readyz", "text/plain", nil)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST /readyz = %d, want 405", res.StatusCode)
	}
}
