package server

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"arenabot/handler"
)

func Route(health *handler.HealthHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", health.HandleLive)
	mux.HandleFunc("GET /readyz", health.HandleReady)
	return otelhttp.NewHandler(mux, "health")
}
