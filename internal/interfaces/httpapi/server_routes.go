package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// The API routes accept any method.
func registerAPIRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("/api/health", handler.Health)
	mux.HandleFunc("/api/test-openai", handler.TestOpenAI)
}
