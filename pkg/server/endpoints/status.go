package endpoints

import (
	"net/http"
	"os"
	"strings"

	"conduit-in-go/pkg/server"
	"conduit-in-go/pkg/server/store"
)

// StatusResponse represents the JSON form of the status page
type StatusResponse struct {
	Version string `json:"version"`
}

// HealthResponse represents the response from the /health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// RegisterStatusEndpoints registers the status and health endpoints
func RegisterStatusEndpoints(s *server.Server) {
	healthStore := s.HealthStore

	// GET / - Status page (no auth required)
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")

	// GET /health - Database connectivity check (no auth required)
	s.Router.HandleFunc("/health", handleHealth(healthStore)).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("CONDUIT_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			respondWithJSON(w, http.StatusOK, StatusResponse{Version: version})
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>Conduit Status</title>
  </head>
  <body>
    <main>
      <h1>Status</h1>
      <p>Your Conduit server is running!</p>
      <dl>
        <dt>Version</dt>
        <dd>` + version + `</dd>
      </dl>
    </main>
  </body>
</html>
`

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
