package endpoints

import (
	"net/http"
	"os"

	"github.com/labelforge/labelforge/pkg/server"
	"github.com/labelforge/labelforge/pkg/server/store"
)

// StatusResponse represents the response from the /status endpoint
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// RegisterStatusEndpoint registers the /status endpoint. It requires no
// authentication and is what "labelctl wait" polls.
func RegisterStatusEndpoint(s *server.Server) {
	s.Router.HandleFunc("/status", handleStatus(s.HealthStore)).Methods("GET")
}

func handleStatus(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("LABELFORGE_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, StatusResponse{
				Status:  "error",
				Version: version,
			})
			return
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:  "ok",
			Version: version,
		})
	}
}
