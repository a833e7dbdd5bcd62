package endpoints

import (
	"net/http"

	"github.com/labelforge/labelforge/pkg/identity"
	"github.com/labelforge/labelforge/pkg/server"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	ID       string `json:"id"`
	Login    string `json:"login"`
	Role     string `json:"role"`
	TokenIAT int64  `json:"token_iat,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(s.SessionAuth.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami(s)).Methods("GET")
}

func handleWhoami(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}

		response := WhoamiResponse{
			ID:    principal.ID,
			Login: principal.Login,
			Role:  principal.Role,
		}
		if id, ok := identity.Get(r.Context()); ok && !id.IssuedAt.IsZero() {
			response.TokenIAT = id.IssuedAt.Unix()
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}
