package endpoints

import (
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/labelforge/labelforge/pkg/audit"
	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server"
)

// SignupRequest is the body of POST /signup
type SignupRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse carries a session token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// PrincipalResponse is the JSON shape of a principal
type PrincipalResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Role  string `json:"role"`
}

// RegisterAuthEndpoints registers /signup and /login. Neither requires a
// session token.
func RegisterAuthEndpoints(s *server.Server) {
	s.Router.HandleFunc("/signup", handleSignup(s)).Methods("POST")
	s.Router.HandleFunc("/login", handleLogin(s)).Methods("POST")
}

func handleSignup(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if req.Login == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "login and password are required")
			return
		}

		// Admins are created with "labelctl user create", never over HTTP.
		role := req.Role
		switch role {
		case "":
			role = model.RoleAnnotator
		case model.RoleAnnotator, model.RoleReviewer:
		default:
			respondWithError(w, http.StatusBadRequest, "role must be annotator or reviewer")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}

		principal := &model.Principal{
			ID:    uuid.NewString(),
			Login: req.Login,
			Role:  role,
		}

		if err := s.PrincipalsStore.CreatePrincipal(r.Context(), principal, hash); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, PrincipalResponse{
			ID:    principal.ID,
			Login: principal.Login,
			Role:  principal.Role,
		})
	}
}

func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		remote := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			remote = forwarded
		}

		fail := func(message string) {
			audit.Log(audit.AuthenticateEvent{
				Login:        req.Login,
				ClientIP:     remote,
				Success:      false,
				ErrorMessage: message,
			})
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		}

		principal, err := s.PrincipalsStore.FetchPrincipalByLogin(r.Context(), req.Login)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Login failed")
			return
		}
		if principal == nil {
			fail("unknown login")
			return
		}

		hash, err := s.PrincipalsStore.FetchPasswordHash(r.Context(), principal.ID)
		if err != nil {
			fail("no stored credential")
			return
		}

		if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil {
			fail("invalid credentials")
			return
		}

		token, err := s.SessionAuth.IssueToken(principal.ID, principal.Login)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to issue session token")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Login:    req.Login,
			ClientIP: remote,
			Success:  true,
		})

		respondWithJSON(w, http.StatusOK, LoginResponse{
			Token:     token,
			ExpiresIn: s.Config.SessionTokenTTL,
		})
	}
}
