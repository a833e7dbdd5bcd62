package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/labelforge/labelforge/pkg/authz"
	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server"
)

// MembershipRequest is the body of POST /projects/{id}/memberships. Only
// self-enrollment is allowed; a user_id naming anyone else denies.
type MembershipRequest struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// MembershipResponse is the JSON shape of a membership row
type MembershipResponse struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
}

// RegisterMembershipsEndpoints registers the membership bookkeeping
// endpoints. Membership rows grant no access; see pkg/authz.
func RegisterMembershipsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/projects/{id}/memberships").Subrouter()
	router.Use(s.SessionAuth.Middleware)
	router.HandleFunc("", handleCreateMembership(s)).Methods("POST")
	router.HandleFunc("", handleListMemberships(s)).Methods("GET")
}

func handleCreateMembership(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		var req MembershipRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		userID := req.UserID
		if userID == "" {
			userID = principal.ID
		}

		if !authorize(w, r, s, principal, authz.ActionInsert, authz.KindMembership, "", &authz.Payload{
			ProjectID: projectID,
			UserID:    userID,
		}) {
			return
		}

		role := req.Role
		if role == "" {
			role = "member"
		}

		membership := &model.ProjectMembership{
			ProjectID: projectID,
			UserID:    userID,
			Role:      role,
		}

		if err := s.MembershipsStore.CreateMembership(r.Context(), membership); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, MembershipResponse{
			ProjectID: membership.ProjectID,
			UserID:    membership.UserID,
			Role:      membership.Role,
		})
	}
}

func handleListMemberships(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionSelect, authz.KindMembership, "", &authz.Payload{ProjectID: projectID}) {
			return
		}

		memberships, err := s.MembershipsStore.ListMemberships(r.Context(), projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]MembershipResponse, 0, len(memberships))
		for _, m := range memberships {
			response = append(response, MembershipResponse{
				ProjectID: m.ProjectID,
				UserID:    m.UserID,
				Role:      m.Role,
			})
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}
