package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labelforge/labelforge/pkg/audit"
	"github.com/labelforge/labelforge/pkg/authz"
	"github.com/labelforge/labelforge/pkg/identity"
	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server"
	"github.com/labelforge/labelforge/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// currentPrincipal resolves the request identity to a stored principal.
// A missing identity or an identity without a profile writes a 401 and
// returns nil.
func currentPrincipal(w http.ResponseWriter, r *http.Request, s *server.Server) *model.Principal {
	id, ok := identity.Get(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
		return nil
	}

	principal, err := s.Resolver.Resolve(r.Context(), id.PrincipalID)
	if err != nil {
		if errors.Is(err, authz.ErrUnauthenticated) {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to resolve identity")
		}
		return nil
	}
	return principal
}

// authorize evaluates a rule and writes the response on failure. Denials
// and missing entities both produce 404 so callers cannot probe for
// existence. Returns true only when the request may proceed.
func authorize(w http.ResponseWriter, r *http.Request, s *server.Server, principal *model.Principal, action authz.Action, kind authz.Kind, id string, payload *authz.Payload) bool {
	decision, err := s.Evaluator.Authorize(r.Context(), principal, action, kind, id, payload)

	logCheck(r.Context(), principal, action, kind, id, decision, err)

	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
		case errors.Is(err, authz.ErrEntityNotFound):
			respondWithError(w, http.StatusNotFound, "Not found")
		default:
			respondWithError(w, http.StatusInternalServerError, "Authorization failed")
		}
		return false
	}

	if decision != authz.Allow {
		respondWithError(w, http.StatusNotFound, "Not found")
		return false
	}
	return true
}

func logCheck(ctx context.Context, principal *model.Principal, action authz.Action, kind authz.Kind, id string, decision authz.Decision, err error) {
	event := audit.CheckEvent{
		EntityKind: kind.String(),
		EntityID:   id,
		Action:     action.String(),
		Allowed:    err == nil && decision == authz.Allow,
	}
	if principal != nil {
		event.PrincipalID = principal.ID
	}
	if reqID, ok := identity.Get(ctx); ok {
		event.ClientIP = reqID.RemoteIP
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}

// respondWithStoreError maps storage failures to status codes. Uniqueness
// conflicts are 409, missing parents 422, missing rows 404.
func respondWithStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrUniqueViolation):
		respondWithError(w, http.StatusConflict, "Already exists")
	case errors.Is(err, store.ErrForeignKeyViolation):
		respondWithError(w, http.StatusUnprocessableEntity, "Referenced entity does not exist")
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		respondWithError(w, http.StatusInternalServerError, "Storage failure")
	}
}

// decodeJSONBody parses a JSON request body into dst, writing a 400 on
// malformed input.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer func() { _ = r.Body.Close() }()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Malformed request body")
		return false
	}
	return true
}

// listLimit clamps a requested page size to the configured maximum.
func listLimit(s *server.Server, requested int) int {
	max := s.Config.APIResourceListLimitMax
	if requested <= 0 || requested > max {
		return max
	}
	return requested
}

func clientIP(ctx context.Context) string {
	if id, ok := identity.Get(ctx); ok {
		return id.RemoteIP
	}
	return ""
}
