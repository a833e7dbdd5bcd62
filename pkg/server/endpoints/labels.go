package endpoints

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/labelforge/labelforge/pkg/authz"
	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server"
)

// LabelRequest is the body of label create and update calls
type LabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Type  string `json:"type,omitempty"`
}

// LabelResponse is the JSON shape of a label
type LabelResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Type      string `json:"type"`
}

func labelResponse(l *model.Label) LabelResponse {
	return LabelResponse{
		ID:        l.ID,
		ProjectID: l.ProjectID,
		Name:      l.Name,
		Color:     l.Color,
		Type:      l.Type,
	}
}

// RegisterLabelsEndpoints registers the label CRUD endpoints
func RegisterLabelsEndpoints(s *server.Server) {
	projectRouter := s.Router.PathPrefix("/projects/{id}/labels").Subrouter()
	projectRouter.Use(s.SessionAuth.Middleware)
	projectRouter.HandleFunc("", handleCreateLabel(s)).Methods("POST")
	projectRouter.HandleFunc("", handleListLabels(s)).Methods("GET")

	labelRouter := s.Router.PathPrefix("/labels").Subrouter()
	labelRouter.Use(s.SessionAuth.Middleware)
	labelRouter.HandleFunc("/{id}", handleGetLabel(s)).Methods("GET")
	labelRouter.HandleFunc("/{id}", handleUpdateLabel(s)).Methods("PATCH", "PUT")
	labelRouter.HandleFunc("/{id}", handleDeleteLabel(s)).Methods("DELETE")
}

func handleCreateLabel(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		var req LabelRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		if !authorize(w, r, s, principal, authz.ActionInsert, authz.KindLabel, "", &authz.Payload{ProjectID: projectID}) {
			return
		}

		labelType := req.Type
		if labelType == "" {
			labelType = model.AnnotationTypeBbox.String()
		}
		if _, err := model.AnnotationTypeString(labelType); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid annotation type")
			return
		}

		label := &model.Label{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			Name:      req.Name,
			Color:     req.Color,
			Type:      labelType,
		}

		if err := s.LabelsStore.CreateLabel(r.Context(), label); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, labelResponse(label))
	}
}

func handleListLabels(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		// Listing a project's labels requires the same ownership the
		// per-label reads do.
		if !authorize(w, r, s, principal, authz.ActionSelect, authz.KindProject, projectID, nil) {
			return
		}

		labels, err := s.LabelsStore.ListLabels(r.Context(), projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]LabelResponse, 0, len(labels))
		for i := range labels {
			response = append(response, labelResponse(&labels[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetLabel(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		labelID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionSelect, authz.KindLabel, labelID, nil) {
			return
		}

		label, err := s.LabelsStore.FetchLabel(r.Context(), labelID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if label == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		respondWithJSON(w, http.StatusOK, labelResponse(label))
	}
}

func handleUpdateLabel(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		labelID := mux.Vars(r)["id"]

		var req LabelRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !authorize(w, r, s, principal, authz.ActionUpdate, authz.KindLabel, labelID, nil) {
			return
		}

		label, err := s.LabelsStore.FetchLabel(r.Context(), labelID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if label == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		if req.Name != "" {
			label.Name = req.Name
		}
		if req.Color != "" {
			label.Color = req.Color
		}
		if req.Type != "" {
			if _, err := model.AnnotationTypeString(req.Type); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid annotation type")
				return
			}
			label.Type = req.Type
		}

		if err := s.LabelsStore.UpdateLabel(r.Context(), label); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, labelResponse(label))
	}
}

func handleDeleteLabel(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		labelID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionDelete, authz.KindLabel, labelID, nil) {
			return
		}

		if err := s.LabelsStore.DeleteLabel(r.Context(), labelID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
