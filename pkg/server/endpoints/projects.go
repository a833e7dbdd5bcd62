package endpoints

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/labelforge/labelforge/pkg/audit"
	"github.com/labelforge/labelforge/pkg/authz"
	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server"
)

// ProjectRequest is the body of project create and update calls. CreatedBy
// is honored on create only when it names the caller; anything else is a
// forgery and denies.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
}

// ProjectResponse is the JSON shape of a project
type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedBy   string `json:"created_by"`
}

func projectResponse(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedBy:   p.CreatedBy,
	}
}

// RegisterProjectsEndpoints registers the project CRUD and check endpoints
func RegisterProjectsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/projects").Subrouter()
	router.Use(s.SessionAuth.Middleware)

	router.HandleFunc("", handleCreateProject(s)).Methods("POST")
	router.HandleFunc("", handleListProjects(s)).Methods("GET")
	router.HandleFunc("/{id}", handleGetProject(s)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdateProject(s)).Methods("PATCH", "PUT")
	router.HandleFunc("/{id}", handleDeleteProject(s)).Methods("DELETE")
	router.HandleFunc("/{id}/check", handleCheckProject(s)).Methods("GET")
}

func handleCreateProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}

		var req ProjectRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		createdBy := req.CreatedBy
		if createdBy == "" {
			createdBy = principal.ID
		}

		if !authorize(w, r, s, principal, authz.ActionInsert, authz.KindProject, "", &authz.Payload{CreatedBy: createdBy}) {
			return
		}

		status := req.Status
		if status == "" {
			status = model.ProjectStatusActive.String()
		}
		if _, err := model.ProjectStatusString(status); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid status")
			return
		}

		project := &model.Project{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
			Status:      status,
			CreatedBy:   createdBy,
		}

		if err := s.ProjectsStore.CreateProject(r.Context(), project); err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.WriteEvent{
			PrincipalID: principal.ID,
			ClientIP:    clientIP(r.Context()),
			EntityKind:  authz.KindProject.String(),
			EntityID:    project.ID,
			Operation:   "insert",
			Success:     true,
		})

		respondWithJSON(w, http.StatusCreated, projectResponse(project))
	}
}

func handleListProjects(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		if offset < 0 {
			offset = 0
		}

		// The listing is creator-scoped, so no per-row check is needed.
		projects, err := s.ProjectsStore.ListProjectsByCreator(r.Context(), principal.ID, listLimit(s, limit), offset)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]ProjectResponse, 0, len(projects))
		for i := range projects {
			response = append(response, projectResponse(&projects[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionSelect, authz.KindProject, projectID, nil) {
			return
		}

		project, err := s.ProjectsStore.FetchProject(r.Context(), projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if project == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		respondWithJSON(w, http.StatusOK, projectResponse(project))
	}
}

func handleUpdateProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		var req ProjectRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !authorize(w, r, s, principal, authz.ActionUpdate, authz.KindProject, projectID, nil) {
			return
		}

		project, err := s.ProjectsStore.FetchProject(r.Context(), projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if project == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		if req.Name != "" {
			project.Name = req.Name
		}
		if req.Description != "" {
			project.Description = req.Description
		}
		if req.Status != "" {
			if _, err := model.ProjectStatusString(req.Status); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid status")
				return
			}
			project.Status = req.Status
		}

		if err := s.ProjectsStore.UpdateProject(r.Context(), project); err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.WriteEvent{
			PrincipalID: principal.ID,
			ClientIP:    clientIP(r.Context()),
			EntityKind:  authz.KindProject.String(),
			EntityID:    project.ID,
			Operation:   "update",
			Success:     true,
		})

		respondWithJSON(w, http.StatusOK, projectResponse(project))
	}
}

func handleDeleteProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionDelete, authz.KindProject, projectID, nil) {
			return
		}

		if err := s.ProjectsStore.DeleteProject(r.Context(), projectID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.WriteEvent{
			PrincipalID: principal.ID,
			ClientIP:    clientIP(r.Context()),
			EntityKind:  authz.KindProject.String(),
			EntityID:    projectID,
			Operation:   "delete",
			Success:     true,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleCheckProject answers "may I do this" without doing it. The reply
// is 204 for allow and 404 for everything else, matching the opacity of
// the real operations.
func handleCheckProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		actionName := r.URL.Query().Get("action")
		if actionName == "" {
			actionName = authz.ActionSelect.String()
		}
		action, err := authz.ActionString(actionName)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid action")
			return
		}

		if !authorize(w, r, s, principal, action, authz.KindProject, projectID, nil) {
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
