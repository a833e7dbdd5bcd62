package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/labelforge/labelforge/pkg/audit"
	"github.com/labelforge/labelforge/pkg/authz"
	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server"
)

// AnnotationRequest is the body of annotation create and update calls.
// CreatedBy is honored on create only when it names the caller.
type AnnotationRequest struct {
	LabelID   string          `json:"label_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedBy string          `json:"created_by,omitempty"`
}

// ReviewRequest is the body of PATCH /annotations/{id}/review. A null
// approved resets the annotation to pending.
type ReviewRequest struct {
	Approved *bool `json:"approved"`
}

// AnnotationResponse is the JSON shape of an annotation
type AnnotationResponse struct {
	ID         string          `json:"id"`
	ImageID    string          `json:"image_id"`
	LabelID    string          `json:"label_id"`
	CreatedBy  string          `json:"created_by"`
	ReviewedBy *string         `json:"reviewed_by,omitempty"`
	Approved   *bool           `json:"approved,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

func annotationResponse(a *model.Annotation) AnnotationResponse {
	return AnnotationResponse{
		ID:         a.ID,
		ImageID:    a.ImageID,
		LabelID:    a.LabelID,
		CreatedBy:  a.CreatedBy,
		ReviewedBy: a.ReviewedBy,
		Approved:   a.Approved,
		Payload:    json.RawMessage(a.Payload),
	}
}

// RegisterAnnotationsEndpoints registers the annotation CRUD and review endpoints
func RegisterAnnotationsEndpoints(s *server.Server) {
	imageRouter := s.Router.PathPrefix("/images/{id}/annotations").Subrouter()
	imageRouter.Use(s.SessionAuth.Middleware)
	imageRouter.HandleFunc("", handleCreateAnnotation(s)).Methods("POST")
	imageRouter.HandleFunc("", handleListAnnotations(s)).Methods("GET")

	annotationRouter := s.Router.PathPrefix("/annotations").Subrouter()
	annotationRouter.Use(s.SessionAuth.Middleware)
	annotationRouter.HandleFunc("/{id}", handleGetAnnotation(s)).Methods("GET")
	annotationRouter.HandleFunc("/{id}", handleUpdateAnnotation(s)).Methods("PATCH", "PUT")
	annotationRouter.HandleFunc("/{id}/review", handleReviewAnnotation(s)).Methods("PATCH")
	annotationRouter.HandleFunc("/{id}", handleDeleteAnnotation(s)).Methods("DELETE")
}

func handleCreateAnnotation(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		imageID := mux.Vars(r)["id"]

		var req AnnotationRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if req.LabelID == "" {
			respondWithError(w, http.StatusBadRequest, "label_id is required")
			return
		}

		createdBy := req.CreatedBy
		if createdBy == "" {
			createdBy = principal.ID
		}

		if !authorize(w, r, s, principal, authz.ActionInsert, authz.KindAnnotation, "", &authz.Payload{
			ImageID:   imageID,
			CreatedBy: createdBy,
		}) {
			return
		}

		annotation := &model.Annotation{
			ID:        uuid.NewString(),
			ImageID:   imageID,
			LabelID:   req.LabelID,
			CreatedBy: createdBy,
			Payload:   []byte(req.Payload),
		}

		if err := s.AnnotationsStore.CreateAnnotation(r.Context(), annotation); err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.WriteEvent{
			PrincipalID: principal.ID,
			ClientIP:    clientIP(r.Context()),
			EntityKind:  authz.KindAnnotation.String(),
			EntityID:    annotation.ID,
			Operation:   "insert",
			Success:     true,
		})

		respondWithJSON(w, http.StatusCreated, annotationResponse(annotation))
	}
}

// handleListAnnotations lists the annotations drawn on an image. The
// project creator sees them through image ownership; global reviewers and
// admins may also list, since review happens across projects.
func handleListAnnotations(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		imageID := mux.Vars(r)["id"]

		decision, err := s.Evaluator.Authorize(r.Context(), principal, authz.ActionSelect, authz.KindImage, imageID, nil)
		allowed := err == nil && decision == authz.Allow

		if !allowed && err == nil && authz.IsReviewer(principal) {
			// The reviewer override applies to annotations, not their
			// image. The image must still exist.
			projectID, graphErr := s.AuthzStore.ImageProject(r.Context(), imageID)
			allowed = graphErr == nil && projectID != ""
		}

		if !allowed {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		annotations, err := s.AnnotationsStore.ListAnnotations(r.Context(), imageID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]AnnotationResponse, 0, len(annotations))
		for i := range annotations {
			response = append(response, annotationResponse(&annotations[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetAnnotation(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		annotationID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionSelect, authz.KindAnnotation, annotationID, nil) {
			return
		}

		annotation, err := s.AnnotationsStore.FetchAnnotation(r.Context(), annotationID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if annotation == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		respondWithJSON(w, http.StatusOK, annotationResponse(annotation))
	}
}

func handleUpdateAnnotation(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		annotationID := mux.Vars(r)["id"]

		var req AnnotationRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !authorize(w, r, s, principal, authz.ActionUpdate, authz.KindAnnotation, annotationID, nil) {
			return
		}

		annotation, err := s.AnnotationsStore.FetchAnnotation(r.Context(), annotationID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if annotation == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		if req.LabelID != "" {
			annotation.LabelID = req.LabelID
		}
		if req.Payload != nil {
			annotation.Payload = []byte(req.Payload)
		}

		if err := s.AnnotationsStore.UpdateAnnotation(r.Context(), annotation); err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.WriteEvent{
			PrincipalID: principal.ID,
			ClientIP:    clientIP(r.Context()),
			EntityKind:  authz.KindAnnotation.String(),
			EntityID:    annotation.ID,
			Operation:   "update",
			Success:     true,
		})

		respondWithJSON(w, http.StatusOK, annotationResponse(annotation))
	}
}

// handleReviewAnnotation sets the tri-state approval. Any authorized
// writer may set any value; there is no transition ordering.
func handleReviewAnnotation(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		annotationID := mux.Vars(r)["id"]

		var req ReviewRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !authorize(w, r, s, principal, authz.ActionUpdate, authz.KindAnnotation, annotationID, nil) {
			return
		}

		annotation, err := s.AnnotationsStore.FetchAnnotation(r.Context(), annotationID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if annotation == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		annotation.Approved = req.Approved
		if req.Approved == nil {
			annotation.ReviewedBy = nil
		} else {
			reviewer := principal.ID
			annotation.ReviewedBy = &reviewer
		}

		if err := s.AnnotationsStore.UpdateAnnotation(r.Context(), annotation); err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.WriteEvent{
			PrincipalID: principal.ID,
			ClientIP:    clientIP(r.Context()),
			EntityKind:  authz.KindAnnotation.String(),
			EntityID:    annotation.ID,
			Operation:   "update",
			Success:     true,
		})

		respondWithJSON(w, http.StatusOK, annotationResponse(annotation))
	}
}

func handleDeleteAnnotation(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		annotationID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionDelete, authz.KindAnnotation, annotationID, nil) {
			return
		}

		if err := s.AnnotationsStore.DeleteAnnotation(r.Context(), annotationID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.WriteEvent{
			PrincipalID: principal.ID,
			ClientIP:    clientIP(r.Context()),
			EntityKind:  authz.KindAnnotation.String(),
			EntityID:    annotationID,
			Operation:   "delete",
			Success:     true,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
