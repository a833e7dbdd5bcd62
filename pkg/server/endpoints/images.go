package endpoints

import (
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/labelforge/labelforge/pkg/audit"
	"github.com/labelforge/labelforge/pkg/authz"
	"github.com/labelforge/labelforge/pkg/blob"
	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server"
)

// Uploads larger than this are rejected before touching the blob store.
const maxUploadBytes = 64 << 20

// ImageResponse is the JSON shape of an image row
type ImageResponse struct {
	ID         string  `json:"id"`
	ProjectID  string  `json:"project_id"`
	Filename   string  `json:"filename"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	Status     string  `json:"status"`
	UploadedBy string  `json:"uploaded_by"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

// ImageUpdateRequest is the body of image update calls
type ImageUpdateRequest struct {
	Status     string  `json:"status,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

// ImageListResponse wraps an image listing with its total count
type ImageListResponse struct {
	Images []ImageResponse `json:"images"`
	Count  int             `json:"count"`
}

func imageResponse(img *model.Image) ImageResponse {
	return ImageResponse{
		ID:         img.ID,
		ProjectID:  img.ProjectID,
		Filename:   img.Filename,
		Width:      img.Width,
		Height:     img.Height,
		Status:     img.Status,
		UploadedBy: img.UploadedBy,
		AssignedTo: img.AssignedTo,
	}
}

// RegisterImagesEndpoints registers the image upload and CRUD endpoints
func RegisterImagesEndpoints(s *server.Server) {
	projectRouter := s.Router.PathPrefix("/projects/{id}/images").Subrouter()
	projectRouter.Use(s.SessionAuth.Middleware)
	projectRouter.HandleFunc("", handleUploadImage(s)).Methods("POST")
	projectRouter.HandleFunc("", handleListImages(s)).Methods("GET")

	imageRouter := s.Router.PathPrefix("/images").Subrouter()
	imageRouter.Use(s.SessionAuth.Middleware)
	imageRouter.HandleFunc("/{id}", handleGetImage(s)).Methods("GET")
	imageRouter.HandleFunc("/{id}/file", handleGetImageFile(s)).Methods("GET")
	imageRouter.HandleFunc("/{id}", handleUpdateImage(s)).Methods("PATCH", "PUT")
	imageRouter.HandleFunc("/{id}", handleDeleteImage(s)).Methods("DELETE")
}

// handleUploadImage accepts a multipart form with a "file" part plus
// optional width/height fields, stores the bytes, then inserts the row.
func handleUploadImage(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionInsert, authz.KindImage, "", &authz.Payload{ProjectID: projectID}) {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed multipart body")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "file part is required")
			return
		}
		defer func() { _ = file.Close() }()

		width, _ := strconv.Atoi(r.FormValue("width"))
		height, _ := strconv.Atoi(r.FormValue("height"))

		imageID := uuid.NewString()
		objectKey := blob.ObjectKey(projectID, imageID, header.Filename)

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		if err := s.Blobs.Put(r.Context(), objectKey, file, header.Size, contentType); err != nil {
			respondWithError(w, http.StatusBadGateway, "Failed to store image bytes")
			return
		}

		image := &model.Image{
			ID:         imageID,
			ProjectID:  projectID,
			ObjectKey:  objectKey,
			Filename:   header.Filename,
			Width:      width,
			Height:     height,
			Status:     model.ImageStatusPending.String(),
			UploadedBy: principal.ID,
		}

		if err := s.ImagesStore.CreateImage(r.Context(), image); err != nil {
			// Roll back the orphaned object; the row is the source of truth.
			_ = s.Blobs.Delete(r.Context(), objectKey)
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.WriteEvent{
			PrincipalID: principal.ID,
			ClientIP:    clientIP(r.Context()),
			EntityKind:  authz.KindImage.String(),
			EntityID:    imageID,
			Operation:   "insert",
			Success:     true,
		})

		respondWithJSON(w, http.StatusCreated, imageResponse(image))
	}
}

func handleListImages(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		projectID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionSelect, authz.KindProject, projectID, nil) {
			return
		}

		status := r.URL.Query().Get("status")
		if status != "" {
			if _, err := model.ImageStatusString(status); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid status")
				return
			}
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		if offset < 0 {
			offset = 0
		}

		images, err := s.ImagesStore.ListImages(r.Context(), projectID, status, listLimit(s, limit), offset)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		count, err := s.ImagesStore.CountImages(r.Context(), projectID, status)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := ImageListResponse{
			Images: make([]ImageResponse, 0, len(images)),
			Count:  count,
		}
		for i := range images {
			response.Images = append(response.Images, imageResponse(&images[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetImage(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		imageID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionSelect, authz.KindImage, imageID, nil) {
			return
		}

		image, err := s.ImagesStore.FetchImage(r.Context(), imageID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if image == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		respondWithJSON(w, http.StatusOK, imageResponse(image))
	}
}

// handleGetImageFile streams the stored bytes for an image.
func handleGetImageFile(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		imageID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionSelect, authz.KindImage, imageID, nil) {
			return
		}

		image, err := s.ImagesStore.FetchImage(r.Context(), imageID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if image == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		object, err := s.Blobs.Get(r.Context(), image.ObjectKey)
		if err != nil {
			respondWithError(w, http.StatusBadGateway, "Failed to fetch image bytes")
			return
		}
		defer func() { _ = object.Close() }()

		w.Header().Set("Content-Disposition", `attachment; filename="`+image.Filename+`"`)
		_, _ = io.Copy(w, object)
	}
}

func handleUpdateImage(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		imageID := mux.Vars(r)["id"]

		var req ImageUpdateRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !authorize(w, r, s, principal, authz.ActionUpdate, authz.KindImage, imageID, nil) {
			return
		}

		image, err := s.ImagesStore.FetchImage(r.Context(), imageID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if image == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		if req.Status != "" {
			if _, err := model.ImageStatusString(req.Status); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid status")
				return
			}
			image.Status = req.Status
		}
		if req.AssignedTo != nil {
			if *req.AssignedTo == "" {
				image.AssignedTo = nil
			} else {
				image.AssignedTo = req.AssignedTo
			}
		}

		if err := s.ImagesStore.UpdateImage(r.Context(), image); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, imageResponse(image))
	}
}

func handleDeleteImage(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := currentPrincipal(w, r, s)
		if principal == nil {
			return
		}
		imageID := mux.Vars(r)["id"]

		if !authorize(w, r, s, principal, authz.ActionDelete, authz.KindImage, imageID, nil) {
			return
		}

		image, err := s.ImagesStore.FetchImage(r.Context(), imageID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if image == nil {
			respondWithError(w, http.StatusNotFound, "Not found")
			return
		}

		if err := s.ImagesStore.DeleteImage(r.Context(), imageID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		// Row first, object second. A failed object delete leaves garbage
		// in the bucket but never a row pointing at nothing.
		_ = s.Blobs.Delete(r.Context(), image.ObjectKey)

		audit.Log(audit.WriteEvent{
			PrincipalID: principal.ID,
			ClientIP:    clientIP(r.Context()),
			EntityKind:  authz.KindImage.String(),
			EntityID:    imageID,
			Operation:   "delete",
			Success:     true,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
