package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/labelforge/labelforge/pkg/model"
)

func TestCreateProject(t *testing.T) {
	alice := &model.Principal{ID: "u1", Login: "alice", Role: model.RoleAnnotator}

	t.Run("creator can create a project", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		ts.projects.On("CreateProject", mockCtx, mock.AnythingOfType("*model.Project")).Return(nil)

		w := ts.do("POST", "/projects", auth, strings.NewReader(`{"name":"street-signs"}`))

		require.Equal(t, http.StatusCreated, w.Code)

		var resp ProjectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "street-signs", resp.Name)
		assert.Equal(t, "u1", resp.CreatedBy)
		assert.Equal(t, "active", resp.Status)
	})

	t.Run("forged created_by denies opaquely", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		w := ts.do("POST", "/projects", auth, strings.NewReader(`{"name":"x","created_by":"u2"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
		ts.projects.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
	})

	t.Run("unauthenticated is 401", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do("POST", "/projects", "", strings.NewReader(`{"name":"x"}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetProject(t *testing.T) {
	alice := &model.Principal{ID: "u1", Login: "alice", Role: model.RoleAnnotator}
	bob := &model.Principal{ID: "u2", Login: "bob", Role: model.RoleAnnotator}
	project := &model.Project{ID: "p1", Name: "street-signs", Status: "active", CreatedBy: "u1"}

	t.Run("creator reads own project", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		ts.authzStore.On("ProjectCreator", mockCtx, "p1").Return("u1", nil)
		ts.projects.On("FetchProject", mockCtx, "p1").Return(project, nil)

		w := ts.do("GET", "/projects/p1", auth, nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp ProjectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "p1", resp.ID)
	})

	t.Run("stranger gets 404, not 403", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, bob)

		ts.authzStore.On("ProjectCreator", mockCtx, "p1").Return("u1", nil)

		w := ts.do("GET", "/projects/p1", auth, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		ts.projects.AssertNotCalled(t, "FetchProject", mock.Anything, mock.Anything)
	})

	t.Run("missing project gets the same 404", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, bob)

		ts.authzStore.On("ProjectCreator", mockCtx, "nope").Return("", nil)

		w := ts.do("GET", "/projects/nope", auth, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateProject(t *testing.T) {
	alice := &model.Principal{ID: "u1", Login: "alice", Role: model.RoleAnnotator}
	bob := &model.Principal{ID: "u2", Login: "bob", Role: model.RoleAnnotator}

	t.Run("creator updates status", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		project := &model.Project{ID: "p1", Name: "street-signs", Status: "active", CreatedBy: "u1"}
		ts.authzStore.On("ProjectCreator", mockCtx, "p1").Return("u1", nil)
		ts.projects.On("FetchProject", mockCtx, "p1").Return(project, nil)
		ts.projects.On("UpdateProject", mockCtx, mock.AnythingOfType("*model.Project")).Return(nil)

		w := ts.do("PATCH", "/projects/p1", auth, strings.NewReader(`{"status":"completed"}`))

		require.Equal(t, http.StatusOK, w.Code)

		var resp ProjectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "completed", resp.Status)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		project := &model.Project{ID: "p1", Status: "active", CreatedBy: "u1"}
		ts.authzStore.On("ProjectCreator", mockCtx, "p1").Return("u1", nil)
		ts.projects.On("FetchProject", mockCtx, "p1").Return(project, nil)

		w := ts.do("PATCH", "/projects/p1", auth, strings.NewReader(`{"status":"bogus"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		ts.projects.AssertNotCalled(t, "UpdateProject", mock.Anything, mock.Anything)
	})

	t.Run("stranger cannot update", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, bob)

		ts.authzStore.On("ProjectCreator", mockCtx, "p1").Return("u1", nil)

		w := ts.do("PATCH", "/projects/p1", auth, strings.NewReader(`{"name":"hijacked"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
		ts.projects.AssertNotCalled(t, "UpdateProject", mock.Anything, mock.Anything)
	})
}

func TestDeleteProject(t *testing.T) {
	alice := &model.Principal{ID: "u1", Login: "alice", Role: model.RoleAnnotator}

	t.Run("creator deletes own project", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		ts.authzStore.On("ProjectCreator", mockCtx, "p1").Return("u1", nil)
		ts.projects.On("DeleteProject", mockCtx, "p1").Return(nil)

		w := ts.do("DELETE", "/projects/p1", auth, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		ts.projects.AssertCalled(t, "DeleteProject", mock.Anything, "p1")
	})
}

func TestListProjects(t *testing.T) {
	alice := &model.Principal{ID: "u1", Login: "alice", Role: model.RoleAnnotator}

	t.Run("lists own projects only", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		ts.projects.On("ListProjectsByCreator", mockCtx, "u1", 1000, 0).Return([]model.Project{
			{ID: "p1", Name: "one", Status: "active", CreatedBy: "u1"},
			{ID: "p2", Name: "two", Status: "paused", CreatedBy: "u1"},
		}, nil)

		w := ts.do("GET", "/projects", auth, nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp []ProjectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("limit is clamped to the configured maximum", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		ts.projects.On("ListProjectsByCreator", mockCtx, "u1", 1000, 0).Return([]model.Project{}, nil)

		w := ts.do("GET", "/projects?limit=99999", auth, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		ts.projects.AssertCalled(t, "ListProjectsByCreator", mock.Anything, "u1", 1000, 0)
	})
}

func TestCheckProject(t *testing.T) {
	alice := &model.Principal{ID: "u1", Login: "alice", Role: model.RoleAnnotator}
	bob := &model.Principal{ID: "u2", Login: "bob", Role: model.RoleAnnotator}

	t.Run("allow is 204", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		ts.authzStore.On("ProjectCreator", mockCtx, "p1").Return("u1", nil)

		w := ts.do("GET", "/projects/p1/check?action=update", auth, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("deny is 404", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, bob)

		ts.authzStore.On("ProjectCreator", mockCtx, "p1").Return("u1", nil)

		w := ts.do("GET", "/projects/p1/check?action=update", auth, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bogus action is 400", func(t *testing.T) {
		ts := newTestServer(t)
		auth := ts.loginAs(t, alice)

		w := ts.do("GET", "/projects/p1/check?action=fly", auth, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
