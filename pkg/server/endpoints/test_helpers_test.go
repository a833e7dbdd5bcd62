package endpoints

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/labelforge/labelforge/pkg/authz"
	"github.com/labelforge/labelforge/pkg/config"
	"github.com/labelforge/labelforge/pkg/model"
	"github.com/labelforge/labelforge/pkg/server"
	"github.com/labelforge/labelforge/pkg/server/middleware"
)

var (
	testSessionKey = []byte("endpoint-test-session-key-012345")

	// mockCtx matches whatever context the handler passes down.
	mockCtx = mock.Anything
)

// testServer wires a Server over mock stores, no database required.
type testServer struct {
	srv         *server.Server
	authzStore  *MockAuthzStore
	principals  *MockPrincipalsStore
	projects    *MockProjectsStore
	labels      *MockLabelsStore
	images      *MockImagesStore
	annotations *MockAnnotationsStore
	memberships *MockMembershipsStore
	health      *MockHealthStore
	blobs       *MockBlobStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		authzStore:  NewMockAuthzStore(),
		principals:  NewMockPrincipalsStore(),
		projects:    NewMockProjectsStore(),
		labels:      NewMockLabelsStore(),
		images:      NewMockImagesStore(),
		annotations: NewMockAnnotationsStore(),
		memberships: NewMockMembershipsStore(),
		health:      NewMockHealthStore(),
		blobs:       NewMockBlobStore(),
	}

	cfg := &config.Config{
		APIResourceListLimitMax: 1000,
		SessionTokenTTL:         3600,
	}

	ts.srv = &server.Server{
		Router: mux.NewRouter().UseEncodedPath(),
		Config: cfg,

		PrincipalsStore:  ts.principals,
		ProjectsStore:    ts.projects,
		LabelsStore:      ts.labels,
		ImagesStore:      ts.images,
		AnnotationsStore: ts.annotations,
		MembershipsStore: ts.memberships,
		AuthzStore:       ts.authzStore,
		HealthStore:      ts.health,

		Blobs: ts.blobs,

		Resolver:  authz.NewResolver(ts.authzStore),
		Evaluator: authz.NewEvaluator(authz.NewGraph(ts.authzStore), ts.authzStore),

		SessionAuth: middleware.NewSessionAuthenticator(testSessionKey, time.Duration(cfg.SessionTokenTTL)*time.Second),
	}

	RegisterAll(ts.srv)
	return ts
}

// loginAs wires principal resolution for id and returns an Authorization
// header value for it.
func (ts *testServer) loginAs(t *testing.T, principal *model.Principal) string {
	t.Helper()

	ts.authzStore.On("FetchPrincipal", mockCtx, principal.ID).Return(principal, nil)

	token, err := ts.srv.SessionAuth.IssueToken(principal.ID, principal.Login)
	require.NoError(t, err)
	return "Bearer " + token
}

func (ts *testServer) do(method, path, authHeader string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.srv.Router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) doRequest(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.srv.Router.ServeHTTP(w, req)
	return w
}
