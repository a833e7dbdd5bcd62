package server

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/labelforge/labelforge/pkg/authz"
	"github.com/labelforge/labelforge/pkg/blob"
	"github.com/labelforge/labelforge/pkg/config"
	"github.com/labelforge/labelforge/pkg/server/middleware"
	"github.com/labelforge/labelforge/pkg/server/store"
	gormstore "github.com/labelforge/labelforge/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	PrincipalsStore  store.PrincipalsStore
	ProjectsStore    store.ProjectsStore
	LabelsStore      store.LabelsStore
	ImagesStore      store.ImagesStore
	AnnotationsStore store.AnnotationsStore
	MembershipsStore store.MembershipsStore
	AuthzStore       store.AuthzStore
	HealthStore      store.HealthStore

	Blobs blob.Store

	Resolver  *authz.Resolver
	Evaluator *authz.Evaluator

	SessionAuth *middleware.SessionAuthenticator

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.Config,
	sessionKey []byte,
	blobs blob.Store,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	authzStore := gormstore.NewAuthzStore(db)

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,

		PrincipalsStore:  gormstore.NewPrincipalsStore(db),
		ProjectsStore:    gormstore.NewProjectsStore(db),
		LabelsStore:      gormstore.NewLabelsStore(db),
		ImagesStore:      gormstore.NewImagesStore(db),
		AnnotationsStore: gormstore.NewAnnotationsStore(db),
		MembershipsStore: gormstore.NewMembershipsStore(db),
		AuthzStore:       authzStore,
		HealthStore:      gormstore.NewHealthStore(db),

		Blobs: blobs,

		Resolver:  authz.NewResolver(authzStore),
		Evaluator: authz.NewEvaluator(authz.NewGraph(authzStore), authzStore),

		SessionAuth: middleware.NewSessionAuthenticator(sessionKey, cfg.SessionTTL()),

		srv: srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}

// StartWithListener serves on an existing listener. Used by the
// integration tests to bind an ephemeral port.
func (s Server) StartWithListener(l net.Listener) error {
	return s.srv.Serve(l)
}
