package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"conduit-in-go/pkg/config"
	"conduit-in-go/pkg/server/store"
	gormstore "conduit-in-go/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	ArticlesStore store.ArticlesStore
	TagsStore     store.TagsStore
	UsersStore    store.UsersStore
	HealthStore   store.HealthStore

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.Config,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()

	var handler http.Handler = router
	if len(cfg.TrustedProxies) > 0 {
		// Honor X-Forwarded-For only when a proxy layer is configured.
		handler = handlers.ProxyHeaders(handler)
	}

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, handler),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:        router,
		DB:            db,
		Config:        cfg,
		ArticlesStore: gormstore.NewArticlesStore(db),
		TagsStore:     gormstore.NewTagsStore(db),
		UsersStore:    gormstore.NewUsersStore(db),
		HealthStore:   gormstore.NewHealthStore(db),
		srv:           srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
