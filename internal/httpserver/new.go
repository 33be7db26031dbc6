package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"task-management/internal/middleware"
	"task-management/internal/model"
	"task-management/pkg/datemath"
	"task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Storage
	db *sqlx.DB

	// Queries
	dates *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	DB         *sqlx.DB
	DateParser *datemath.Parser
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, cfg.RateLimitPerMin),
		db:          cfg.DB,
		dates:       cfg.DateParser,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}

// exposeErrors reports whether unexpected error messages may reach clients.
func (srv HTTPServer) exposeErrors() bool {
	return srv.environment != string(model.EnvironmentProduction)
}
