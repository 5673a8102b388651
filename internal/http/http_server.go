package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	auth2 "gitlab.com/classhub-2025.net/internal/core/services/auth"
	catalog2 "gitlab.com/classhub-2025.net/internal/core/services/catalog"
	"gitlab.com/classhub-2025.net/internal/core/services/session"
	timetable2 "gitlab.com/classhub-2025.net/internal/core/services/timetable"
	"gitlab.com/classhub-2025.net/internal/handlers"
	"gitlab.com/classhub-2025.net/internal/handlers/auth"
	"gitlab.com/classhub-2025.net/internal/handlers/catalog"
	"gitlab.com/classhub-2025.net/internal/handlers/timetable"
)

type ServiceProvider struct {
	sessionService   session.ISessionService
	timetableService timetable2.ITimetableService
	catalogService   catalog2.ICatalogService
	ggAuth           auth2.IAuthService
	homeURL          string
}

func NewServiceProvider(
	sessionService session.ISessionService,
	timetableService timetable2.ITimetableService,
	catalogService catalog2.ICatalogService,
	ggAuth auth2.IAuthService,
	homeURL string,
) *ServiceProvider {
	return &ServiceProvider{
		sessionService:   sessionService,
		timetableService: timetableService,
		catalogService:   catalogService,
		ggAuth:           ggAuth,
		homeURL:          homeURL,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	mw := handlers.New(s.ServiceProvider.sessionService)
	auth.NewHandler(s.ServiceProvider.ggAuth, s.ServiceProvider.homeURL, s.logger).RegisterRoutes(r)
	timetable.NewHandler(s.ServiceProvider.timetableService, s.logger).RegisterRoutes(r, mw)
	catalog.NewHandler(s.ServiceProvider.catalogService, s.logger).RegisterRoutes(r)
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
