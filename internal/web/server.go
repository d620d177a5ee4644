// Package web serves the address parsing API over HTTP.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	usaddr "github.com/usaddr-parse"
	"github.com/usaddr-parse/internal/web/handlers"
	"github.com/usaddr-parse/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *Config
	parser     *usaddr.Parser
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server instance around a parser.
func NewServer(config *Config, parser *usaddr.Parser) *Server {
	server := &Server{
		config: config,
		parser: parser,
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	apiHandler := &handlers.APIHandler{Parser: s.parser}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/parse", apiHandler.Parse).Methods("GET")
	api.HandleFunc("/tag", apiHandler.Tag).Methods("GET", "POST")
	api.HandleFunc("/health", apiHandler.Health).Methods("GET")

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging())
}

// Start starts the web server and blocks until an interrupt or termination
// signal arrives, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting server on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("Server shutdown error: %v\n", err)
	}

	fmt.Println("Server stopped")
	return nil
}
