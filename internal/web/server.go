// Package web hosts a minimal JSON API over a pre-built set of solver
// tables.
package web

import (
	"log"
	"net/http"

	"github.com/frederik-kofoed-marqversen/rubiks-cube/internal/cube"
	"github.com/gorilla/mux"
)

// Server holds the stage tables the solver needs. Tables are built
// once before the server starts and never mutated, so a single Server
// can safely answer concurrent requests.
type Server struct {
	router *mux.Router
	tables cube.Tables
}

func NewServer(tables cube.Tables) *Server {
	s := &Server{
		router: mux.NewRouter(),
		tables: tables,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("server listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
