package server

import (
	"net/http"

	"github.com/instamd/portal-auth/directory"
	"github.com/instamd/portal-auth/internal/config"
	"github.com/instamd/portal-auth/token"
	"github.com/rs/zerolog/log"
)

// Server is the authentication service HTTP surface
type Server struct {
	env    string
	mux    *http.ServeMux
	routes []string
	config config.Config
	users  directory.Repo
	tokens *token.Creator
}

// New wires the server with its user directory and token creator
func New(cfg config.Config, users directory.Repo, tokens *token.Creator) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		config: cfg,
		users:  users,
		tokens: tokens,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Debug().Str("route", route).Msg("registered")
	}
}
