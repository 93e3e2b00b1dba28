package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carefacility/shiftgen/pkg/logger"
)

// Server holds the router and the logger every handler writes through.
type Server struct {
	router *mux.Router
	log    *logger.Logger
}

// NewServer builds the routed handler for POST /generate, POST
// /validate, POST /edit-warnings, and GET /health.
func NewServer(log *logger.Logger) *Server {
	s := &Server{router: mux.NewRouter(), log: log}

	s.router.Use(recoveryMiddleware(log), loggingMiddleware(log))
	s.router.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	s.router.HandleFunc("/validate", s.handleValidate).Methods(http.MethodPost)
	s.router.HandleFunc("/edit-warnings", s.handleEditWarnings).Methods(http.MethodPost)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
