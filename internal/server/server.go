package server

import (
	"log"
	"net/http"

	"github.com/i2bric/TaskHero/internal/engine"
)

// Server exposes the task, profile and history operations over HTTP.
type Server struct {
	svc    *engine.Service
	logger *log.Logger
}

func New(svc *engine.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{svc: svc, logger: logger}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("PUT /api/tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)
	mux.HandleFunc("POST /api/tasks/{id}/complete", s.handleCompleteTask)
	mux.HandleFunc("GET /api/tasks/overdue", s.handleOverdueCount)

	mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	mux.HandleFunc("POST /api/profile/reset", s.handleResetProfile)

	mux.HandleFunc("GET /api/history", s.handleListHistory)
	mux.HandleFunc("GET /api/history/stats", s.handleHistoryStats)

	mux.HandleFunc("POST /api/reset", s.handleResetAll)

	return mux
}
