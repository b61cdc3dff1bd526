// Package api exposes the tutoring backend over HTTP with JSON bodies.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abhisek/vidya/internal/backend"
)

// Server holds the HTTP handlers over a backend.
type Server struct {
	backend *backend.Backend
}

// NewServer creates the API server.
func NewServer(b *backend.Backend) *Server {
	return &Server{backend: b}
}

// Router builds the chi router with all API routes mounted under /api.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/boards", s.handleBoards)
		r.Get("/grades", s.handleGrades)
		r.Get("/syllabus", s.handleSyllabus)
		r.Get("/syllabus/search", s.handleSyllabusSearch)

		r.Post("/quiz", s.handleCreateQuiz)
		r.Post("/quiz/submit", s.handleSubmitQuiz)

		r.Get("/students/{studentID}/stats", s.handleStudentStats)
		r.Get("/students/{studentID}/report", s.handleProgressReport)
		r.Get("/students/{studentID}/achievements", s.handleAchievements)
		r.Get("/students/{studentID}/perks", s.handleAvailablePerks)
		r.Post("/students/{studentID}/perks/{perkID}", s.handlePurchasePerk)

		r.Get("/leaderboard", s.handleLeaderboard)

		r.Post("/roadmap", s.handleRoadmap)
		r.Post("/revision", s.handleRevision)

		r.Post("/video/start", s.handleStartVideo)
		r.Post("/video/complete", s.handleCompleteVideo)
		r.Get("/attention", s.handleAttention)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decode reads a JSON request body into dst, rejecting unknown fields.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
