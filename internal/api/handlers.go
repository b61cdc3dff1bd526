package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/vidya/internal/backend"
	"github.com/abhisek/vidya/internal/leaderboard"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/retrieval"
)

var errMissingStudent = errors.New("student_id is required")

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBoards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"boards": s.backend.Boards()})
}

func (s *Server) handleGrades(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"grades": s.backend.Grades()})
}

func (s *Server) handleSyllabus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	topics := s.backend.SyllabusTopics(q.Get("board"), q.Get("grade"), q.Get("subject"))
	writeJSON(w, http.StatusOK, map[string]any{
		"board":   q.Get("board"),
		"grade":   q.Get("grade"),
		"subject": q.Get("subject"),
		"topics":  topics,
	})
}

func (s *Server) handleSyllabusSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	topK := retrieval.DefaultTopK
	if raw := q.Get("top_k"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			topK = n
		}
	}
	results := s.backend.SearchSyllabus(q.Get("q"), retrieval.Filters{
		Board:   q.Get("board"),
		Grade:   q.Get("grade"),
		Subject: q.Get("subject"),
	}, topK)
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

type createQuizRequest struct {
	StudentID string `json:"student_id"`
	backend.CreateQuizRequest
}

func (s *Server) handleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req createQuizRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.StudentID == "" {
		writeError(w, http.StatusBadRequest, errMissingStudent)
		return
	}
	view, err := s.backend.CreateQuiz(r.Context(), req.StudentID, req.CreateQuizRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type submitQuizRequest struct {
	StudentID string  `json:"student_id"`
	Answers   []int   `json:"answers"`
	TimeTaken float64 `json:"time_taken"`
}

func (s *Server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req submitQuizRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.StudentID == "" {
		writeError(w, http.StatusBadRequest, errMissingStudent)
		return
	}
	result, err := s.backend.SubmitQuiz(r.Context(), req.StudentID, req.Answers, req.TimeTaken)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStudentStats(w http.ResponseWriter, r *http.Request) {
	stats := s.backend.GetStudentStats(r.Context(), chi.URLParam(r, "studentID"))
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleProgressReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("subject") == "" || q.Get("grade") == "" {
		writeError(w, http.StatusBadRequest, errors.New("subject and grade are required"))
		return
	}
	report := s.backend.GetProgressReport(r.Context(), chi.URLParam(r, "studentID"),
		progress.Key{Subject: q.Get("subject"), Grade: q.Get("grade")})
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	summary := s.backend.GetAchievementsSummary(r.Context(), chi.URLParam(r, "studentID"))
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAvailablePerks(w http.ResponseWriter, r *http.Request) {
	perks := s.backend.AvailablePerks(r.Context(), chi.URLParam(r, "studentID"))
	writeJSON(w, http.StatusOK, map[string]any{"perks": perks})
}

func (s *Server) handlePurchasePerk(w http.ResponseWriter, r *http.Request) {
	result, err := s.backend.PurchasePerk(r.Context(), chi.URLParam(r, "studentID"), chi.URLParam(r, "perkID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	status := http.StatusOK
	if !result.Success {
		status = http.StatusConflict
	}
	writeJSON(w, status, result)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	metric := q.Get("metric")
	if metric == "" {
		metric = leaderboard.DefaultMetric
	}
	limit := leaderboard.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	entries := s.backend.GetLeaderboard(r.Context(), metric, limit)
	writeJSON(w, http.StatusOK, map[string]any{"metric": metric, "leaderboard": entries})
}

type studyRequest struct {
	StudentID   string   `json:"student_id"`
	Grade       string   `json:"grade"`
	Board       string   `json:"board"`
	Subject     string   `json:"subject"`
	FocusTopics []string `json:"focus_topics,omitempty"`
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req studyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	roadmap, err := s.backend.GenerateRoadmap(r.Context(), req.StudentID, req.Grade, req.Board, req.Subject)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"roadmap": roadmap})
}

func (s *Server) handleRevision(w http.ResponseWriter, r *http.Request) {
	var req studyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	summary, err := s.backend.RevisionSummary(r.Context(), req.StudentID, req.Grade, req.Board, req.Subject, req.FocusTopics)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

type videoRequest struct {
	StudentID string `json:"student_id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
}

func (s *Server) handleStartVideo(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.StudentID == "" {
		writeError(w, http.StatusBadRequest, errMissingStudent)
		return
	}
	if err := s.backend.StartVideoSession(r.Context(), req.StudentID, req.URL, req.Title); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "watching"})
}

func (s *Server) handleCompleteVideo(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := s.backend.CompleteVideoSession(r.Context(), req.StudentID)
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAttention(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"level":  s.backend.AttentionLevel(),
		"report": s.backend.AttentionReport(),
	})
}
