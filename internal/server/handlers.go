package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/kopigraph/kopigraph/internal/rag"
)

// queryRequest is the body of POST /query.
type queryRequest struct {
	Question string `json:"question"`
}

// queryResponse wraps a rag.Result with a request timestamp.
type queryResponse struct {
	rag.Result
	Timestamp string `json:"timestamp"`
}

// historyEntry is the JSON shape of one history record.
type historyEntry struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
	Success   bool   `json:"success"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// ServeMux routes every unmatched GET here; only the root is real.
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"service":          "coffee knowledge graph",
		"sample_questions": rag.SampleQuestions(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		s.writeError(w, http.StatusBadRequest, "please provide a question")
		return
	}

	result := s.engine.Query(r.Context(), question)

	s.writeJSON(w, http.StatusOK, queryResponse{
		Result:    result,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries := []historyEntry{}

	if s.history != nil {
		stored, err := s.history.ListHistory(r.Context(), 0)
		if err != nil {
			s.logger.Error("Failed to list history", "error", err)
			s.writeError(w, http.StatusInternalServerError, "failed to load history")
			return
		}
		for _, e := range stored {
			entries = append(entries, historyEntry{
				Question:  e.Question,
				Answer:    e.Answer,
				Success:   e.Success,
				Timestamp: e.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"history": entries})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if s.history != nil {
		if err := s.history.ClearHistory(r.Context()); err != nil {
			s.logger.Error("Failed to clear history", "error", err)
			s.writeError(w, http.StatusInternalServerError, "failed to clear history")
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
