package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/i2bric/TaskHero/internal/engine"
	"github.com/i2bric/TaskHero/internal/storage"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// writeEngineErr maps engine error types onto HTTP statuses.
func (s *Server) writeEngineErr(w http.ResponseWriter, err error) {
	var notFound engine.NotFoundError
	var invalid engine.ValidationError
	switch {
	case errors.As(err, &notFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.As(err, &invalid):
		writeErr(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Printf("internal error: %v", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

type taskJSON struct {
	ID             int64     `json:"id"`
	Text           string    `json:"text"`
	Difficulty     string    `json:"difficulty"`
	Deadline       time.Time `json:"deadline"`
	CreatedAt      time.Time `json:"createdAt"`
	NotificationID *string   `json:"notificationId,omitempty"`
}

func toTaskJSON(t storage.Task) taskJSON {
	return taskJSON{
		ID:             t.ID,
		Text:           t.Text,
		Difficulty:     t.Difficulty,
		Deadline:       t.Deadline,
		CreatedAt:      t.CreatedAt,
		NotificationID: t.NotificationID,
	}
}

type taskRequest struct {
	Text           string    `json:"text"`
	Difficulty     string    `json:"difficulty"`
	Deadline       time.Time `json:"deadline"`
	NotificationID *string   `json:"notificationId,omitempty"`
}

func (req taskRequest) toInput() engine.TaskInput {
	return engine.TaskInput{
		Text:           req.Text,
		Difficulty:     engine.Difficulty(req.Difficulty),
		Deadline:       req.Deadline,
		NotificationID: req.NotificationID,
	}
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.svc.Tasks(r.Context())
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	out := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskJSON(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	t, err := s.svc.CreateTask(r.Context(), req.toInput())
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskJSON(*t))
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	oldNotifID, err := s.svc.UpdateTask(r.Context(), id, req.toInput())
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"oldNotificationId": oldNotifID})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	notifID, err := s.svc.DeleteTask(r.Context(), id)
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notificationId": notifID})
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	res, err := s.svc.CompleteTask(r.Context(), id)
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleOverdueCount(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.OverdueCount(r.Context())
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"overdueCount": n})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Profile(r.Context())
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleResetProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ResetProfile(r.Context()); err != nil {
		s.writeEngineErr(w, err)
		return
	}
	p, err := s.svc.Profile(r.Context())
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type historyJSON struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	Difficulty  string    `json:"difficulty"`
	ExpEarned   int       `json:"expEarned"`
	Deadline    time.Time `json:"deadline"`
	CompletedAt time.Time `json:"completedAt"`
	WasOverdue  bool      `json:"wasOverdue"`
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.History(r.Context())
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	out := make([]historyJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyJSON{
			ID:          e.ID,
			Text:        e.TaskText,
			Difficulty:  e.Difficulty,
			ExpEarned:   e.ExpEarned,
			Deadline:    e.Deadline,
			CompletedAt: e.CompletedAt,
			WasOverdue:  e.WasOverdue,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHistoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.HistoryStats(r.Context())
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleResetAll(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.ResetAll(r.Context())
	if err != nil {
		s.writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
