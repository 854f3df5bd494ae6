package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/session"
)

// sessionView is the full in-progress state returned to the UI after every
// session read or mutation.
type sessionView struct {
	Session       *session.ActiveSession `json:"session"`
	RestTimer     session.RestTimer      `json:"restTimer"`
	TotalVolume   float64                `json:"totalVolume"`
	CompletedSets int                    `json:"completedSets"`
	ElapsedSec    int                    `json:"elapsedSeconds"`
}

func (s *Server) sessionView() sessionView {
	return sessionView{
		Session:       s.manager.Active(),
		RestTimer:     s.manager.RestState(),
		TotalVolume:   s.manager.TotalVolume(),
		CompletedSets: s.manager.CompletedSetCount(),
		ElapsedSec:    s.manager.ElapsedSeconds(),
	}
}

func (s *Server) writeSession(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, s.sessionView())
}

// decodeBody decodes an optional JSON body; an absent body leaves v at its
// zero value so bare POSTs hit the documented defaults.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name       string `json:"name"`
		TemplateID string `json:"templateId"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	var tpl models.Template
	seedTemplate := false
	if body.TemplateID != "" {
		var ok bool
		tpl, ok = catalog.TemplateByID(body.TemplateID)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
			return
		}
		seedTemplate = true
		if body.Name == "" {
			body.Name = tpl.Name
		}
	}

	id := s.manager.StartSession(body.Name, body.TemplateID)
	if seedTemplate {
		ctx := r.Context()
		s.manager.ApplyTemplate(tpl, func(exerciseID string) (models.Exercise, bool) {
			ex, err := s.db.ExerciseByID(ctx, exerciseID)
			if err != nil {
				return models.Exercise{}, false
			}
			return *ex, true
		})
	}

	s.log.Info("session started", "session_id", id, "template_id", body.TemplateID)
	s.writeSession(w)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s.writeSession(w)
}

// handleFinishSession commits the active session. The UX guards live here:
// an empty session or one with no completed sets is rejected before any
// write. The session is detached for the commit and handed back via
// Restore on failure, so the user can retry the finish.
func (s *Server) handleFinishSession(w http.ResponseWriter, r *http.Request) {
	if !s.manager.HasActive() {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no active session"})
		return
	}
	if len(s.manager.Active().Exercises) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "add at least one exercise to finish"})
		return
	}
	if s.manager.CompletedSetCount() == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "complete at least one set to finish"})
		return
	}

	elapsed := s.manager.ElapsedSeconds()
	detached := s.manager.EndSession()
	workoutID, err := s.committer.Commit(r.Context(), detached, elapsed)
	if err != nil {
		s.manager.Restore(detached)
		s.log.Error("commit failed", "session_id", detached.ID, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":     "failed to save workout: " + err.Error(),
			"retryable": "true",
		})
		return
	}

	s.notify.WorkoutFinished()

	writeJSON(w, http.StatusOK, map[string]any{
		"workoutId":       workoutID,
		"durationSeconds": elapsed,
	})
}

func (s *Server) handleCancelSession(w http.ResponseWriter, r *http.Request) {
	s.manager.CancelSession()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ExerciseID string `json:"exerciseId"`
		SetCount   int    `json:"setCount"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	ex, err := s.db.ExerciseByID(r.Context(), body.ExerciseID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}

	s.manager.AddExercise(*ex, body.SetCount)
	s.writeSession(w)
}

func (s *Server) handleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	s.manager.RemoveExercise(chi.URLParam(r, "id"))
	s.writeSession(w)
}

func (s *Server) handleReorderExercises(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FromIndex int `json:"fromIndex"`
		ToIndex   int `json:"toIndex"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.manager.ReorderExercises(body.FromIndex, body.ToIndex)
	s.writeSession(w)
}

func (s *Server) handleExerciseNotes(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.manager.SetExerciseNotes(chi.URLParam(r, "id"), body.Notes)
	s.writeSession(w)
}

func (s *Server) handleAddSet(w http.ResponseWriter, r *http.Request) {
	body := struct {
		CopyPrevious *bool `json:"copyPrevious"`
	}{}
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	copyPrevious := body.CopyPrevious == nil || *body.CopyPrevious
	s.manager.AddSet(chi.URLParam(r, "id"), copyPrevious)
	s.writeSession(w)
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	var upd session.SetUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.manager.UpdateSet(chi.URLParam(r, "id"), chi.URLParam(r, "setID"), upd)
	s.writeSession(w)
}

func (s *Server) handleRemoveSet(w http.ResponseWriter, r *http.Request) {
	s.manager.RemoveSet(chi.URLParam(r, "id"), chi.URLParam(r, "setID"))
	s.writeSession(w)
}

func (s *Server) handleCompleteSet(w http.ResponseWriter, r *http.Request) {
	s.manager.CompleteSet(chi.URLParam(r, "id"), chi.URLParam(r, "setID"))
	s.writeSession(w)
}

func (s *Server) handleSetSuperset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ExerciseA string `json:"exerciseA"`
		ExerciseB string `json:"exerciseB"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.manager.SetSuperset(body.ExerciseA, body.ExerciseB)
	s.writeSession(w)
}

func (s *Server) handleRemoveSuperset(w http.ResponseWriter, r *http.Request) {
	s.manager.RemoveSuperset(chi.URLParam(r, "id"))
	s.writeSession(w)
}

func (s *Server) handleRestState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.manager.RestState())
}

func (s *Server) handleStartRest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Seconds    int    `json:"seconds"`
		ExerciseID string `json:"exerciseId"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.manager.StartRest(body.Seconds, body.ExerciseID)
	writeJSON(w, http.StatusOK, s.manager.RestState())
}

func (s *Server) handleAdjustRest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DeltaSeconds int `json:"deltaSeconds"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.manager.AdjustRest(body.DeltaSeconds)
	writeJSON(w, http.StatusOK, s.manager.RestState())
}

func (s *Server) handlePauseRest(w http.ResponseWriter, r *http.Request) {
	s.manager.PauseRest()
	writeJSON(w, http.StatusOK, s.manager.RestState())
}

func (s *Server) handleResetRest(w http.ResponseWriter, r *http.Request) {
	s.manager.ResetRest()
	writeJSON(w, http.StatusOK, s.manager.RestState())
}

func (s *Server) handleSkipRest(w http.ResponseWriter, r *http.Request) {
	s.manager.SkipRest()
	writeJSON(w, http.StatusOK, s.manager.RestState())
}
