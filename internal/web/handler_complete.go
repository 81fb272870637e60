package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type completionResponse struct {
	MotorID     string     `json:"motor_id"`
	StepID      int64      `json:"step_id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (s *Server) handleCompleteStep(w http.ResponseWriter, r *http.Request) {
	motorID := chi.URLParam(r, "motorID")
	stepID, err := strconv.ParseInt(chi.URLParam(r, "stepID"), 10, 64)
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid step id"})
		return
	}

	record, err := s.maintenance.CompleteStep(r.Context(), motorID, stepID, technicianID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, completionResponse{
		MotorID:     record.MotorID,
		StepID:      record.StepID,
		Completed:   record.Completed,
		CompletedAt: record.CompletedAt,
	})
}
