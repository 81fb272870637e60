package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type reportStepResponse struct {
	Order          int       `json:"order"`
	Name           string    `json:"name"`
	CompletedAt    time.Time `json:"completed_at"`
	TechnicianName string    `json:"technician_name"`
	Photos         []string  `json:"photos"`
}

type reportResponse struct {
	MotorID     string               `json:"motor_id"`
	MotorName   string               `json:"motor_name"`
	ShipName    string               `json:"ship_name"`
	PowerKW     float64              `json:"kw"`
	RPM         int                  `json:"rpm"`
	Notes       string               `json:"notes,omitempty"`
	GeneratedAt time.Time            `json:"generated_at"`
	Steps       []reportStepResponse `json:"steps"`
}

// handleGetReport returns the report content model as JSON; a downstream
// renderer turns it into a printable document.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	motorID := chi.URLParam(r, "motorID")

	report, err := s.maintenance.BuildReport(r.Context(), motorID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	steps := make([]reportStepResponse, 0, len(report.Steps))
	for _, step := range report.Steps {
		steps = append(steps, reportStepResponse{
			Order:          step.StepOrder,
			Name:           step.StepName,
			CompletedAt:    step.CompletedAt,
			TechnicianName: step.TechnicianName,
			Photos:         step.PhotoURLs,
		})
	}

	s.respondJSON(w, http.StatusOK, reportResponse{
		MotorID:     report.MotorID,
		MotorName:   report.MotorName,
		ShipName:    report.ShipName,
		PowerKW:     report.PowerKW,
		RPM:         report.RPM,
		Notes:       report.Notes,
		GeneratedAt: report.GeneratedAt,
		Steps:       steps,
	})
}
