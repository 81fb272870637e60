package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oguzatay/motorcheck/internal/domain"
)

type stepStatusResponse struct {
	ID            int64      `json:"id"`
	Order         int        `json:"order"`
	Name          string     `json:"name"`
	IsMandatory   bool       `json:"is_mandatory"`
	RequiresPhoto bool       `json:"requires_photo"`
	State         string     `json:"state"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Photos        []string   `json:"photos"`
}

type motorProgressResponse struct {
	MotorID      string               `json:"motor_id"`
	MotorName    string               `json:"motor_name"`
	ShipName     string               `json:"ship_name"`
	PowerKW      float64              `json:"kw"`
	RPM          int                  `json:"rpm"`
	Notes        string               `json:"notes,omitempty"`
	CurrentIndex int                  `json:"current_index"`
	Done         bool                 `json:"done"`
	Steps        []stepStatusResponse `json:"steps"`
}

func (s *Server) handleGetMotor(w http.ResponseWriter, r *http.Request) {
	motorID := chi.URLParam(r, "motorID")

	progress, err := s.maintenance.GetMotorProgress(r.Context(), motorID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, toProgressResponse(progress))
}

func toProgressResponse(p *domain.MotorProgress) motorProgressResponse {
	steps := make([]stepStatusResponse, 0, len(p.Steps))
	for _, st := range p.Steps {
		resp := stepStatusResponse{
			ID:            st.Step.ID,
			Order:         st.Step.Order,
			Name:          st.Step.Name,
			IsMandatory:   st.Step.IsMandatory,
			RequiresPhoto: st.Step.RequiresPhoto,
			State:         st.State.String(),
			Photos:        make([]string, 0, len(st.Photos)),
		}
		if st.Completion != nil {
			resp.CompletedAt = st.Completion.CompletedAt
		}
		for _, photo := range st.Photos {
			resp.Photos = append(resp.Photos, photo.ImageURL)
		}
		steps = append(steps, resp)
	}

	return motorProgressResponse{
		MotorID:      p.Motor.ID,
		MotorName:    p.Motor.Name,
		ShipName:     p.Motor.ShipName,
		PowerKW:      p.Motor.PowerKW,
		RPM:          p.Motor.RPM,
		Notes:        p.Motor.Notes,
		CurrentIndex: p.CurrentIndex,
		Done:         p.Done(),
		Steps:        steps,
	}
}
