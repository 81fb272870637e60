package web

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	TechnicianID string `json:"technician_id"`
	Name         string `json:"name"`
	Token        string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "phone and password are required"})
		return
	}

	tech, token, err := s.auth.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, loginResponse{
		TechnicianID: tech.ID,
		Name:         tech.Name,
		Token:        token,
	})
}
