package web

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const technicianIDKey contextKey = "technicianID"

// requireTechnician validates the bearer token and stores the authenticated
// technician id on the request context. The engine never infers identity
// from ambient state; handlers read it from here and pass it explicitly.
func (s *Server) requireTechnician(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.respondJSON(w, http.StatusUnauthorized, errorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := s.tokens.Validate(token)
		if err != nil {
			s.respondJSON(w, http.StatusUnauthorized, errorResponse{Message: "invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), technicianIDKey, claims.TechnicianID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// technicianID returns the authenticated technician id set by requireTechnician.
func technicianID(r *http.Request) string {
	id, _ := r.Context().Value(technicianIDKey).(string)
	return id
}
