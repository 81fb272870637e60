package web

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const maxPhotoSize = 50 * 1024 * 1024 // 50 MB

// allowedImageTypes is the set of MIME types accepted for uploaded photos.
// net/http.DetectContentType handles JPEG, PNG, and GIF via magic-byte
// sniffing. WebP is detected separately because the WHATWG sniff spec (and
// therefore the stdlib) does not include a WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedImageMIME returns the detected MIME type and true if the data is an
// accepted image format, or ("", false) otherwise.
func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

type photoResponse struct {
	PhotoID    int64     `json:"photo_id"`
	ImageURL   string    `json:"image_url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// handleUploadPhoto stores the image in the blob store and attaches the
// resulting public URL as evidence for the (motor, step) pair. The two
// writes are not atomic: a blob with no evidence row can remain if the
// attach fails, which is harmless.
func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	motorID := chi.URLParam(r, "motorID")
	stepID, err := strconv.ParseInt(chi.URLParam(r, "stepID"), 10, 64)
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid step id"})
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "failed to parse form"})
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "image file required"})
		return
	}
	defer closeWithLog(file, "upload file", s.logger)

	imageData, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("read upload failed", "motor_id", motorID, "error", err)
		s.respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "failed to read file"})
		return
	}

	mimeType, ok := allowedImageMIME(imageData)
	if !ok {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "unsupported image format"})
		return
	}

	prefix := fmt.Sprintf("motor_%s/step_%d", motorID, stepID)
	publicURL, err := s.photoStore.Save(r.Context(), prefix, mimeType, bytes.NewReader(imageData))
	if err != nil {
		s.logger.Error("photo save failed", "motor_id", motorID, "step_id", stepID, "error", err)
		s.respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "failed to store photo"})
		return
	}

	photo, err := s.maintenance.AttachPhoto(r.Context(), motorID, stepID, publicURL)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, photoResponse{
		PhotoID:    photo.ID,
		ImageURL:   photo.ImageURL,
		UploadedAt: photo.UploadedAt,
	})
}

func (s *Server) handleGetPhoto(w http.ResponseWriter, r *http.Request) {
	storageKey := chi.URLParam(r, "*")
	if storageKey == "" {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "photo key required"})
		return
	}

	reader, mimeType, err := s.photoStore.Get(r.Context(), storageKey)
	if err != nil {
		s.respondJSON(w, http.StatusNotFound, errorResponse{Message: "photo not found"})
		return
	}
	defer closeWithLog(reader, "photo reader", s.logger)

	w.Header().Set("Content-Type", mimeType)
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("failed to write photo", "key", storageKey, "error", err)
	}
}

func closeWithLog(c io.Closer, what string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close "+what, "error", err)
	}
}
