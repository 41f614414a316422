package devserver

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"qrstudio/internal/client/models"
)

// maxUploadBytes caps accepted files at 10 MiB, matching the hosted service.
const maxUploadBytes = 10 << 20

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "a file form field is required")
		return
	}
	defer file.Close()

	// keep the original extension so served files get a sensible MIME type
	name := uuid.NewString()
	if ext := filepath.Ext(header.Filename); ext != "" {
		name += strings.ToLower(ext)
	}

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not store the file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not store the file")
		return
	}

	s.log.Info(r.Context(), "file stored", "name", name, "original", header.Filename)

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	writeJSON(w, http.StatusOK, models.UploadResponse{
		URL: scheme + "://" + r.Host + "/uploads/" + name,
	})
}

func (s *Server) handleServeUpload(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name != filepath.Base(name) {
		writeDetail(w, http.StatusBadRequest, "invalid file name")
		return
	}
	http.ServeFile(w, r, filepath.Join(s.uploadDir, name))
}
