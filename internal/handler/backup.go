package handler

import (
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/mverdier/foyer/internal/backup"
)

type BackupHandler struct {
	manager *backup.Manager
	logger  *slog.Logger
}

func NewBackupHandler(mgr *backup.Manager, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{manager: mgr, logger: logger}
}

func (h *BackupHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.Status())
}

func (h *BackupHandler) Run(w http.ResponseWriter, r *http.Request) {
	key, err := h.manager.RunNow(r.Context())
	if err != nil {
		h.logger.Error("manual backup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key})
}

func (h *BackupHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.manager.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Restore replaces the live database with the named backup. On success the
// process exits so it restarts on the restored state, so no response is
// ever written for the happy path.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key string `json:"key"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	if req.Key == "" {
		badRequest(w, "key is required")
		return
	}

	if err := h.manager.Restore(r.Context(), req.Key); err != nil {
		h.logger.Error("restore failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (h *BackupHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		badRequest(w, "key query parameter is required")
		return
	}

	body, err := h.manager.Download(r.Context(), key)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "NoSuchKey") {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+path.Base(key)+`"`)
	io.Copy(w, body)
}
