package upload

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/Availableperson/nexa/internal/domain"
	"github.com/Availableperson/nexa/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type FileSaver interface {
	SaveFile(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Handler struct {
	logger *slog.Logger
	Files  FileSaver
}

func NewHandler(logger *slog.Logger, files FileSaver) *Handler {
	return &Handler{
		logger: logger,
		Files:  files,
	}
}

// Upload stores the first file part of a multipart request. Parts are
// streamed straight to the saver, never buffered whole.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	mr, err := r.MultipartReader()
	if err != nil {
		l.Warn("not a multipart request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, domain.ErrorResponse{Status: "error", Message: "ожидается multipart/form-data"})
		return
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.Error("multipart read failed", slog.Any("error", err))
			h.writeJSON(w, http.StatusInternalServerError, domain.ErrorResponse{Status: "error", Message: "не удалось прочитать файл"})
			return
		}
		if part.FileName() == "" {
			_ = part.Close()
			continue
		}

		name, err := h.Files.SaveFile(r.Context(), part.FileName(), part)
		_ = part.Close()
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		l.Info("upload stored", slog.String("filename", name))
		h.writeJSON(w, http.StatusOK, domain.UploadAccepted{
			Status:   "ok",
			Message:  "файл сохранён",
			Filename: name,
		})
		return
	}

	h.handleError(w, r, e.ErrNoFilePart)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	if errors.Is(err, e.ErrInvalidInput) {
		l.Warn("upload rejected", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, domain.ErrorResponse{Status: "error", Message: err.Error()})
		return
	}

	l.Error("upload failed", slog.Any("error", err))
	h.writeJSON(w, http.StatusInternalServerError, domain.ErrorResponse{Status: "error", Message: "не удалось сохранить файл"})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
