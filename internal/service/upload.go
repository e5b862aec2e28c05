package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/Availableperson/nexa/pkg/e"

	"github.com/google/uuid"
)

type uploadService struct {
	logger *slog.Logger
	dir    string
}

func NewUploadService(logger *slog.Logger, dir string) UploadService {
	return &uploadService{
		logger: logger,
		dir:    dir,
	}
}

// SaveFile streams r to disk under a sanitized version of filename.
// Collisions are last-writer-wins: the contract promises no uniqueness.
func (s *uploadService) SaveFile(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		name = "upload-" + uuid.NewString()
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", e.Wrap("create upload dir", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", e.Wrap("create file", err)
	}

	written, copyErr := io.Copy(dst, r)
	closeErr := dst.Close()
	if copyErr != nil {
		return "", e.Wrap("write file", copyErr)
	}
	if closeErr != nil {
		return "", e.Wrap("close file", closeErr)
	}

	s.logger.Info("file stored",
		slog.String("filename", name),
		slog.Int64("bytes", written),
	)
	return name, nil
}

// SanitizeFilename strips any path components from a client-supplied name.
// Returns "" when nothing safe remains.
func SanitizeFilename(raw string) string {
	raw = strings.ReplaceAll(raw, "\\", "/")
	name := strings.TrimSpace(filepath.Base(raw))
	switch name {
	case "", ".", "..", "/":
		return ""
	}
	return name
}
