package http

import (
	stdhttp "net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peerlink/relay/internal/store"
)

// allowedUploads maps permitted file extensions to the MIME types each may
// declare. Extension and MIME must both pass, and must agree.
var allowedUploads = map[string][]string{
	".jpeg": {"image/jpeg", "image/jpg"},
	".jpg":  {"image/jpeg", "image/jpg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
	".webp": {"image/webp"},
	".mp4":  {"video/mp4"},
	".webm": {"video/webm"},
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	".txt":  {"text/plain"},
}

// UploadHandlers stores uploaded blobs on disk and records their metadata.
// The chat core never sees the bytes; clients attach the returned descriptor
// to messages as the opaque media field.
type UploadHandlers struct {
	store    store.Store
	dir      string
	maxBytes int64
	log      *zerolog.Logger
}

// NewUploadHandlers builds the upload endpoint handler.
func NewUploadHandlers(st store.Store, dir string, maxBytes int64, logger *zerolog.Logger) *UploadHandlers {
	return &UploadHandlers{store: st, dir: dir, maxBytes: maxBytes, log: logger}
}

// UploadResponse is the descriptor returned for a stored blob.
type UploadResponse struct {
	Success  bool   `json:"success"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// Upload accepts one multipart file, enforces the size limit and type
// allow-list, stores it under a unique name, and records the metadata.
func (h *UploadHandlers) Upload(c *gin.Context) {
	c.Request.Body = stdhttp.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "no file uploaded"})
		return
	}
	if file.Size > h.maxBytes {
		c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "file too large"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mime := file.Header.Get("Content-Type")
	if !uploadAllowed(ext, mime) {
		c.JSON(stdhttp.StatusBadRequest, ErrorResponse{
			Error: "invalid file type: only images, videos, PDFs, and documents are allowed",
		})
		return
	}

	storedName := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, storedName)); err != nil {
		h.log.Error().Err(err).Str("name", file.Filename).Msg("save upload")
		c.JSON(stdhttp.StatusInternalServerError, ErrorResponse{Error: "failed to store file"})
		return
	}

	kind := uploadKind(mime)
	if _, err := h.store.RecordUpload(c.Request.Context(), &store.Upload{
		Name:       file.Filename,
		StoredName: storedName,
		Kind:       kind,
		MIME:       mime,
		Size:       file.Size,
	}); err != nil {
		h.log.Error().Err(err).Str("name", file.Filename).Msg("record upload")
		c.JSON(stdhttp.StatusInternalServerError, ErrorResponse{Error: "failed to record file"})
		return
	}

	c.JSON(stdhttp.StatusOK, UploadResponse{
		Success:  true,
		FileURL:  "/uploads/" + storedName,
		FileName: file.Filename,
		FileType: kind,
		FileSize: file.Size,
	})
}

func uploadAllowed(ext, mime string) bool {
	mimes, ok := allowedUploads[ext]
	if !ok {
		return false
	}
	for _, m := range mimes {
		if m == mime {
			return true
		}
	}
	return false
}

func uploadKind(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return "image"
	case strings.HasPrefix(mime, "video/"):
		return "video"
	default:
		return "file"
	}
}
