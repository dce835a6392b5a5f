package extract

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/shared/server/respond"
)

// DefaultMaxUploadBytes caps upload size when none is configured.
const DefaultMaxUploadBytes int64 = 10 << 20

type parseResumeResponse struct {
	Text string `json:"text"`
}

// Handler serves PDF text extraction.
type Handler struct {
	Extractor      *Extractor
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(extractor *Extractor, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{Extractor: extractor, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches the parse route to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/parse-resume", h.parse)
}

func (h *Handler) parse(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "Uploaded file is too large.")
			return
		}
		respond.Error(c, http.StatusBadRequest, "A PDF file is required in the 'file' field.")
		return
	}

	if err := ValidateFileName(fileHeader.Filename); err != nil {
		respond.Error(c, http.StatusBadRequest, "Only PDF files are supported.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to parse PDF: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to parse PDF: "+err.Error())
		return
	}

	text, err := h.Extractor.PDFText(c.Request.Context(), data)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to parse PDF: "+err.Error())
		return
	}

	respond.OK(c, parseResumeResponse{Text: text})
}
