package resumes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"resume-editor/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the store.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/save-resume", h.save)
	rg.GET("/resumes", h.list)
	rg.GET("/resume/:resume_id", h.get)
}

func (h *Handler) save(c *gin.Context) {
	var req saveResumeRequest
	if err := decodeSaveRequest(c.Request, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid resume payload: "+err.Error())
		return
	}

	rec, err := h.Store.Save(c.Request.Context(), req.toRecord())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Save failed: "+err.Error())
		return
	}
	c.Set("resumeId", rec.ID)

	respond.OK(c, saveResumeResponse{
		Message:  "Resume saved successfully",
		ResumeID: rec.ID,
		SavedAt:  rec.SavedAt,
	})
}

func (h *Handler) list(c *gin.Context) {
	summaries, err := h.Store.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list resumes: "+err.Error())
		return
	}
	respond.OK(c, listResumesResponse{Resumes: summaries})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("resume_id")
	c.Set("resumeId", id)

	rec, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to retrieve resume: "+err.Error())
		}
		return
	}
	respond.OK(c, rec)
}

// decodeSaveRequest keeps numbers in the open resume fields as json.Number so
// large integers round-trip exactly.
func decodeSaveRequest(r *http.Request, req *saveResumeRequest) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(req); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(req)
}
