package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-booster/internal/identity"
	"resume-booster/internal/shared/server/respond"
	"resume-booster/internal/shared/util"
)

const maxUploadSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/upload", h.upload)
	rg.GET("/resumes/:resumeId/suggestions", h.suggestions)
	rg.GET("/resumes/user/:userId", h.listByUser)
}

func (h *Handler) upload(c *gin.Context) {
	caller, ok := identity.FromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "file is required")
		return
	}

	// The client filename is never used as a storage key, but names with
	// traversal sequences are rejected up front anyway. This is a 400 beyond
	// the content-type check.
	if _, err := util.SanitizeFileName(fileHeader.Filename); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid file name")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}

	resume, err := h.Svc.Upload(c.Request.Context(), caller, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "failed to upload resume")
		}
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusCreated, resume)
}

func (h *Handler) suggestions(c *gin.Context) {
	caller, ok := identity.FromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}

	resumeID := c.Param("resumeId")
	c.Set("resumeId", resumeID)

	resp, err := h.Svc.Suggestions(c.Request.Context(), caller, resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "suggestions not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "failed to fetch suggestions")
		}
		return
	}

	respond.OK(c, resp)
}

func (h *Handler) listByUser(c *gin.Context) {
	caller, ok := identity.FromContext(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}

	out, err := h.Svc.ListByUser(c.Request.Context(), caller, c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "cannot access another user's resumes")
		default:
			respond.Error(c, http.StatusInternalServerError, "failed to list resumes")
		}
		return
	}

	respond.OK(c, out)
}
