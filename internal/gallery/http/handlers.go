package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bau-builds/gallery-api/internal/gallery/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

// create accepts a multipart form: title (required), description
// (optional), and zero or more files under the repeated "images" field.
// File order in the form is the display order.
func (h *Handler) create(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "title required"})
		return
	}

	var description *string
	if d := strings.TrimSpace(c.PostForm("description")); d != "" {
		description = &d
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart form"})
		return
	}

	var files []domain.UploadFile
	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable upload: " + fh.Filename})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable upload: " + fh.Filename})
			return
		}
		files = append(files, domain.UploadFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	id, err := h.svc.CreateProject(c.Request.Context(), title, description, files)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project_id": id})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.DeleteProject(c.Request.Context(), id); err != nil {
		c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPermission):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
