package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bau-builds/gallery-api/internal/admin/middleware"
)

// Handler serves the admin login check. The frontend stores the verified
// code client-side and sends it back on every mutating request; login just
// tells it whether the code is worth keeping.
type Handler struct {
	verifier middleware.Verifier
}

func New(verifier middleware.Verifier) *Handler {
	return &Handler{verifier: verifier}
}

type loginReq struct {
	Code string `json:"code"`
}

func (h *Handler) login(c *gin.Context) {
	if h.verifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage backend is not configured"})
		return
	}

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ok, err := h.verifier.VerifyCode(c.Request.Context(), strings.TrimSpace(req.Code))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid access code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Register attaches admin routes to the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
}
