package http

import "github.com/gin-gonic/gin"

// Register attaches gallery routes to the given group. The read is public;
// the mutating routes run behind the supplied gate middlewares (admin
// access code, rate limit).
func (h *Handler) Register(rg *gin.RouterGroup, gate ...gin.HandlerFunc) {
	rg.GET("", h.list)

	admin := rg.Group("", gate...)
	admin.POST("", h.create)
	admin.DELETE("/:id", h.delete)
}
