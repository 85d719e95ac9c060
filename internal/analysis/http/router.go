package http

import "github.com/gin-gonic/gin"

// Register registers the console routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/form", h.GetForm)
	rg.POST("/form/files", h.SelectFiles)
	rg.PUT("/form/mode", h.SetMode)
	rg.PUT("/form/persona", h.UpdatePersona)
	rg.POST("/form/submit", h.Submit)
	rg.GET("/metrics", h.Metrics)
}
