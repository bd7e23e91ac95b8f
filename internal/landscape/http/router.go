package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/diagram", h.LandscapeDiagram)
	rg.GET("/systems/:code/diagram", h.SystemDiagram)
	rg.GET("/paths", h.Paths)

	rg.GET("/capabilities/tree", h.CapabilityTree)
	rg.GET("/systems/:code/capabilities/tree", h.SystemCapabilityTree)

	rg.GET("/metrics", h.Metrics)
}
