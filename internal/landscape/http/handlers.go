package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
	"github.com/archlens/landscape-backend/internal/landscape/service"
)

// Handler exposes the landscape operations over HTTP.
type Handler struct {
	svc *service.LandscapeService
}

// New creates a handler over the landscape service.
func New(svc *service.LandscapeService) *Handler {
	return &Handler{svc: svc}
}

// SystemDiagram returns the dependency diagram of one system.
func (h *Handler) SystemDiagram(c *gin.Context) {
	d, err := h.svc.DiagramForSystem(requestContext(c), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Paths returns every simple integration path between two systems.
func (h *Handler) Paths(c *gin.Context) {
	var q PathQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}
	d, err := h.svc.PathsBetween(requestContext(c), q.Start, q.End)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// LandscapeDiagram returns the whole-landscape view.
func (h *Handler) LandscapeDiagram(c *gin.Context) {
	d, err := h.svc.LandscapeDiagram(requestContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// CapabilityTree returns the global capability classification tree.
func (h *Handler) CapabilityTree(c *gin.Context) {
	t, err := h.svc.CapabilityTree(requestContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// SystemCapabilityTree returns the capability tree scoped to one system.
func (h *Handler) SystemCapabilityTree(c *gin.Context) {
	t, err := h.svc.CapabilityTreeForSystem(requestContext(c), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Metrics returns the operation counters.
func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, service.GetMetrics())
}

// respondError maps domain error types onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		integrityErr  *domain.DataIntegrityError
		upstreamErr   *domain.UpstreamError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &integrityErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": integrityErr.Error()})
	case errors.As(err, &upstreamErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": upstreamErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
