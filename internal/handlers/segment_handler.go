package handlers

import (
	"net/http"

	"github.com/ArowuTest/engage-crm/internal/middleware"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/segment"
	"github.com/ArowuTest/engage-crm/internal/services"
	"github.com/gin-gonic/gin"
)

// SegmentHandler handles segment HTTP requests
type SegmentHandler struct {
	segmentService services.SegmentService
}

// NewSegmentHandler creates a new SegmentHandler
func NewSegmentHandler(segmentService services.SegmentService) *SegmentHandler {
	return &SegmentHandler{segmentService: segmentService}
}

// ListSegments handles GET /segments
func (h *SegmentHandler) ListSegments(c *gin.Context) {
	segments, err := h.segmentService.ListSegments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, segments)
}

// RuleOptions handles GET /segments/fields for the rule builder
func (h *SegmentHandler) RuleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": segment.Fields(), "operators": segment.Operators()})
}

// CreateSegment handles POST /segments
func (h *SegmentHandler) CreateSegment(c *gin.Context) {
	var req models.CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seg, err := h.segmentService.CreateSegment(c.Request.Context(), req.Name, req.Rules, c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, seg)
}

// GetSegment handles GET /segments/:id
func (h *SegmentHandler) GetSegment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	seg, err := h.segmentService.GetSegment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, seg)
}

// SegmentCustomers handles GET /segments/:id/customers
func (h *SegmentHandler) SegmentCustomers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customers, err := h.segmentService.SegmentMembers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}

// PreviewSegment handles POST /segments/preview
func (h *SegmentHandler) PreviewSegment(c *gin.Context) {
	var req models.PreviewSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customers, err := h.segmentService.PreviewSegment(c.Request.Context(), req.Rules)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}
