package handlers

import (
	"net/http"

	"github.com/ArowuTest/engage-crm/internal/middleware"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignHandler handles campaign HTTP requests
type CampaignHandler struct {
	campaignService services.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// ListCampaigns handles GET /campaigns
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.ListCampaigns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// DispatchCampaign handles POST /campaigns. Delivery runs synchronously and
// the response carries the final counters.
func (h *CampaignHandler) DispatchCampaign(c *gin.Context) {
	var req models.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	segmentID, err := primitive.ObjectIDFromHex(req.SegmentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid segment ID format"})
		return
	}

	campaign, err := h.campaignService.Dispatch(c.Request.Context(), req.Name, segmentID, req.Message, c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// GetCampaign handles GET /campaigns/:id
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaign": campaign, "successRate": campaign.SuccessRate()})
}

// CampaignLogs handles GET /campaigns/:id/logs
func (h *CampaignHandler) CampaignLogs(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	logs, err := h.campaignService.CampaignLogs(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
