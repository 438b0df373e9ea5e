package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/delivery"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type campaignService struct {
	campaignRepo repositories.CampaignRepository
	segmentRepo  repositories.SegmentRepository
	segments     SegmentService
	policy       delivery.Policy
	now          func() time.Time
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(
	campaignRepo repositories.CampaignRepository,
	segmentRepo repositories.SegmentRepository,
	segments SegmentService,
	policy delivery.Policy,
) CampaignService {
	return &campaignService{
		campaignRepo: campaignRepo,
		segmentRepo:  segmentRepo,
		segments:     segments,
		policy:       policy,
		now:          time.Now,
	}
}

// Dispatch sends message to every customer currently in the segment and
// records the outcome.
//
// Steps: resolve the segment, evaluate its members live, ask the delivery
// policy once per member in store order, then persist the campaign together
// with one log per member. A policy error or panic marks only that member
// FAILED. Outcomes are never retried. The campaign and its logs are stored
// atomically, so a failed dispatch leaves nothing behind.
func (s *campaignService) Dispatch(ctx context.Context, name string, segmentID primitive.ObjectID, message, createdBy string) (*models.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("campaign name is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.Validation("campaign message is required")
	}

	seg, err := s.segmentRepo.FindByID(ctx, segmentID)
	if err != nil {
		return nil, err
	}

	recipients, err := s.segments.PreviewSegment(ctx, seg.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve segment members: %w", err)
	}

	campaign := &models.Campaign{
		ID:          primitive.NewObjectID(),
		Name:        name,
		SegmentID:   seg.ID,
		SegmentName: seg.Name,
		Message:     message,
		CreatedBy:   createdBy,
	}

	logs := make([]*models.CommunicationLog, 0, len(recipients))
	for _, customer := range recipients {
		status, reason := s.attempt(ctx, customer, message)
		if status == models.DeliverySent {
			campaign.TotalSuccess++
		} else {
			campaign.TotalFailed++
		}
		logs = append(logs, &models.CommunicationLog{
			ID:           primitive.NewObjectID(),
			CampaignID:   campaign.ID,
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Status:       status,
			Error:        reason,
			Timestamp:    s.now(),
		})
	}
	campaign.TotalSent = len(recipients)
	campaign.SentAt = s.now()

	if err := s.campaignRepo.CreateWithLogs(ctx, campaign, logs); err != nil {
		slog.Error("Failed to persist campaign", "error", err, "campaign", name, "segmentId", segmentID.Hex())
		return nil, persistence("create campaign", err)
	}

	slog.Info("Campaign dispatched",
		"campaignId", campaign.ID.Hex(), "segment", seg.Name,
		"sent", campaign.TotalSent, "success", campaign.TotalSuccess, "failed", campaign.TotalFailed)
	return campaign, nil
}

// attempt runs the policy for one recipient, turning errors, panics and
// unknown statuses into FAILED with a reason.
func (s *campaignService) attempt(ctx context.Context, customer *models.Customer, message string) (status models.DeliveryStatus, reason string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Delivery policy panicked", "customerId", customer.ID.Hex(), "panic", r)
			status, reason = models.DeliveryFailed, fmt.Sprintf("delivery policy panic: %v", r)
		}
	}()

	status, err := s.policy.AttemptDelivery(ctx, customer, message)
	if err != nil {
		slog.Warn("Delivery attempt failed", "customerId", customer.ID.Hex(), "error", err)
		return models.DeliveryFailed, err.Error()
	}
	if status != models.DeliverySent && status != models.DeliveryFailed {
		return models.DeliveryFailed, fmt.Sprintf("unknown delivery status %q", status)
	}
	return status, ""
}

// GetCampaign retrieves a campaign by ID
func (s *campaignService) GetCampaign(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	return s.campaignRepo.FindByID(ctx, id)
}

// ListCampaigns retrieves all campaigns, newest first
func (s *campaignService) ListCampaigns(ctx context.Context) ([]*models.Campaign, error) {
	return s.campaignRepo.FindAll(ctx)
}

// CampaignLogs retrieves the communication logs of an existing campaign
func (s *campaignService) CampaignLogs(ctx context.Context, id primitive.ObjectID) ([]*models.CommunicationLog, error) {
	if _, err := s.campaignRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.campaignRepo.FindLogsByCampaignID(ctx, id)
}
