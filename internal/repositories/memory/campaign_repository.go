package memory

import (
	"context"
	"sync"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository stores campaigns and their communication logs in memory
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns []*models.Campaign
	logs      []*models.CommunicationLog
}

// NewCampaignRepository creates an empty CampaignRepository
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{}
}

// CreateWithLogs appends the campaign and its logs under one lock
func (r *CampaignRepository) CreateWithLogs(ctx context.Context, campaign *models.Campaign, logs []*models.CommunicationLog) error {
	if err := repositories.PrepareCampaignLogs(campaign, logs); err != nil {
		return err
	}
	stored := make([]*models.CommunicationLog, len(logs))
	for i, l := range logs {
		cp := *l
		stored[i] = &cp
	}
	c := *campaign

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.campaigns {
		if existing.ID == c.ID {
			return apperrors.Conflict("campaign %s", c.ID.Hex())
		}
	}
	r.campaigns = append(r.campaigns, &c)
	r.logs = append(r.logs, stored...)
	return nil
}

// FindByID finds a campaign by ID
func (r *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.campaigns {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("campaign", id.Hex())
}

// FindAll returns campaigns, most recently created first
func (r *CampaignRepository) FindAll(ctx context.Context) ([]*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Campaign, 0, len(r.campaigns))
	for i := len(r.campaigns) - 1; i >= 0; i-- {
		cp := *r.campaigns[i]
		out = append(out, &cp)
	}
	return out, nil
}

// FindLogsByCampaignID returns the campaign's logs in dispatch order
func (r *CampaignRepository) FindLogsByCampaignID(ctx context.Context, campaignID primitive.ObjectID) ([]*models.CommunicationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*models.CommunicationLog{}
	for _, l := range r.logs {
		if l.CampaignID == campaignID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Count returns the number of campaigns
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.campaigns)), nil
}
