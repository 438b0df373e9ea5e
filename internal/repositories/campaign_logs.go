package repositories

import (
	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrepareCampaignLogs assigns missing ids and checks every log belongs to the
// campaign. Both stores call it before writing so a mismatched batch is
// rejected the same way everywhere.
func PrepareCampaignLogs(campaign *models.Campaign, logs []*models.CommunicationLog) error {
	if campaign.ID.IsZero() {
		campaign.ID = primitive.NewObjectID()
	}
	for i, l := range logs {
		if l.CampaignID != campaign.ID {
			return apperrors.Validation("log %d references campaign %s, want %s", i, l.CampaignID.Hex(), campaign.ID.Hex())
		}
		if l.ID.IsZero() {
			l.ID = primitive.NewObjectID()
		}
	}
	return nil
}
