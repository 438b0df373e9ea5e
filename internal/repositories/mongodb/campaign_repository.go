package mongodb

import (
	"context"
	"fmt"

	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository handles MongoDB operations for campaigns and their communication logs.
// CreateWithLogs needs a replica set or sharded cluster for multi-document transactions.
type CampaignRepository struct {
	client    *mongo.Client
	campaigns *mongo.Collection
	logs      *mongo.Collection
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{
		client:    db.Client(),
		campaigns: db.Collection("campaigns"),
		logs:      db.Collection("communication_logs"),
	}
}

// CreateWithLogs inserts the campaign and all of its logs in one transaction
func (r *CampaignRepository) CreateWithLogs(ctx context.Context, campaign *models.Campaign, logs []*models.CommunicationLog) error {
	if err := repositories.PrepareCampaignLogs(campaign, logs); err != nil {
		return err
	}
	docs := make([]interface{}, len(logs))
	for i, l := range logs {
		docs[i] = l
	}

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.campaigns.InsertOne(sc, campaign); err != nil {
			return nil, err
		}
		if len(docs) > 0 {
			// ordered insert keeps the dispatch order of the logs
			if _, err := r.logs.InsertMany(sc, docs, options.InsertMany().SetOrdered(true)); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return translate(err, "campaign", campaign.ID.Hex())
}

// FindByID finds a campaign by ID
func (r *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.campaigns.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign); err != nil {
		return nil, translate(err, "campaign", id.Hex())
	}
	return &campaign, nil
}

// FindAll finds all campaigns, most recently sent first
func (r *CampaignRepository) FindAll(ctx context.Context) ([]*models.Campaign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sentAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.campaigns.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []*models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}
	return campaigns, nil
}

// FindLogsByCampaignID finds a campaign's logs in dispatch order
func (r *CampaignRepository) FindLogsByCampaignID(ctx context.Context, campaignID primitive.ObjectID) ([]*models.CommunicationLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.logs.Find(ctx, bson.M{"campaignId": campaignID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*models.CommunicationLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*models.CommunicationLog{}
	}
	return logs, nil
}

// Count counts all campaigns
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	return r.campaigns.CountDocuments(ctx, bson.M{})
}
