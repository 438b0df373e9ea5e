package mongodb

import (
	"context"
	"time"

	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.SegmentRepository = (*SegmentRepository)(nil)

// SegmentRepository handles MongoDB operations for Segment
type SegmentRepository struct {
	collection *mongo.Collection
}

// NewSegmentRepository creates a new SegmentRepository
func NewSegmentRepository(db *mongo.Database) *SegmentRepository {
	return &SegmentRepository{
		collection: db.Collection("segments"),
	}
}

// Create inserts a new segment
func (r *SegmentRepository) Create(ctx context.Context, segment *models.Segment) error {
	if segment.ID.IsZero() {
		segment.ID = primitive.NewObjectID()
	}
	if segment.CreatedAt.IsZero() {
		segment.CreatedAt = time.Now()
	}
	if segment.Rules == nil {
		segment.Rules = []models.Rule{}
	}
	_, err := r.collection.InsertOne(ctx, segment)
	return translate(err, "segment", segment.ID.Hex())
}

// FindByID finds a segment by ID
func (r *SegmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error) {
	var segment models.Segment
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&segment); err != nil {
		return nil, translate(err, "segment", id.Hex())
	}
	return &segment, nil
}

// FindAll finds all segments in insertion order
func (r *SegmentRepository) FindAll(ctx context.Context) ([]*models.Segment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(insertionOrder))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var segments []*models.Segment
	if err := cursor.All(ctx, &segments); err != nil {
		return nil, err
	}
	if segments == nil {
		segments = []*models.Segment{}
	}
	return segments, nil
}
