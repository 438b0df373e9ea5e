package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"github.com/ArowuTest/engage-crm/internal/segment"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type segmentService struct {
	segmentRepo  repositories.SegmentRepository
	customerRepo repositories.CustomerRepository
}

// NewSegmentService creates a new SegmentService
func NewSegmentService(segmentRepo repositories.SegmentRepository, customerRepo repositories.CustomerRepository) SegmentService {
	return &segmentService{
		segmentRepo:  segmentRepo,
		customerRepo: customerRepo,
	}
}

// CreateSegment stores a new segment. Rules are stored as given: a rule on an
// unknown field or operator is accepted and simply never matches.
func (s *segmentService) CreateSegment(ctx context.Context, name string, rules []models.Rule, creatorID string) (*models.Segment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("segment name is required")
	}

	stored := make([]models.Rule, len(rules))
	for i, r := range rules {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		stored[i] = r
	}
	if err := segment.ValidateRules(stored); err != nil {
		slog.Warn("Segment saved with rules that never match", "name", name, "reason", err.Error())
	}

	seg := &models.Segment{
		Name:      name,
		Rules:     stored,
		CreatedBy: creatorID,
	}
	if err := s.segmentRepo.Create(ctx, seg); err != nil {
		return nil, persistence("create segment", err)
	}

	slog.Info("Segment created", "segmentId", seg.ID.Hex(), "name", seg.Name, "rules", len(seg.Rules), "createdBy", creatorID)
	return seg, nil
}

// GetSegment retrieves a segment by ID
func (s *segmentService) GetSegment(ctx context.Context, id primitive.ObjectID) (*models.Segment, error) {
	return s.segmentRepo.FindByID(ctx, id)
}

// ListSegments retrieves all segments
func (s *segmentService) ListSegments(ctx context.Context) ([]*models.Segment, error) {
	return s.segmentRepo.FindAll(ctx)
}

// PreviewSegment returns the customers currently matching rules, in store order.
// Membership is never cached: two calls can disagree if customers changed in between.
func (s *segmentService) PreviewSegment(ctx context.Context, rules []models.Rule) ([]*models.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return segment.Filter(customers, rules), nil
}

// SegmentMembers evaluates a stored segment against the current customers
func (s *segmentService) SegmentMembers(ctx context.Context, id primitive.ObjectID) ([]*models.Customer, error) {
	seg, err := s.segmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.PreviewSegment(ctx, seg.Rules)
}
