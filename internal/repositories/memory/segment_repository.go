package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.SegmentRepository = (*SegmentRepository)(nil)

// SegmentRepository stores segments in memory
type SegmentRepository struct {
	mu       sync.RWMutex
	segments []*models.Segment
}

// NewSegmentRepository creates an empty SegmentRepository
func NewSegmentRepository() *SegmentRepository {
	return &SegmentRepository{}
}

// Create appends a new segment
func (r *SegmentRepository) Create(ctx context.Context, segment *models.Segment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if segment.ID.IsZero() {
		segment.ID = primitive.NewObjectID()
	}
	if segment.CreatedAt.IsZero() {
		segment.CreatedAt = time.Now()
	}
	r.segments = append(r.segments, cloneSegment(segment))
	return nil
}

// FindByID finds a segment by ID
func (r *SegmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.segments {
		if s.ID == id {
			return cloneSegment(s), nil
		}
	}
	return nil, apperrors.NotFound("segment", id.Hex())
}

// FindAll returns every segment in insertion order
func (r *SegmentRepository) FindAll(ctx context.Context) ([]*models.Segment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Segment, len(r.segments))
	for i, s := range r.segments {
		out[i] = cloneSegment(s)
	}
	return out, nil
}

func cloneSegment(s *models.Segment) *models.Segment {
	cp := *s
	cp.Rules = append([]models.Rule(nil), s.Rules...)
	return &cp
}
