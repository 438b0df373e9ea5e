package repositories

import (
	"context"
	"time"

	"github.com/ArowuTest/engage-crm/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookups of absent records return an error wrapping apperrors.ErrNotFound.

// CustomerRepository defines the interface for customer data operations.
// List returns customers in insertion order.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	List(ctx context.Context) ([]*models.Customer, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.CustomerPatch) (*models.Customer, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// IncrementAggregates atomically adds the deltas to the customer's counters
	IncrementAggregates(ctx context.Context, id primitive.ObjectID, orders int, spend float64, visits int) (*models.Customer, error)
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Order, error)
	FindAll(ctx context.Context) ([]*models.Order, error)
}

// SegmentRepository defines the interface for segment data operations
type SegmentRepository interface {
	Create(ctx context.Context, segment *models.Segment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error)
	FindAll(ctx context.Context) ([]*models.Segment, error)
}

// CampaignRepository defines the interface for campaign and communication log operations
type CampaignRepository interface {
	// CreateWithLogs stores the campaign and its logs as one unit: either
	// both become visible or neither does.
	CreateWithLogs(ctx context.Context, campaign *models.Campaign, logs []*models.CommunicationLog) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	// FindAll returns campaigns, most recently sent first
	FindAll(ctx context.Context) ([]*models.Campaign, error)
	FindLogsByCampaignID(ctx context.Context, campaignID primitive.ObjectID) ([]*models.CommunicationLog, error)
	Count(ctx context.Context) (int64, error)
}

// AdminUserRepository defines the interface for operator account operations
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
}

// TokenBlacklist records revoked token ids until they would have expired anyway
type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
