package services

import (
	"context"
	"time"

	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerService defines customer and order operations
type CustomerService interface {
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	GetCustomer(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	UpdateCustomer(ctx context.Context, id primitive.ObjectID, patch models.CustomerPatch) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id primitive.ObjectID) error

	// AddOrder stores the order, then bumps the customer's order count and spend
	AddOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]*models.Order, error)
	RecordVisit(ctx context.Context, customerID primitive.ObjectID) (*models.Customer, error)
}

// SegmentService defines segment operations
type SegmentService interface {
	CreateSegment(ctx context.Context, name string, rules []models.Rule, creatorID string) (*models.Segment, error)
	GetSegment(ctx context.Context, id primitive.ObjectID) (*models.Segment, error)
	ListSegments(ctx context.Context) ([]*models.Segment, error)

	// PreviewSegment evaluates rules against the current customers without saving anything
	PreviewSegment(ctx context.Context, rules []models.Rule) ([]*models.Customer, error)
	SegmentMembers(ctx context.Context, id primitive.ObjectID) ([]*models.Customer, error)
}

// CampaignService defines campaign dispatch and history operations
type CampaignService interface {
	Dispatch(ctx context.Context, name string, segmentID primitive.ObjectID, message, createdBy string) (*models.Campaign, error)
	GetCampaign(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error)
	ListCampaigns(ctx context.Context) ([]*models.Campaign, error)
	CampaignLogs(ctx context.Context, id primitive.ObjectID) ([]*models.CommunicationLog, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Me(ctx context.Context, userID string) (*models.AdminUser, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	// Authenticate validates a bearer token and rejects revoked ones
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
}

// DashboardService defines dashboard reporting operations
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}
