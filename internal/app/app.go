// Package app assembles stores, services and the delivery policy from
// configuration. Both the API server and crmctl build on it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ArowuTest/engage-crm/internal/config"
	"github.com/ArowuTest/engage-crm/internal/delivery"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"github.com/ArowuTest/engage-crm/internal/repositories/memory"
	mongorepo "github.com/ArowuTest/engage-crm/internal/repositories/mongodb"
	redisrepo "github.com/ArowuTest/engage-crm/internal/repositories/redis"
	"github.com/ArowuTest/engage-crm/internal/services"
	"github.com/ArowuTest/engage-crm/pkg/jwt"
	"github.com/ArowuTest/engage-crm/pkg/messaging"
	mongodb "github.com/ArowuTest/engage-crm/pkg/mongodb"
)

// Stores groups the repositories of one storage backend
type Stores struct {
	Customers repositories.CustomerRepository
	Orders    repositories.OrderRepository
	Segments  repositories.SegmentRepository
	Campaigns repositories.CampaignRepository
	Users     repositories.AdminUserRepository
	Blacklist repositories.TokenBlacklist

	closers []func(context.Context) error
}

// Close releases database connections
func (s *Stores) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i](ctx))
	}
	return errors.Join(errs...)
}

// OpenStores connects the configured storage driver and token denylist
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	stores := &Stores{}

	switch cfg.Storage.Driver {
	case config.StorageMongoDB:
		client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.ConnectTimeout)
		if err != nil {
			return nil, err
		}
		stores.closers = append(stores.closers, client.Disconnect)

		db := client.Database(cfg.MongoDB.Database)
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			_ = stores.Close(ctx)
			return nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		stores.Customers = mongorepo.NewCustomerRepository(db)
		stores.Orders = mongorepo.NewOrderRepository(db)
		stores.Segments = mongorepo.NewSegmentRepository(db)
		stores.Campaigns = mongorepo.NewCampaignRepository(db)
		stores.Users = mongorepo.NewAdminUserRepository(db)
		slog.Info("Using MongoDB storage", "database", cfg.MongoDB.Database)
	default:
		stores.Customers = memory.NewCustomerRepository()
		stores.Orders = memory.NewOrderRepository()
		stores.Segments = memory.NewSegmentRepository()
		stores.Campaigns = memory.NewCampaignRepository()
		stores.Users = memory.NewAdminUserRepository()
		slog.Warn("Using in-memory storage, data is lost on restart")
	}

	if cfg.Redis.Addr != "" {
		client, err := redisrepo.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			_ = stores.Close(ctx)
			return nil, err
		}
		stores.closers = append(stores.closers, func(context.Context) error { return client.Close() })
		stores.Blacklist = redisrepo.NewTokenBlacklist(client)
	} else {
		stores.Blacklist = memory.NewTokenBlacklist()
	}

	return stores, nil
}

// NewDeliveryPolicy builds the configured delivery policy
func NewDeliveryPolicy(cfg config.DeliveryConfig) delivery.Policy {
	if cfg.Mode != config.DeliveryGateway {
		slog.Info("Using simulated delivery", "successRate", cfg.SuccessRate)
		return delivery.NewRandomPolicy(cfg.SuccessRate)
	}

	var gateway messaging.Gateway
	if cfg.Gateway.BaseURL == "" {
		slog.Warn("No gateway URL configured, using mock gateway")
		gateway = messaging.NewMockGateway("mock")
	} else {
		gateway = messaging.NewHTTPGateway(cfg.Gateway.BaseURL, cfg.Gateway.APIKey, cfg.Gateway.Sender, cfg.Timeout)
	}
	return delivery.NewGatewayPolicy(gateway, cfg.Timeout)
}

// Services groups the application services
type Services struct {
	Auth      services.AuthService
	Customers services.CustomerService
	Segments  services.SegmentService
	Campaigns services.CampaignService
	Dashboard services.DashboardService
}

// NewServices wires services onto stores
func NewServices(cfg *config.Config, stores *Stores, policy delivery.Policy) *Services {
	segments := services.NewSegmentService(stores.Segments, stores.Customers)
	return &Services{
		Auth:      services.NewAuthService(stores.Users, stores.Blacklist, jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL())),
		Customers: services.NewCustomerService(stores.Customers, stores.Orders),
		Segments:  segments,
		Campaigns: services.NewCampaignService(stores.Campaigns, stores.Segments, segments, policy),
		Dashboard: services.NewDashboardService(stores.Customers, stores.Orders, stores.Campaigns),
	}
}
