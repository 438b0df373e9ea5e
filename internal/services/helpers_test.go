package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/engage-crm/internal/delivery"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories/memory"
)

type fixture struct {
	customers *memory.CustomerRepository
	orders    *memory.OrderRepository
	segRepo   *memory.SegmentRepository
	campRepo  *memory.CampaignRepository

	customerSvc CustomerService
	segmentSvc  SegmentService
}

func newFixture() *fixture {
	f := &fixture{
		customers: memory.NewCustomerRepository(),
		orders:    memory.NewOrderRepository(),
		segRepo:   memory.NewSegmentRepository(),
		campRepo:  memory.NewCampaignRepository(),
	}
	f.customerSvc = NewCustomerService(f.customers, f.orders)
	f.segmentSvc = NewSegmentService(f.segRepo, f.customers)
	return f
}

func (f *fixture) campaignService(policy delivery.Policy) CampaignService {
	return NewCampaignService(f.campRepo, f.segRepo, f.segmentSvc, policy)
}

func (f *fixture) addCustomer(t *testing.T, name string, spend float64, visits, orders int) *models.Customer {
	t.Helper()
	c, err := f.customerSvc.CreateCustomer(context.Background(), &models.CreateCustomerRequest{
		Name:        name,
		Email:       name + "@example.com",
		TotalSpend:  spend,
		TotalVisits: visits,
		TotalOrders: orders,
	})
	require.NoError(t, err)
	return c
}

func alwaysSent() delivery.Policy {
	return delivery.PolicyFunc(func(context.Context, *models.Customer, string) (models.DeliveryStatus, error) {
		return models.DeliverySent, nil
	})
}

// failingCampaignRepo rejects every write while delegating reads
type failingCampaignRepo struct {
	*memory.CampaignRepository
}

func (r failingCampaignRepo) CreateWithLogs(context.Context, *models.Campaign, []*models.CommunicationLog) error {
	return errors.New("write concern timeout")
}
