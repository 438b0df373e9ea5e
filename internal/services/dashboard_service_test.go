package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/engage-crm/internal/delivery"
	"github.com/ArowuTest/engage-crm/internal/models"
)

func TestDashboardStats(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addCustomer(t, "ann", 0, 0, 0)
	b := f.addCustomer(t, "bob", 0, 0, 0)

	for _, o := range []*models.Order{
		{CustomerID: a.ID, Amount: 40},
		{CustomerID: b.ID, Amount: 60, Status: models.OrderStatusCompleted},
	} {
		_, err := f.customerSvc.AddOrder(ctx, o)
		require.NoError(t, err)
	}

	seg, err := f.segmentSvc.CreateSegment(ctx, "all", nil, "")
	require.NoError(t, err)

	half := delivery.PolicyFunc(func(_ context.Context, c *models.Customer, _ string) (models.DeliveryStatus, error) {
		if c.ID == a.ID {
			return models.DeliverySent, nil
		}
		return models.DeliveryFailed, nil
	})
	campaigns := f.campaignService(half)
	for i := 0; i < 6; i++ {
		_, err := campaigns.Dispatch(ctx, fmt.Sprintf("c%d", i), seg.ID, "hi", "")
		require.NoError(t, err)
	}

	stats, err := NewDashboardService(f.customers, f.orders, f.campRepo).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, int64(6), stats.TotalCampaigns)
	require.Len(t, stats.RecentCampaigns, 5)
	assert.Equal(t, "c5", stats.RecentCampaigns[0].Campaign.Name)
	assert.InDelta(t, 0.5, stats.RecentCampaigns[0].SuccessRate, 1e-9)
}

func TestDashboardStatsEmpty(t *testing.T) {
	f := newFixture()
	stats, err := NewDashboardService(f.customers, f.orders, f.campRepo).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRevenue)
	assert.NotNil(t, stats.RecentCampaigns)
	assert.Empty(t, stats.RecentCampaigns)
}
