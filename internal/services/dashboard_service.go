package services

import (
	"context"

	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
)

const recentCampaignLimit = 5

type dashboardService struct {
	customerRepo repositories.CustomerRepository
	orderRepo    repositories.OrderRepository
	campaignRepo repositories.CampaignRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(customerRepo repositories.CustomerRepository, orderRepo repositories.OrderRepository, campaignRepo repositories.CampaignRepository) DashboardService {
	return &dashboardService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		campaignRepo: campaignRepo,
	}
}

// Stats computes totals and the most recent campaigns.
// Revenue sums every order amount, matching the customer spend aggregates.
func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.campaignRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalCustomers:  customers,
		TotalOrders:     int64(len(orders)),
		TotalCampaigns:  int64(len(campaigns)),
		RecentCampaigns: []models.CampaignSummary{},
	}
	for _, o := range orders {
		stats.TotalRevenue += o.Amount
	}
	for i, c := range campaigns {
		if i == recentCampaignLimit {
			break
		}
		stats.RecentCampaigns = append(stats.RecentCampaigns, models.CampaignSummary{Campaign: c, SuccessRate: c.SuccessRate()})
	}
	return stats, nil
}
