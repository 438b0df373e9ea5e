package importer

import (
	"context"
	"fmt"

	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/services"
)

// SeedSummary counts what Seed created
type SeedSummary struct {
	Customers int
	Orders    int
	Segments  int
}

type sampleCustomer struct {
	name, email, phone string
	visits             int
	orders             []float64
}

var sampleCustomers = []sampleCustomer{
	{"Amara Okafor", "amara@example.com", "+2348030000001", 14, []float64{450, 320.5, 780}},
	{"Ben Carter", "ben@example.com", "+447700900002", 3, []float64{60}},
	{"Chen Wei", "chen@example.com", "", 22, []float64{1200, 95.99}},
	{"Dara Ní Bhriain", "dara@example.com", "+353850000004", 1, nil},
	{"Elif Yilmaz", "elif@example.com", "+905300000005", 9, []float64{210, 340, 150, 99}},
}

var sampleSegments = []struct {
	name  string
	rules []models.Rule
}{
	{"High Spenders", []models.Rule{{Field: models.FieldTotalSpend, Operator: models.OperatorGT, Value: 1000}}},
	{"Frequent Visitors", []models.Rule{{Field: models.FieldTotalVisits, Operator: models.OperatorGTE, Value: 10}}},
	{"New Customers", []models.Rule{{Field: models.FieldTotalOrders, Operator: models.OperatorLTE, Value: 2}}},
}

// Seed loads a small sample dataset through the services, so aggregates
// are derived from the seeded orders.
func Seed(ctx context.Context, customers services.CustomerService, segments services.SegmentService, createdBy string) (*SeedSummary, error) {
	summary := &SeedSummary{}

	for _, sc := range sampleCustomers {
		c, err := customers.CreateCustomer(ctx, &models.CreateCustomerRequest{
			Name:        sc.name,
			Email:       sc.email,
			Phone:       sc.phone,
			TotalVisits: sc.visits,
		})
		if err != nil {
			return summary, fmt.Errorf("failed to seed customer %s: %w", sc.email, err)
		}
		summary.Customers++

		for _, amount := range sc.orders {
			_, err := customers.AddOrder(ctx, &models.Order{
				CustomerID: c.ID,
				Amount:     amount,
				Status:     models.OrderStatusCompleted,
			})
			if err != nil {
				return summary, fmt.Errorf("failed to seed order for %s: %w", sc.email, err)
			}
			summary.Orders++
		}
	}

	for _, ss := range sampleSegments {
		if _, err := segments.CreateSegment(ctx, ss.name, ss.rules, createdBy); err != nil {
			return summary, fmt.Errorf("failed to seed segment %s: %w", ss.name, err)
		}
		summary.Segments++
	}

	return summary, nil
}
