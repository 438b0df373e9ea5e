package services

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type customerService struct {
	customerRepo repositories.CustomerRepository
	orderRepo    repositories.OrderRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo repositories.CustomerRepository, orderRepo repositories.OrderRepository) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// CreateCustomer validates and stores a new customer
func (s *customerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, apperrors.Validation("customer name is required")
	}
	if email == "" {
		return nil, apperrors.Validation("customer email is required")
	}
	if req.TotalOrders < 0 || req.TotalVisits < 0 || !validAmount(req.TotalSpend, true) {
		return nil, apperrors.Validation("customer aggregates must not be negative")
	}

	customer := &models.Customer{
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		TotalOrders: req.TotalOrders,
		TotalSpend:  req.TotalSpend,
		TotalVisits: req.TotalVisits,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, persistence("create customer", err)
	}

	slog.Info("Customer created", "customerId", customer.ID.Hex(), "email", customer.Email)
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *customerService) GetCustomer(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// ListCustomers retrieves all customers in insertion order
func (s *customerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.customerRepo.List(ctx)
}

// UpdateCustomer merges the patch into an existing customer
func (s *customerService) UpdateCustomer(ctx context.Context, id primitive.ObjectID, patch models.CustomerPatch) (*models.Customer, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.Validation("customer name must not be empty")
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return nil, apperrors.Validation("customer email must not be empty")
	}
	if (patch.TotalOrders != nil && *patch.TotalOrders < 0) ||
		(patch.TotalVisits != nil && *patch.TotalVisits < 0) ||
		(patch.TotalSpend != nil && !validAmount(*patch.TotalSpend, true)) {
		return nil, apperrors.Validation("customer aggregates must not be negative")
	}
	if patch.IsEmpty() {
		return s.customerRepo.FindByID(ctx, id)
	}

	customer, err := s.customerRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, persistence("update customer", err)
	}
	return customer, nil
}

// DeleteCustomer deletes a customer. Past campaign logs keep the name snapshot.
func (s *customerService) DeleteCustomer(ctx context.Context, id primitive.ObjectID) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return persistence("delete customer", err)
	}
	slog.Info("Customer deleted", "customerId", id.Hex())
	return nil
}

// AddOrder appends the order and then increments the customer's totalOrders
// by one and totalSpend by the amount. The increment happens for every status,
// cancelled included. Counting cancelled orders is a known issue awaiting a
// product decision.
//
// The increment is not transactional with the insert: if it fails the order
// stays stored, the failure is logged and the order is still returned.
func (s *customerService) AddOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.CustomerID.IsZero() {
		return nil, apperrors.Validation("customerId is required")
	}
	if !validAmount(order.Amount, false) {
		return nil, apperrors.Validation("order amount must be positive, got %v", order.Amount)
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if !order.Status.Valid() {
		return nil, apperrors.Validation("unknown order status %q", order.Status)
	}

	customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}
	order.CustomerName = customer.Name

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, persistence("create order", err)
	}

	if _, err := s.customerRepo.IncrementAggregates(ctx, order.CustomerID, 1, order.Amount, 0); err != nil {
		slog.Error("Failed to update customer aggregates for order",
			"error", err, "orderId", order.ID.Hex(), "customerId", order.CustomerID.Hex(), "amount", order.Amount)
		return order, nil
	}

	slog.Info("Order added", "orderId", order.ID.Hex(), "customerId", order.CustomerID.Hex(), "amount", order.Amount, "status", order.Status)
	return order, nil
}

// ListOrders retrieves all orders
func (s *customerService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

// ListOrdersByCustomer retrieves the orders of an existing customer
func (s *customerService) ListOrdersByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]*models.Order, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByCustomerID(ctx, customerID)
}

// RecordVisit increments the customer's visit count
func (s *customerService) RecordVisit(ctx context.Context, customerID primitive.ObjectID) (*models.Customer, error) {
	customer, err := s.customerRepo.IncrementAggregates(ctx, customerID, 0, 0, 1)
	if err != nil {
		return nil, persistence("record visit", err)
	}
	return customer, nil
}

// validAmount rejects NaN, infinities and negative values; zero only when allowed
func validAmount(v float64, allowZero bool) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if allowZero {
		return v >= 0
	}
	return v > 0
}
