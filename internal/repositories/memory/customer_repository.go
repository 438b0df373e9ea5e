// Package memory provides process-local implementations of the repository
// interfaces. Records are kept in insertion order and handed out as copies,
// so callers can never mutate stored state in place.
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

var _ repositories.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository stores customers in memory
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []*models.Customer
	index     map[primitive.ObjectID]int
}

// NewCustomerRepository creates an empty CustomerRepository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{index: make(map[primitive.ObjectID]int)}
}

// Create inserts a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	if _, exists := r.index[customer.ID]; exists {
		return apperrors.Conflict("customer %s", customer.ID.Hex())
	}
	now := time.Now()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now

	stored := *customer
	r.index[stored.ID] = len(r.customers)
	r.customers = append(r.customers, &stored)
	return nil
}

// FindByID finds a customer by ID
func (r *CustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, apperrors.NotFound("customer", id.Hex())
	}
	c := *r.customers[i]
	return &c, nil
}

// List returns all customers in insertion order
func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Customer, len(r.customers))
	for i, c := range r.customers {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

// Update merges the patch into the stored customer
func (r *CustomerRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.CustomerPatch) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, apperrors.NotFound("customer", id.Hex())
	}
	patch.Apply(r.customers[i])
	r.customers[i].UpdatedAt = time.Now()
	c := *r.customers[i]
	return &c, nil
}

// Delete removes a customer, keeping the order of the rest
func (r *CustomerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return apperrors.NotFound("customer", id.Hex())
	}
	r.customers = append(r.customers[:i], r.customers[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.customers); j++ {
		r.index[r.customers[j].ID] = j
	}
	return nil
}

// IncrementAggregates adds the deltas under the write lock
func (r *CustomerRepository) IncrementAggregates(ctx context.Context, id primitive.ObjectID, orders int, spend float64, visits int) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, apperrors.NotFound("customer", id.Hex())
	}
	c := r.customers[i]
	c.TotalOrders += orders
	c.TotalSpend += spend
	c.TotalVisits += visits
	c.UpdatedAt = time.Now()
	out := *c
	return &out, nil
}

// Count returns the number of customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.customers)), nil
}
