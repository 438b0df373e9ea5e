package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.OrderRepository = (*OrderRepository)(nil)

// OrderRepository stores orders in memory
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*models.Order
}

// NewOrderRepository creates an empty OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create appends a new order
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = time.Now()
	if order.Date.IsZero() {
		order.Date = order.CreatedAt
	}
	r.orders = append(r.orders, cloneOrder(order))
	return nil
}

// FindByCustomerID returns the customer's orders in insertion order
func (r *OrderRepository) FindByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*models.Order{}
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

// FindAll returns every order in insertion order
func (r *OrderRepository) FindAll(ctx context.Context) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

func cloneOrder(o *models.Order) *models.Order {
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	return &cp
}
