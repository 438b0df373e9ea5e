package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer represents a CRM customer with running aggregates
type Customer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	TotalOrders int                `bson:"totalOrders" json:"totalOrders"`
	TotalSpend  float64            `bson:"totalSpend" json:"totalSpend"`
	TotalVisits int                `bson:"totalVisits" json:"totalVisits"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CustomerPatch carries a partial customer update. Nil fields are left untouched.
type CustomerPatch struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	TotalOrders *int     `json:"totalOrders,omitempty"`
	TotalSpend  *float64 `json:"totalSpend,omitempty"`
	TotalVisits *int     `json:"totalVisits,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil &&
		p.TotalOrders == nil && p.TotalSpend == nil && p.TotalVisits == nil
}

// Apply merges the patch into c
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.TotalOrders != nil {
		c.TotalOrders = *p.TotalOrders
	}
	if p.TotalSpend != nil {
		c.TotalSpend = *p.TotalSpend
	}
	if p.TotalVisits != nil {
		c.TotalVisits = *p.TotalVisits
	}
}

// CreateCustomerRequest is the payload for POST /customers
type CreateCustomerRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       string  `json:"phone"`
	TotalOrders int     `json:"totalOrders"`
	TotalSpend  float64 `json:"totalSpend"`
	TotalVisits int     `json:"totalVisits"`
}
