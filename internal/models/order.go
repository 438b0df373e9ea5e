package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a purchase made by a customer
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID   primitive.ObjectID `bson:"customerId" json:"customerId"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Amount       float64            `bson:"amount" json:"amount"`
	Status       OrderStatus        `bson:"status" json:"status"`
	Items        []OrderItem        `bson:"items,omitempty" json:"items,omitempty"`
	Date         time.Time          `bson:"date" json:"date"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// OrderItem is a single line of an order
type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
}

// CreateOrderRequest is the payload for POST /orders
type CreateOrderRequest struct {
	CustomerID string      `json:"customerId" binding:"required"`
	Amount     float64     `json:"amount" binding:"required"`
	Status     OrderStatus `json:"status"`
	Items      []OrderItem `json:"items"`
	Date       time.Time   `json:"date"`
}
