package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryStatus is the outcome recorded for one campaign recipient
type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "SENT"
	DeliveryFailed DeliveryStatus = "FAILED"
)

// CommunicationLog records the delivery outcome for one (campaign, customer) pair
type CommunicationLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CampaignID   primitive.ObjectID `bson:"campaignId" json:"campaignId"`
	CustomerID   primitive.ObjectID `bson:"customerId" json:"customerId"`
	CustomerName string             `bson:"customerName" json:"customerName"` // snapshot at send time
	Status       DeliveryStatus     `bson:"status" json:"status"`
	Error        string             `bson:"error,omitempty" json:"error,omitempty"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}
