package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign is an immutable record of one message sent to a segment
type Campaign struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	SegmentID    primitive.ObjectID `bson:"segmentId" json:"segmentId"`
	SegmentName  string             `bson:"segmentName" json:"segmentName"` // snapshot at send time
	Message      string             `bson:"message" json:"message"`
	SentAt       time.Time          `bson:"sentAt" json:"sentAt"`
	TotalSent    int                `bson:"totalSent" json:"totalSent"`
	TotalSuccess int                `bson:"totalSuccess" json:"totalSuccess"`
	TotalFailed  int                `bson:"totalFailed" json:"totalFailed"`
	CreatedBy    string             `bson:"createdBy" json:"createdBy"`
}

// SuccessRate returns the delivered share in [0,1], or 0 for an empty campaign
func (c *Campaign) SuccessRate() float64 {
	if c.TotalSent == 0 {
		return 0
	}
	return float64(c.TotalSuccess) / float64(c.TotalSent)
}

// DispatchRequest is the payload for POST /campaigns
type DispatchRequest struct {
	Name      string `json:"name" binding:"required"`
	SegmentID string `json:"segmentId" binding:"required"`
	Message   string `json:"message" binding:"required"`
}
