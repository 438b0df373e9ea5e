package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RuleOperator is a comparison applied by a segment rule
type RuleOperator string

const (
	OperatorGT  RuleOperator = "gt"
	OperatorGTE RuleOperator = "gte"
	OperatorLT  RuleOperator = "lt"
	OperatorLTE RuleOperator = "lte"
	OperatorEQ  RuleOperator = "eq"
)

// Customer aggregate fields a rule may reference
const (
	FieldTotalSpend  = "totalSpend"
	FieldTotalVisits = "totalVisits"
	FieldTotalOrders = "totalOrders"
)

// Rule compares one numeric customer field against a threshold
type Rule struct {
	ID       string       `bson:"id" json:"id"`
	Field    string       `bson:"field" json:"field"`
	Operator RuleOperator `bson:"operator" json:"operator"`
	Value    float64      `bson:"value" json:"value"`
}

// Segment is a named, immutable conjunction of rules
type Segment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Rules     []Rule             `bson:"rules" json:"rules"`
	CreatedBy string             `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateSegmentRequest is the payload for POST /segments
type CreateSegmentRequest struct {
	Name  string `json:"name" binding:"required"`
	Rules []Rule `json:"rules"`
}

// PreviewSegmentRequest is the payload for POST /segments/preview
type PreviewSegmentRequest struct {
	Rules []Rule `json:"rules"`
}
