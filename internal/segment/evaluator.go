// Package segment evaluates segment rules against customer aggregates.
//
// A rule list is a conjunction: a customer belongs to the segment only when
// every rule holds. An empty list matches every customer. Rules that name an
// unknown field or operator never hold, so a malformed segment matches nobody
// instead of everybody.
package segment

import (
	"fmt"
	"math"

	"github.com/ArowuTest/engage-crm/internal/models"
)

// fieldReader extracts a numeric aggregate from a customer
type fieldReader func(*models.Customer) float64

var numericFields = map[string]fieldReader{
	models.FieldTotalSpend:  func(c *models.Customer) float64 { return c.TotalSpend },
	models.FieldTotalVisits: func(c *models.Customer) float64 { return float64(c.TotalVisits) },
	models.FieldTotalOrders: func(c *models.Customer) float64 { return float64(c.TotalOrders) },
}

// Matches reports whether the customer satisfies every rule
func Matches(c *models.Customer, rules []models.Rule) bool {
	if c == nil {
		return false
	}
	for _, r := range rules {
		if !evaluate(c, r) {
			return false
		}
	}
	return true
}

// Filter returns the customers matching rules, preserving input order
func Filter(customers []*models.Customer, rules []models.Rule) []*models.Customer {
	matched := make([]*models.Customer, 0, len(customers))
	for _, c := range customers {
		if Matches(c, rules) {
			matched = append(matched, c)
		}
	}
	return matched
}

func evaluate(c *models.Customer, r models.Rule) bool {
	read, ok := numericFields[r.Field]
	if !ok {
		return false
	}
	actual := read(c)
	if math.IsNaN(actual) || math.IsNaN(r.Value) {
		return false
	}

	switch r.Operator {
	case models.OperatorGT:
		return actual > r.Value
	case models.OperatorGTE:
		return actual >= r.Value
	case models.OperatorLT:
		return actual < r.Value
	case models.OperatorLTE:
		return actual <= r.Value
	case models.OperatorEQ:
		return actual == r.Value
	default:
		return false
	}
}

// ValidateRules reports the first rule with an unknown field or operator.
// Segment creation does not enforce it; it backs client-side hints.
func ValidateRules(rules []models.Rule) error {
	for i, r := range rules {
		if _, ok := numericFields[r.Field]; !ok {
			return fmt.Errorf("rule %d: unknown field %q", i, r.Field)
		}
		switch r.Operator {
		case models.OperatorGT, models.OperatorGTE, models.OperatorLT, models.OperatorLTE, models.OperatorEQ:
		default:
			return fmt.Errorf("rule %d: unknown operator %q", i, r.Operator)
		}
	}
	return nil
}

// Fields lists the customer fields rules may reference
func Fields() []string {
	return []string{models.FieldTotalSpend, models.FieldTotalVisits, models.FieldTotalOrders}
}

// Operators lists the comparisons rules may use
func Operators() []models.RuleOperator {
	return []models.RuleOperator{models.OperatorGT, models.OperatorGTE, models.OperatorLT, models.OperatorLTE, models.OperatorEQ}
}
